package api

import (
	"errors"
	"net/http"

	"github.com/okian/rolodex/internal/app"
	"github.com/okian/rolodex/internal/domain/schema"
)

// ContactsHandler handles contact-import uploads.
type ContactsHandler struct {
	deps      Dependencies
	maxUpload int64
}

// NewContactsHandler creates a new contacts handler.
func NewContactsHandler(deps Dependencies, maxUpload int64) *ContactsHandler {
	return &ContactsHandler{deps: deps, maxUpload: maxUpload}
}

// loadResponse reports a completed partition replacement.
type loadResponse struct {
	Owner    string `json:"owner"`
	Source   string `json:"source"`
	Deleted  int64  `json:"deleted"`
	Inserted int64  `json:"inserted"`
}

// HandleLoadContacts handles POST /contacts requests. The multipart form
// carries the CSV under "file", the required "owner", and an optional
// "source" (config default applies when absent). A rejected upload leaves
// the previous partition untouched.
func (h *ContactsHandler) HandleLoadContacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingFile)
		return
	}
	defer file.Close()

	owner := r.FormValue("owner")
	source := r.FormValue("source")
	if source == "" {
		source = h.deps.DefaultSource()
	}

	stats, err := h.deps.LoadContacts(r.Context(), file, owner, source)
	switch {
	case err == nil:
	case errors.Is(err, app.ErrMissingOwner),
		errors.Is(err, app.ErrEmptyCSV),
		errors.Is(err, schema.ErrSchema):
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	default:
		writeError(w, http.StatusInternalServerError, "internal", err)
		return
	}

	writeJSON(w, http.StatusOK, loadResponse{
		Owner:    owner,
		Source:   source,
		Deleted:  stats.Deleted,
		Inserted: stats.Inserted,
	})
}
