package api

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/rolodex/internal/app"
	"github.com/okian/rolodex/internal/domain/matching"
	"github.com/okian/rolodex/internal/domain/model"
	"github.com/okian/rolodex/internal/domain/schema"
)

// MatchHandler handles attendee-list match requests.
type MatchHandler struct {
	deps      Dependencies
	maxUpload int64
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps Dependencies, maxUpload int64) *MatchHandler {
	return &MatchHandler{deps: deps, maxUpload: maxUpload}
}

// matchResponse is the JSON shape of a match run. Zero matches is a
// successful response with an empty list, not an error.
type matchResponse struct {
	Count   int           `json:"count"`
	Matches []model.Match `json:"matches"`
}

// HandleMatch handles POST /match requests. The multipart form carries the
// attendee CSV under "file", an optional integer "threshold" (config
// default applies when absent), and an optional "format" of json or csv.
// The uploaded list is used in memory only and never stored.
func (h *MatchHandler) HandleMatch(w http.ResponseWriter, r *http.Request) {
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

	threshold := h.deps.DefaultThreshold()
	if v := r.FormValue("threshold"); v != "" {
		t, err := strconv.Atoi(v)
		if err != nil || t < 0 || t > 100 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadThreshold)
			return
		}
		threshold = t
	}

	format := strings.ToLower(r.FormValue("format"))
	switch format {
	case "":
		format = "json"
	case "json", "csv":
	default:
		writeError(w, http.StatusBadRequest, "bad_request", ErrUnknownFormat)
		return
	}

	matches, err := h.deps.MatchAttendees(r.Context(), file, threshold)
	switch {
	case err == nil:
	case errors.Is(err, matching.ErrEmptyStore):
		writeError(w, http.StatusConflict, "empty_store", err)
		return
	case errors.Is(err, app.ErrInvalidThreshold),
		errors.Is(err, app.ErrEmptyCSV),
		errors.Is(err, schema.ErrSchema):
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	default:
		writeError(w, http.StatusInternalServerError, "internal", err)
		return
	}

	if format == "csv" {
		writeMatchesCSV(w, matches)
		return
	}
	writeJSON(w, http.StatusOK, matchResponse{Count: len(matches), Matches: matches})
}

// writeMatchesCSV streams the result table as a downloadable CSV in the
// fixed column order.
func writeMatchesCSV(w http.ResponseWriter, matches []model.Match) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="matches.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write(model.MatchColumns)
	for _, m := range matches {
		_ = cw.Write(m.Row())
	}
	cw.Flush()
}
