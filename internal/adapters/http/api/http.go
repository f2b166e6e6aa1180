// Package api declares HTTP contracts and route registration helpers.
// Handlers stay thin: uploads are materialized and handed to the service,
// and the service's result table is rendered back out. All matching and
// storage logic lives below this layer.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/okian/rolodex/internal/adapters/repository"
	"github.com/okian/rolodex/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// LoadContacts replaces one (owner, source) partition from a CSV stream.
	LoadContacts(ctx context.Context, r io.Reader, owner, source string) (repository.ReplaceStats, error)

	// MatchAttendees matches an attendee CSV against the stored directory.
	MatchAttendees(ctx context.Context, r io.Reader, threshold int) ([]model.Match, error)

	// DefaultThreshold and DefaultSource supply fallbacks for requests
	// that omit the corresponding field.
	DefaultThreshold() int
	DefaultSource() string
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	contactsHandler *ContactsHandler
	matchHandler    *MatchHandler
}

// NewServer creates a new API server with all handlers. maxUploadBytes
// bounds the size of accepted CSV uploads.
func NewServer(deps Dependencies, maxUploadBytes int64) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		contactsHandler: NewContactsHandler(deps, maxUploadBytes),
		matchHandler:    NewMatchHandler(deps, maxUploadBytes),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", Middleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/contacts", Middleware(s.contactsHandler.HandleLoadContacts, "contacts"))
	mux.HandleFunc("/match", Middleware(s.matchHandler.HandleMatch, "match"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
