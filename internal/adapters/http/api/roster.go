// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	repository "github.com/mergington/activities/internal/adapters/repository"
)

// RosterMutator defines the interface for roster mutations.
type RosterMutator interface {
	Signup(ctx context.Context, name, email string) error
	Unregister(ctx context.Context, name, email string) error
}

// RosterHandler handles signup and unregister requests under /activities/.
type RosterHandler struct {
	deps RosterMutator
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps RosterMutator) *RosterHandler {
	return &RosterHandler{deps: deps}
}

// HandleRoster dispatches /activities/{name}/signup and
// /activities/{name}/unregister requests.
func (h *RosterHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	// Extract path parameters after /activities/
	path := strings.TrimPrefix(r.URL.Path, "/activities/")

	if name, ok := strings.CutSuffix(path, "/signup"); ok {
		MetricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
			h.handleSignup(w, r, name)
		}, "signup")(w, r)
		return
	}
	if name, ok := strings.CutSuffix(path, "/unregister"); ok {
		MetricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
			h.handleUnregister(w, r, name)
		}, "unregister")(w, r)
		return
	}
	http.NotFound(w, r)
}

// handleSignup handles POST /activities/{name}/signup?email=... requests.
func (h *RosterHandler) handleSignup(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPost || name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}
	email := r.URL.Query().Get("email")

	if err := h.deps.Signup(r.Context(), name, email); err != nil {
		writeRosterError(w, err, name, email)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// handleUnregister handles DELETE /activities/{name}/unregister?email=... requests.
func (h *RosterHandler) handleUnregister(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodDelete || name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}
	email := r.URL.Query().Get("email")

	if err := h.deps.Unregister(r.Context(), name, email); err != nil {
		writeRosterError(w, err, name, email)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// writeRosterError translates directory errors into the wire contract:
// unknown activity is 404, every precondition failure is 400.
func writeRosterError(w http.ResponseWriter, err error, name, email string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, repository.ErrAlreadyRegistered):
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("%s is already signed up for %s", email, name))
	case errors.Is(err, repository.ErrNotRegistered):
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("%s is not signed up for %s", email, name))
	case errors.Is(err, repository.ErrActivityFull):
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("%s is full", name))
	case errors.Is(err, repository.ErrEmptyEmail):
		writeDetail(w, http.StatusBadRequest, "missing email")
	default:
		writeDetail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
