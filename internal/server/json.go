package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/playperu/aula/internal/aula"
)

// writeJSON encodes a session view or acknowledgement as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// readJSON decodes a presenter command body into v.
func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// writeError sends the ErrorResponse shape documented in /openapi.json.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeClassroomError maps Classroom errors onto HTTP statuses. A missing
// phase is 404, a slot outside the phase is 422, and slideshow commands
// while the settings view is showing are 409.
func writeClassroomError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, aula.ErrUnknownPhase):
		writeError(w, http.StatusNotFound, "phase not found")
	case errors.Is(err, aula.ErrInvalidIndex):
		writeError(w, http.StatusUnprocessableEntity, "image index out of range")
	case errors.Is(err, ErrNotPresenting):
		writeError(w, http.StatusConflict, "no phase is being presented")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
