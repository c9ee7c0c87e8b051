package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/aula/internal/aula"
)

type ctxKey int

const (
	ctxKeyPhase ctxKey = iota
	ctxKeyIndex
)

// phaseMiddleware resolves {phaseID} and rejects unknown phases.
func phaseMiddleware(classroom *Classroom) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := aula.PhaseID(chi.URLParam(r, "phaseID"))
			if err := classroom.HasSlot(id, 0); err != nil {
				writeError(w, http.StatusNotFound, "phase not found")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyPhase, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// indexMiddleware parses {index} as an integer. Range checks
// against the phase happen in the handlers.
func indexMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "index must be an integer")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyIndex, index)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func phaseFrom(r *http.Request) aula.PhaseID {
	return r.Context().Value(ctxKeyPhase).(aula.PhaseID)
}

func indexFrom(r *http.Request) int {
	return r.Context().Value(ctxKeyIndex).(int)
}
