package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/aula/internal/aula"
	"github.com/playperu/aula/internal/handler/health"
	"github.com/playperu/aula/internal/i18n"
	"github.com/playperu/aula/internal/uploads"
)

// newTestDeps builds a two-phase session (three images each, voting on
// fase2) in English with uploads under a temp dir.
func newTestDeps(t *testing.T) Deps {
	t.Helper()

	seed := aula.DefaultSeed(aula.SeedOptions{
		PhaseCount:     2,
		ImagesPerPhase: 3,
		URLTemplate:    "https://img.test/%d/%d.png",
		VotingPhases:   []aula.PhaseID{"fase2"},
	})
	state, err := aula.NewState(seed, i18n.English)
	if err != nil {
		t.Fatalf("new state: %v", err)
	}

	store, err := uploads.NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}

	broker := NewBroker()
	classroom := NewClassroom(state, broker, slog.Default())
	return Deps{
		Classroom:      classroom,
		Broker:         broker,
		Uploads:        store,
		MaxUploadBytes: 1 << 20,
		Health:         map[string]health.Checker{"uploads": store, "session": classroom},
	}
}

func testRouter(t *testing.T) (chi.Router, Deps) {
	t.Helper()
	deps := newTestDeps(t)
	return NewRouter(slog.Default(), deps), deps
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func intRef(i int) *int { return &i }
