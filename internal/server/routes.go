package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/playperu/aula/internal/handler/health"
)

func addRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	classroom := deps.Classroom

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Aula API", "/openapi.json", "/docs"))
	r.Mount("/healthz", health.NewHandler(logger, deps.Health).Routes())

	r.Get("/ws", handleLive(logger, deps.Broker))
	r.Get("/uploads/{name}", handleServeUpload(deps.Uploads))

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", handleState(classroom))
		r.Put("/view", handleSetView(classroom))
		r.Put("/language", handleSetLanguage(classroom))
		r.Get("/strings", handleStrings(classroom))
		r.Get("/events", handleEvents(deps.Broker))

		// Per-phase settings. {phaseID} is resolved by phaseMiddleware.
		r.Route("/phases/{phaseID}", func(r chi.Router) {
			r.Use(phaseMiddleware(classroom))
			r.Put("/color", handleSetColor(classroom))
			r.Route("/images/{index}", func(r chi.Router) {
				r.Use(indexMiddleware)
				r.Put("/", handleSetImage(classroom))
				r.Post("/upload", handleUploadImage(classroom, deps.Uploads, deps.MaxUploadBytes))
			})
		})

		// The slideshow always targets the presented phase.
		r.Route("/slideshow", func(r chi.Router) {
			r.Get("/", handleSlideshow(classroom))
			r.Post("/next", handleMove(classroom.Next))
			r.Post("/previous", handleMove(classroom.Previous))
			r.Post("/select", handleSelect(classroom))
			r.Post("/vote", handleVote(classroom))
			r.Post("/reset", handleReset(classroom))
		})
	})

	if deps.SPADir != "" {
		if info, err := os.Stat(deps.SPADir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", deps.SPADir)
			r.NotFound(handleSPA(deps.SPADir))
		}
	}
}
