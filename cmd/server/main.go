package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/playperu/aula/internal/aula"
	"github.com/playperu/aula/internal/config"
	"github.com/playperu/aula/internal/handler/health"
	"github.com/playperu/aula/internal/server"
	"github.com/playperu/aula/internal/uploads"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Uploads ---
	store, err := uploads.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return fmt.Errorf("preparing uploads: %w", err)
	}
	logger.Info("upload directory ready", "dir", cfg.UploadDir)

	// --- Session ---
	state, err := aula.NewState(cfg.Seed(), cfg.Language())
	if err != nil {
		return fmt.Errorf("building session: %w", err)
	}
	broker := server.NewBroker()
	classroom := server.NewClassroom(state, broker, logger)
	logger.Info("session ready",
		"phases", cfg.PhaseCount,
		"images_per_phase", cfg.ImagesPerPhase,
		"language", cfg.Language(),
	)

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		Classroom:      classroom,
		Broker:         broker,
		Uploads:        store,
		MaxUploadBytes: cfg.MaxUploadBytes,
		SPADir:         cfg.SPADir,
		Health: map[string]health.Checker{
			"uploads": store,
			"session": classroom,
		},
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
