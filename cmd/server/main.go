package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nextlevelsbs/sopbuilder/config"
	"github.com/nextlevelsbs/sopbuilder/pkg/otel"
	"github.com/nextlevelsbs/sopbuilder/server"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := otel.Setup(ctx, "sopbuilder", server.Version); err != nil {
		slog.Error("unable to set up telemetry", "error", err)
		os.Exit(1)
	}

	cfg, err := config.FromEnv()

	if err != nil {
		slog.Error("unable to load configuration", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("unable to create server", "error", err)
		os.Exit(1)
	}

	slog.Info("starting server", "address", cfg.Address)

	if err := s.ListenAndServe(ctx); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}

	// let running generations finish before exiting
	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := cfg.Dispatcher.Wait(drainCtx); err != nil {
		slog.Warn("shutdown with running generations", "error", err)
	}
}
