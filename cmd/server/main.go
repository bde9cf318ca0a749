package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/api"
	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	service, err := cfg.BuildService(ctx)
	if err != nil {
		slog.Error("Failed to build content service", "err", err)
		os.Exit(1)
	}

	storageService, err := cfg.BuildStorageService()
	if err != nil {
		slog.Error("Failed to build storage service", "err", err)
		os.Exit(1)
	}

	auth := api.NewAuth(cfg.JWTSecret, cfg.SessionTTL, cfg.Environment == "production")

	server := app.DefaultApp()

	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	server.R.Mount("/api", api.NewRouter(service, storageService, auth, cfg.UploadMaxBytes))

	slog.Info("Starting embassy content service",
		"environment", cfg.Environment,
		"database", cfg.DatabaseType,
		"storage", cfg.StorageBackend)

	server.Run()
}
