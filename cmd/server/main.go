package main

import (
	"net/http"
	"os"

	"safetylog/internal/app/server/api"
	"safetylog/internal/app/server/config"
	"safetylog/internal/infrastructure/kvstore"
	"safetylog/internal/infrastructure/storage"
	"safetylog/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	kv, err := kvstore.New(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		log.Error("failed to open store", "backend", cfg.Store.Backend, "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	incidentRepo, err := storage.NewIncidentRepository(kv, log)
	if err != nil {
		log.Error("failed to load incidents", "error", err)
		os.Exit(1)
	}
	userRepo := storage.NewUserRepository(kv, log)

	mux := api.New(incidentRepo, userRepo, log)

	log.Info("starting server", "address", cfg.Server.RunAddress, "store", cfg.Store.Backend)
	if err := http.ListenAndServe(cfg.Server.RunAddress, mux); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
