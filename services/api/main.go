package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/agrovision/cropsight/internal/agro"
	"github.com/agrovision/cropsight/services/api/ai"
	"github.com/agrovision/cropsight/services/api/config"
	"github.com/agrovision/cropsight/services/api/db"
	httpserver "github.com/agrovision/cropsight/services/api/http"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	catalog := agro.Default()

	var store *db.Store
	if cfg.DatabaseURL != "" {
		store, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer store.Close()
	} else {
		log.Println("DATABASE_URL not set, snapshot log disabled")
	}

	var assistant *ai.Assistant
	if cfg.GeminiAPIKey != "" {
		assistant, err = ai.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("ai assistant: %v", err)
		}
		defer assistant.Close()
	} else {
		log.Println("GEMINI_API_KEY not set, ai endpoints disabled")
	}

	server := httpserver.New(cfg, catalog, store, assistant)

	log.Printf("api listening on %s", cfg.ListenAddr())
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
