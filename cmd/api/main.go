package main

import (
	"context"
	"log"

	"github.com/brd-studio/brd-backend/config"
	"github.com/brd-studio/brd-backend/internal/bootstrap"
	"github.com/brd-studio/brd-backend/internal/integrations/jira"
	"github.com/brd-studio/brd-backend/internal/maintenance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	stores, err := bootstrap.OpenStores(ctx, cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer stores.Close()

	// snapshots only make sense for the file-backed store
	if stores.Backend == "json" && cfg.Storage.BackupKeep > 0 {
		janitor := maintenance.NewJanitor(cfg.Storage.DataDir, cfg.Storage.BackupKeep)
		janitor.Start()
		defer janitor.Stop()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "brd-backend",
		Version:     cfg.App.Version,
		Stores:      stores,
		Generator:   bootstrap.BuildGenerator(cfg),
		Jira: jira.Config{
			BaseURL:    cfg.Jira.BaseURL,
			Username:   cfg.Jira.Username,
			APIToken:   cfg.Jira.APIToken,
			ProjectKey: cfg.Jira.ProjectKey,
		},
	})

	log.Printf("listening on :%s (storage=%s)", cfg.Server.Port, stores.Backend)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
