package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vtorres/timeline-cli/internal/app"
	"github.com/vtorres/timeline-cli/internal/config"
	"github.com/vtorres/timeline-cli/internal/registry"
	"github.com/vtorres/timeline-cli/internal/storage"
	"github.com/vtorres/timeline-cli/internal/tui"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	repo, err := storage.NewRepository(cfg.DBPath)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := repo.Init(ctx); err != nil {
		log.Fatalf("storage schema error: %v", err)
	}

	client := registry.NewClient(cfg.APIBaseURL, cfg.APIKey, nil)
	service := app.NewService(client, repo, cfg.CollectionID)

	cached, err := service.ListCached(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load cached assets (%v), starting empty\n", err)
		cached = nil
	}

	model := tui.NewModel(service, cfg.ShareBaseURL, cached)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}
