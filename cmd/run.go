package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/aayasso/SlowMA-MVP/internal/app"
	"github.com/aayasso/SlowMA-MVP/internal/engagement"
	"github.com/aayasso/SlowMA-MVP/internal/journey"
	"github.com/aayasso/SlowMA-MVP/internal/llm"
	"github.com/aayasso/SlowMA-MVP/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := context.Background()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		ProfileRepo:  st.ProfileRepo(),
		GalleryRepo:  st.GalleryRepo(),
		EventRepo:    eventRepo,
		BadgeService: engagement.NewBadgeService(eventRepo),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Journey generation will be unavailable.")
	} else {
		opts.JourneyService = journey.NewService(provider, st.GalleryRepo(), eventRepo, journey.DefaultConfig())
	}

	return app.Run(opts)
}
