package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/aayasso/SlowMA-MVP/internal/engagement"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
	"github.com/aayasso/SlowMA-MVP/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show viewing statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		p, err := s.ProfileRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		desc := stage.Describe(p.Level.Stage, p.Level.Substage)
		fmt.Printf("Stage:      %s — %s (%s)\n", p.Level.Label(), desc.Name, desc.SubstageName)
		fmt.Printf("Journeys:   %d\n", p.JourneysCompleted)
		fmt.Printf("Time:       %dh %02dm\n", p.TotalTimeSeconds/3600, (p.TotalTimeSeconds%3600)/60)
		fmt.Printf("Streak:     %d day(s)\n", engagement.Streak(p, time.Now()))
		fmt.Printf("Badges:     %d\n", len(p.Badges))

		galleryCount, err := s.GalleryRepo().CountEntries(ctx)
		if err == nil {
			fmt.Printf("Gallery:    %d artwork(s)\n", galleryCount)
		}

		if len(p.StageHistory) > 0 {
			fmt.Println("\nStage history")
			for _, h := range p.StageHistory {
				fmt.Printf("  %s  %-11s  stage %s  (%s)\n",
					h.At.Local().Format("2006-01-02"), h.Change, h.Stage, h.Trigger)
			}
		}
		return nil
	},
}
