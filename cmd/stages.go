package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/aayasso/SlowMA-MVP/internal/stage"
	"github.com/aayasso/SlowMA-MVP/internal/store"
	"github.com/spf13/cobra"
)

var stagesCmd = &cobra.Command{
	Use:   "stages [stage]",
	Short: "Print the aesthetic development stage guide",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		only := 0
		if len(args) == 1 {
			if _, err := fmt.Sscanf(args[0], "%d", &only); err != nil || only < stage.MinStage || only > stage.MaxStage {
				return fmt.Errorf("stage must be a number between %d and %d", stage.MinStage, stage.MaxStage)
			}
		}

		// Mark the viewer's position when a profile exists. The guide
		// still prints without a database.
		current := stage.Level{}
		if dbPath, err := resolveDBPath(cmd); err == nil {
			if s, err := store.Open(dbPath); err == nil {
				if p, err := s.ProfileRepo().Load(context.Background()); err == nil {
					current = p.Level
				}
				s.Close()
			}
		}

		substage := current.Substage
		if substage == 0 {
			substage = stage.MinSubstage
		}

		for _, d := range stage.AllDescriptions(substage) {
			if only != 0 && d.Stage != only {
				continue
			}
			marker := ""
			if d.Stage == current.Stage {
				marker = fmt.Sprintf("   ← you are here (%s)", current.Label())
			}
			fmt.Printf("Stage %d — %s%s\n", d.Stage, d.Name, marker)
			fmt.Println(strings.Repeat("─", 60))
			fmt.Println(d.Description)
			for _, c := range d.Characteristics {
				fmt.Println("  ·", c)
			}
			fmt.Println()
		}
		return nil
	},
}
