package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show derived travel statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.Load()
		if err != nil {
			return err
		}

		derived := newEngine().ComputeStats(rec)

		bold := color.New(color.Bold)
		green := color.New(color.FgGreen)
		cyan := color.New(color.FgCyan)

		bold.Printf("World coverage: ")
		fmt.Printf("%d/%d countries (%.1f%%)\n", derived.VisitedCount, derived.TotalCount, derived.Percentage)
		bold.Printf("Total distance: ")
		fmt.Printf("%d km\n", derived.TotalDistanceKm)

		if len(derived.Achievements) > 0 {
			bold.Println("\nAchievements")
			for _, a := range derived.Achievements {
				green.Printf("  %s %s", a.Icon, a.Title)
				fmt.Printf(" — %s\n", a.Description)
			}
		}

		bold.Println("\nContinents")
		for _, cs := range derived.ContinentStats {
			fmt.Printf("  %-15s %3d/%3d (%.1f%%)\n", cs.Name, cs.Visited, cs.Total, cs.Percentage)
		}

		if len(derived.Trips) > 0 {
			bold.Println("\nTrips (most recent first)")
			for _, t := range derived.Trips {
				cyan.Printf("  %s", t.Name)
				fmt.Printf("  %s → %s, %d cities\n", t.StartDate, t.EndDate, len(t.Cities))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
