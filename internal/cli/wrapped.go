package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var wrappedCmd = &cobra.Command{
	Use:   "wrapped <year>",
	Short: "Show the yearly travel recap",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.Load()
		if err != nil {
			return err
		}

		wrapped := newEngine().ComputeWrappedStats(rec, year)
		if wrapped == nil {
			fmt.Printf("No travel recorded in %d — nothing to wrap up.\n", year)
			return nil
		}

		bold := color.New(color.Bold)
		yellow := color.New(color.FgYellow, color.Bold)

		bold.Printf("Your %d wrapped\n\n", wrapped.Year)
		yellow.Printf("  %s\n\n", wrapped.Persona)
		fmt.Printf("  %d km traveled\n", wrapped.DistanceKm)
		fmt.Printf("  %d cities, %d countries, %d continents\n",
			wrapped.CityCount, wrapped.CountryCount, wrapped.ContinentCount)
		fmt.Printf("  Peak month: %s\n", wrapped.PeakMonth)
		fmt.Printf("  Top stop: %s\n", wrapped.TopCity)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(wrappedCmd)
}
