package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmap/internal/app"
)

var rmCmd = &cobra.Command{
	Use:   "rm <city id>",
	Short: "Remove a visited city",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		m := newMutator()
		rec, err := s.Apply(func(cur app.TravelRecord) (app.TravelRecord, error) {
			return m.RemoveCity(args[0], cur), nil
		})
		if err != nil {
			return err
		}

		fmt.Printf("Removed. %d cities, %d countries remain.\n",
			len(rec.VisitedCities), len(rec.VisitedCountries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
