package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmap/internal/app"
)

var addFlags struct {
	country string
	lat     float64
	lng     float64
	date    string
	notes   string
	emoji   string
	cost    float64
}

var addCmd = &cobra.Command{
	Use:   "add <city name>",
	Short: "Record a visited city",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		city := app.City{
			Name:        args[0],
			Country:     addFlags.country,
			Lat:         addFlags.lat,
			Lng:         addFlags.lng,
			Date:        addFlags.date,
			Notes:       addFlags.notes,
			CustomEmoji: addFlags.emoji,
		}
		if cmd.Flags().Changed("cost") {
			cost := addFlags.cost
			city.Cost = &cost
		}

		m := newMutator()
		rec, err := s.Apply(func(cur app.TravelRecord) (app.TravelRecord, error) {
			return m.AddCity(city, cur), nil
		})
		if err != nil {
			return err
		}

		derived := newEngine().ComputeStats(rec)
		fmt.Printf("Added %s, %s (%d countries visited, %.1f%% of the world)\n",
			city.Name, city.Country, derived.VisitedCount, derived.Percentage)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addFlags.country, "country", "c", "", "Country the city belongs to")
	addCmd.Flags().Float64Var(&addFlags.lat, "lat", 0, "Latitude in degrees")
	addCmd.Flags().Float64Var(&addFlags.lng, "lng", 0, "Longitude in degrees")
	addCmd.Flags().StringVar(&addFlags.date, "date", "", "Visit date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&addFlags.notes, "notes", "", "Free-form notes")
	addCmd.Flags().StringVar(&addFlags.emoji, "emoji", "", "Custom marker emoji")
	addCmd.Flags().Float64Var(&addFlags.cost, "cost", 0, "Trip cost")
	_ = addCmd.MarkFlagRequired("country")
	rootCmd.AddCommand(addCmd)
}
