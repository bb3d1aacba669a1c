package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmap/internal/app"
	"travelmap/internal/record"
)

var updateFlags struct {
	name  string
	date  string
	notes string
	emoji string
	cost  float64
}

var updateCmd = &cobra.Command{
	Use:   "update <city id>",
	Short: "Update fields of a visited city",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var updates record.CityUpdate
		if cmd.Flags().Changed("name") {
			updates.Name = &updateFlags.name
		}
		if cmd.Flags().Changed("date") {
			updates.Date = &updateFlags.date
		}
		if cmd.Flags().Changed("notes") {
			updates.Notes = &updateFlags.notes
		}
		if cmd.Flags().Changed("emoji") {
			updates.CustomEmoji = &updateFlags.emoji
		}
		if cmd.Flags().Changed("cost") {
			updates.Cost = &updateFlags.cost
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		m := newMutator()
		_, err = s.Apply(func(cur app.TravelRecord) (app.TravelRecord, error) {
			return m.UpdateCity(args[0], updates, cur), nil
		})
		if err != nil {
			return err
		}

		fmt.Println("Updated.")
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateFlags.name, "name", "", "City name")
	updateCmd.Flags().StringVar(&updateFlags.date, "date", "", "Visit date (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updateFlags.notes, "notes", "", "Free-form notes")
	updateCmd.Flags().StringVar(&updateFlags.emoji, "emoji", "", "Custom marker emoji")
	updateCmd.Flags().Float64Var(&updateFlags.cost, "cost", 0, "Trip cost")
	rootCmd.AddCommand(updateCmd)
}
