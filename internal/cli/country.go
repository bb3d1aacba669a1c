package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmap/internal/app"
)

var countryCmd = &cobra.Command{
	Use:   "country <name>",
	Short: "Toggle a country's visited status",
	Long:  "Marks a country visited, or un-visits it. Un-visiting also removes every visited and bucket-list city in that country so the record stays consistent.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		m := newMutator()
		rec, err := s.Apply(func(cur app.TravelRecord) (app.TravelRecord, error) {
			return m.ToggleCountry(args[0], cur), nil
		})
		if err != nil {
			return err
		}

		if rec.HasVisitedCountry(args[0]) {
			fmt.Printf("%s marked visited.\n", args[0])
		} else {
			fmt.Printf("%s un-visited.\n", args[0])
		}
		return nil
	},
}

var wishCmd = &cobra.Command{
	Use:   "wish <country>",
	Short: "Toggle a country on the bucket list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		m := newMutator()
		rec, err := s.Apply(func(cur app.TravelRecord) (app.TravelRecord, error) {
			return m.ToggleBucketList(args[0], cur), nil
		})
		if err != nil {
			return err
		}

		switch {
		case rec.HasVisitedCountry(args[0]):
			fmt.Printf("%s is already visited; bucket list unchanged.\n", args[0])
		case rec.HasBucketCountry(args[0]):
			fmt.Printf("%s added to the bucket list.\n", args[0])
		default:
			fmt.Printf("%s removed from the bucket list.\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countryCmd)
	rootCmd.AddCommand(wishCmd)
}
