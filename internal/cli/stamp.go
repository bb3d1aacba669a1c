package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmap/internal/app"
)

var stampCmd = &cobra.Command{
	Use:   "stamp",
	Short: "Manage passport stamps",
}

var stampAddFlags struct {
	url   string
	image string
}

var stampAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a passport stamp from a URL or local image reference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (stampAddFlags.url == "") == (stampAddFlags.image == "") {
			return fmt.Errorf("exactly one of --url or --image is required")
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		stamp := app.Stamp{URL: stampAddFlags.url, LocalImage: stampAddFlags.image}

		m := newMutator()
		rec, err := s.Apply(func(cur app.TravelRecord) (app.TravelRecord, error) {
			return m.AddPassportStamp(stamp, cur), nil
		})
		if err != nil {
			return err
		}

		fmt.Printf("Stamp added (%d total).\n", len(rec.PassportStamps))
		return nil
	},
}

var stampRmCmd = &cobra.Command{
	Use:   "rm <stamp id>",
	Short: "Remove a passport stamp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		m := newMutator()
		_, err = s.Apply(func(cur app.TravelRecord) (app.TravelRecord, error) {
			return m.RemovePassportStamp(args[0], cur), nil
		})
		if err != nil {
			return err
		}

		fmt.Println("Stamp removed.")
		return nil
	},
}

func init() {
	stampAddCmd.Flags().StringVar(&stampAddFlags.url, "url", "", "Stamp image URL")
	stampAddCmd.Flags().StringVar(&stampAddFlags.image, "image", "", "Local image reference")

	stampCmd.AddCommand(stampAddCmd)
	stampCmd.AddCommand(stampRmCmd)
	rootCmd.AddCommand(stampCmd)
}
