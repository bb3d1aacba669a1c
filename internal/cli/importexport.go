package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"travelmap/internal/app"
	"travelmap/internal/record"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge a travelmap backup or location-history export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		m := newMutator()
		rec, err := s.Apply(func(cur app.TravelRecord) (app.TravelRecord, error) {
			return m.Import(raw, cur)
		})
		var impErr *record.ImportError
		if errors.As(err, &impErr) {
			return fmt.Errorf("%s (record unchanged)", impErr.Reason)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Imported. Record now has %d cities across %d countries.\n",
			len(rec.VisitedCities), len(rec.VisitedCountries))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the record as backup JSON",
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

		out, err := record.Export(rec)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}
