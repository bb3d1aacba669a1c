package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmap/internal/app"
)

var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Manage bucket-list cities",
}

var bucketAddFlags struct {
	country string
	lat     float64
	lng     float64
}

var bucketAddCmd = &cobra.Command{
	Use:   "add <city name>",
	Short: "Add a city to the bucket list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		city := app.City{
			Name:    args[0],
			Country: bucketAddFlags.country,
			Lat:     bucketAddFlags.lat,
			Lng:     bucketAddFlags.lng,
		}

		m := newMutator()
		rec, err := s.Apply(func(cur app.TravelRecord) (app.TravelRecord, error) {
			return m.AddBucketCity(city, cur), nil
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added %s to the bucket list (%d cities wished for).\n",
			city.Name, len(rec.BucketListCities))
		return nil
	},
}

var bucketRmCmd = &cobra.Command{
	Use:   "rm <city id>",
	Short: "Remove a city from the bucket list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		m := newMutator()
		_, err = s.Apply(func(cur app.TravelRecord) (app.TravelRecord, error) {
			return m.RemoveBucketCity(args[0], cur), nil
		})
		if err != nil {
			return err
		}

		fmt.Println("Removed from bucket list.")
		return nil
	},
}

func init() {
	bucketAddCmd.Flags().StringVarP(&bucketAddFlags.country, "country", "c", "", "Country the city belongs to")
	bucketAddCmd.Flags().Float64Var(&bucketAddFlags.lat, "lat", 0, "Latitude in degrees")
	bucketAddCmd.Flags().Float64Var(&bucketAddFlags.lng, "lng", 0, "Longitude in degrees")
	_ = bucketAddCmd.MarkFlagRequired("country")

	bucketCmd.AddCommand(bucketAddCmd)
	bucketCmd.AddCommand(bucketRmCmd)
	rootCmd.AddCommand(bucketCmd)
}
