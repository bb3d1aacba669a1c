package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"travelmap/internal/app"
	"travelmap/internal/geo"
)

var routeSteps int

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Print the arced polylines between consecutive visits as JSON",
	Long:  "Emits the rendering arcs between each consecutive pair of date-sorted visited cities, one polyline per leg. Meant for map frontends; the arcs are drawing aids, not geodesics.",
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

		sorted := app.SortCitiesByDate(rec.VisitedCities)
		legs := make([][]geo.Point, 0, len(sorted))
		for i := 0; i < len(sorted)-1; i++ {
			from := geo.Point{Lat: sorted[i].Lat, Lng: sorted[i].Lng}
			to := geo.Point{Lat: sorted[i+1].Lat, Lng: sorted[i+1].Lng}
			legs = append(legs, geo.CurvePoints(from, to, routeSteps))
		}

		out, err := json.Marshal(legs)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	routeCmd.Flags().IntVar(&routeSteps, "steps", geo.DefaultCurveSteps, "Samples per arc")
	rootCmd.AddCommand(routeCmd)
}
