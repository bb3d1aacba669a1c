package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelmap/internal/app"
)

var settingsFlags struct {
	style   string
	emoji   string
	heatmap bool
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Update presentation settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		m := newMutator()
		rec, err := s.Apply(func(cur app.TravelRecord) (app.TravelRecord, error) {
			next := cur.Settings
			if cmd.Flags().Changed("style") {
				next.MapStyle = settingsFlags.style
			}
			if cmd.Flags().Changed("emoji") {
				next.GlobalEmoji = settingsFlags.emoji
			}
			if cmd.Flags().Changed("heatmap") {
				next.ShowHeatmap = settingsFlags.heatmap
			}
			return m.UpdateSettings(next, cur), nil
		})
		if err != nil {
			return err
		}

		fmt.Printf("Settings: style=%s emoji=%s heatmap=%v\n",
			rec.Settings.MapStyle, rec.Settings.GlobalEmoji, rec.Settings.ShowHeatmap)
		return nil
	},
}

func init() {
	settingsCmd.Flags().StringVar(&settingsFlags.style, "style", "", "Map style (dark, satellite, light, vintage)")
	settingsCmd.Flags().StringVar(&settingsFlags.emoji, "emoji", "", "Global marker emoji")
	settingsCmd.Flags().BoolVar(&settingsFlags.heatmap, "heatmap", false, "Show the visit heatmap")
	rootCmd.AddCommand(settingsCmd)
}
