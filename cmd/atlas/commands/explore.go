package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/atlas/internal/app"
	"go.trai.ch/atlas/internal/core/domain"
)

func (c *CLI) newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse the timeline interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			year, err := yearFlag(cmd)
			if err != nil {
				return err
			}
			show, _ := cmd.Flags().GetString("show")
			categories, err := domain.ParseCategories(show)
			if err != nil {
				return err
			}
			lat, _ := cmd.Flags().GetFloat64("lat")
			lng, _ := cmd.Flags().GetFloat64("lng")
			zoom, _ := cmd.Flags().GetInt("zoom")
			mode, _ := cmd.Flags().GetString("output")
			return c.app.Explore(cmd.Context(), app.ExploreOptions{
				Year:       year,
				Center:     domain.GeoPoint{Lat: lat, Lng: lng},
				Zoom:       zoom,
				Show:       categories,
				OutputMode: mode,
			})
		},
	}
	addYearFlag(cmd)
	cmd.Flags().StringP("show", "s", "", "Comma separated overlays visible at start")
	cmd.Flags().Float64("lat", 0, "Latitude of the map center")
	cmd.Flags().Float64("lng", 0, "Longitude of the map center")
	cmd.Flags().IntP("zoom", "z", 0, "Initial zoom level")
	cmd.Flags().StringP("output", "o", "auto", "Output mode: auto, tui, linear or ci")
	return cmd
}
