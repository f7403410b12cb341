package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/atlas/internal/adapters/linear" //nolint:depguard // Output format flag
	"go.trai.ch/atlas/internal/app"
	"go.trai.ch/atlas/internal/core/domain"
)

func (c *CLI) newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Narrate the history of a location in a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			year, err := yearFlag(cmd)
			if err != nil {
				return err
			}
			lat, _ := cmd.Flags().GetFloat64("lat")
			lng, _ := cmd.Flags().GetFloat64("lng")
			rawFormat, _ := cmd.Flags().GetString("format")
			format, err := linear.ParseFormat(rawFormat)
			if err != nil {
				return err
			}
			return c.app.Lookup(cmd.Context(), app.LookupOptions{
				Point:  domain.GeoPoint{Lat: lat, Lng: lng},
				Year:   *year,
				Format: format,
			})
		},
	}
	addYearFlag(cmd)
	cmd.Flags().Float64("lat", 0, "Latitude in degrees")
	cmd.Flags().Float64("lng", 0, "Longitude in degrees")
	cmd.Flags().StringP("format", "f", string(linear.FormatText), "Output format: text or json")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
	return cmd
}
