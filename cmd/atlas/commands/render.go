package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/atlas/internal/adapters/linear" //nolint:depguard // Output format flag
	"go.trai.ch/atlas/internal/app"
	"go.trai.ch/atlas/internal/core/domain"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the overlays active in a year",
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
			rawFormat, _ := cmd.Flags().GetString("format")
			format, err := linear.ParseFormat(rawFormat)
			if err != nil {
				return err
			}
			return c.app.Render(cmd.Context(), app.RenderOptions{
				Year:   year,
				Show:   categories,
				Format: format,
			})
		},
	}
	addYearFlag(cmd)
	cmd.Flags().StringP("show", "s", "", "Comma separated overlays to draw (default all)")
	cmd.Flags().StringP("format", "f", string(linear.FormatText), "Output format: text or json")
	return cmd
}
