package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newRulerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ruler <region>",
		Short: "Show who ruled a region in a year",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearFlag(cmd)
			if err != nil {
				return err
			}
			return c.app.Ruler(cmd.Context(), strings.Join(args, " "), year)
		},
	}
	addYearFlag(cmd)
	return cmd
}
