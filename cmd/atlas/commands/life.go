package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newLifeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "life <region>",
		Short: "Show a day in the life of ordinary people in a region",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearFlag(cmd)
			if err != nil {
				return err
			}
			return c.app.Life(cmd.Context(), strings.Join(args, " "), year)
		},
	}
	addYearFlag(cmd)
	return cmd
}
