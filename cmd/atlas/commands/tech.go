package commands

import "github.com/spf13/cobra"

func (c *CLI) newTechCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tech <id>",
		Short: "Show a technology with its prerequisites and unlocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearFlag(cmd)
			if err != nil {
				return err
			}
			return c.app.Tech(cmd.Context(), args[0], year)
		},
	}
	addYearFlag(cmd)
	return cmd
}
