package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newHoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "hole <topic>",
		Aliases: []string{"rabbithole"},
		Short:   "Explore a topic and the rabbit holes leading away from it",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Hole(cmd.Context(), strings.Join(args, " "))
		},
	}
}
