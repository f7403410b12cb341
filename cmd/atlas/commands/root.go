// Package commands implements the CLI commands for atlas.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/atlas/internal/app"
	"go.trai.ch/atlas/internal/build"
	"go.trai.ch/atlas/internal/core/domain"
)

// CLI represents the command line interface for atlas.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "atlas",
		Short:         "Explore history on a map, one year at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newTechCmd())
	rootCmd.AddCommand(c.newRulerCmd())
	rootCmd.AddCommand(c.newLookupCmd())
	rootCmd.AddCommand(c.newExploreCmd())
	rootCmd.AddCommand(c.newLifeCmd())
	rootCmd.AddCommand(c.newHoleCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// yearFlag reads the --year flag. It returns nil when the flag is unset.
func yearFlag(cmd *cobra.Command) (*domain.Year, error) {
	raw, _ := cmd.Flags().GetString("year")
	if raw == "" {
		return nil, nil
	}
	y, err := domain.ParseYear(raw)
	if err != nil {
		return nil, err
	}
	return &y, nil
}

func addYearFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("year", "y", "", `Year to show, e.g. "1453", "-500" or "500 BCE"`)
}
