package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/atlas/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the map API and web assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			webDir, _ := cmd.Flags().GetString("web")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Addr:   addr,
				WebDir: webDir,
				Watch:  watch,
			})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "Listen address (default from atlas.yaml or :8888)")
	cmd.Flags().String("web", "", "Directory of static web assets")
	cmd.Flags().BoolP("watch", "w", false, "Reload datasets when files in the data directory change")
	return cmd
}
