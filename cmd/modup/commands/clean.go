package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/modup/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove cached repository responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return c.app.Clean(cmd.Context(), app.CleanOptions{ConfigPath: configPath})
		},
	}
}
