package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/modup/internal/app"
)

func (c *CLI) newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall NAME",
		Short: "Uninstall a module installed from a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("version")
			allVersions, _ := cmd.Flags().GetBool("all-versions")
			confirm, _ := cmd.Flags().GetBool("confirm")

			return c.app.Uninstall(cmd.Context(), app.UninstallOptions{
				Location:    location(cmd),
				Name:        args[0],
				Version:     version,
				AllVersions: allVersions,
				Confirm:     confirm,
			})
		},
	}
	cmd.Flags().String("version", "", "Version to uninstall (defaults to the recorded repository version)")
	cmd.Flags().Bool("all-versions", false, "Uninstall every installed version")
	cmd.Flags().Bool("confirm", true, "Ask before uninstalling")
	cmd.Flags().String("module-path", "", "Module directory to uninstall from")
	cmd.MarkFlagsMutuallyExclusive("version", "all-versions")
	return cmd
}
