package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/modup/internal/app"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [modules...]",
		Short: "Install, update and prune the requested modules",
		Long: "Reconcile the requested modules with the repository: install missing modules, " +
			"update outdated ones and remove the versions they supersede.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modules, _ := cmd.Flags().GetStringSlice("modules")
			modules = append(modules, args...)
			pinned, _ := cmd.Flags().GetStringToString("pin")
			updateExisting, _ := cmd.Flags().GetBool("update-existing")
			includeManual, _ := cmd.Flags().GetBool("include-manual")

			if len(modules) == 0 && len(pinned) == 0 && !updateExisting && !includeManual {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			confirm, _ := cmd.Flags().GetBool("confirm")
			allowPrerelease, _ := cmd.Flags().GetBool("allow-prerelease")
			keepPrior, _ := cmd.Flags().GetBool("keep-prior-versions")
			stopOnError, _ := cmd.Flags().GetBool("stop-on-error")
			repository, _ := cmd.Flags().GetString("repository")

			return c.app.Run(cmd.Context(), app.RunOptions{
				Location:        location(cmd),
				Modules:         modules,
				Pinned:          pinned,
				UpdateExisting:  updateExisting,
				AllowPrerelease: allowPrerelease,
				IncludeManual:   includeManual,
				KeepPrior:       keepPrior,
				Confirm:         confirm,
				StopOnError:     stopOnError,
				Repository:      repository,
			})
		},
	}
	cmd.Flags().Bool("confirm", true, "Ask before every install, update and removal")
	cmd.Flags().StringSliceP("modules", "m", nil, "Modules to bring to their latest version")
	cmd.Flags().StringToString("pin", nil, "Modules to bring to an exact version, as name=version")
	cmd.Flags().BoolP("update-existing", "u", false, "Also reconcile every installed module")
	cmd.Flags().Bool("allow-prerelease", false, "Consider prerelease versions")
	cmd.Flags().Bool("include-manual", false,
		"Replace manually installed modules too (implies --update-existing)")
	cmd.Flags().Bool("keep-prior-versions", false, "Keep the versions an update supersedes")
	cmd.Flags().StringP("repository", "r", "", "Repository name from the config file, or a feed URL")
	cmd.Flags().Bool("stop-on-error", false, "Stop at the first module that fails")
	cmd.Flags().String("module-path", "", "Module directory to reconcile")
	cmd.MarkFlagsMutuallyExclusive("modules", "pin")
	return cmd
}
