// Package commands implements the CLI commands for modup.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/modup/internal/app"
	"go.trai.ch/modup/internal/build"
)

// CLI represents the command line interface for modup.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	List(ctx context.Context, opts app.ListOptions) ([]app.ModuleListing, error)
	Uninstall(ctx context.Context, opts app.UninstallOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	SetJSONLogs(enable bool)
}

// flagAliases maps the long camelCase flag spellings, lowercased, to the flag they stand for.
var flagAliases = map[string]string{
	"modulestocheck":                     "modules",
	"modulesandversionstocheck":          "pin",
	"updateexistinginstalledmodules":     "update-existing",
	"allowprerelease":                    "allow-prerelease",
	"includeanymanuallyinstalledmodules": "include-manual",
	"keeppriormoduleversions":            "keep-prior-versions",
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "modup",
		Short:         "Keep locally installed modules in line with a module repository",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the modup.yaml config file")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write log output as JSON")
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if logJSON, _ := cmd.Flags().GetBool("log-json"); logJSON {
			c.app.SetJSONLogs(true)
		}
	}

	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newUninstallCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// normalizeFlagName accepts the camelCase parameter names as aliases of the kebab-case flags.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if alias, ok := flagAliases[strings.ToLower(name)]; ok {
		return pflag.NormalizedName(alias)
	}
	return pflag.NormalizedName(name)
}

// location reads the config and module path flags shared by the module commands.
func location(cmd *cobra.Command) app.Location {
	configPath, _ := cmd.Flags().GetString("config")
	modulePath, _ := cmd.Flags().GetString("module-path")
	return app.Location{ConfigPath: configPath, ModulePath: modulePath}
}
