package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.trai.ch/modup/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [modules...]",
		Short: "List installed modules",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := c.app.List(cmd.Context(), app.ListOptions{
				Location: location(cmd),
				Names:    args,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(listings) == 0 {
				_, _ = fmt.Fprintln(out, "No modules installed.")
				return nil
			}
			_, _ = fmt.Fprintln(out, renderListings(listings))
			return nil
		},
	}
	cmd.Flags().String("module-path", "", "Module directory to list")
	return cmd
}

func renderListings(listings []app.ModuleListing) string {
	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		origin := "manual"
		if l.Registry {
			origin = "registry"
		}
		rows = append(rows, []string{l.Name, l.Version, origin, l.Location})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "VERSION", "ORIGIN", "LOCATION").
		Rows(rows...).
		String()
}
