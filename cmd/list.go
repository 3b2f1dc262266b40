package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/sx-cli/internal/core/domain"
	"github.com/kamal-hamza/sx-cli/pkg/ui"
)

var (
	listJSON   bool
	listFilter string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List every SVG in the library",
	Aliases: []string{"ls"},
	Long: `List every registered SVG with its intrinsic size and viewBox.

Examples:
  sx list
  sx list --filter social
  sx list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the listing as JSON")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Only show identifiers containing this text")
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := libraryService.ListAll(getContext(cmd))
	if err != nil {
		return err
	}

	if listFilter != "" {
		needle := strings.ToLower(listFilter)
		filtered := entries[:0]
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Identifier), needle) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	out := cmd.OutOrStdout()
	if listJSON {
		return writeJSON(out, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, ui.FormatWarning("No SVGs found"))
		fmt.Fprintln(out, ui.FormatMuted("Searched: "+strings.Join(libraryDirs, ", ")))
		return nil
	}

	fmt.Fprint(out, renderEntries(entries, appDebug))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.FormatMuted(fmt.Sprintf("%d SVGs", len(entries))))
	return nil
}

func renderEntries(entries []domain.ListEntry, withSource bool) string {
	columns := []ui.TableColumn{
		{Header: "IDENTIFIER"},
		{Header: "SIZE", Align: lipgloss.Right},
		{Header: "VIEWBOX"},
		{Header: "STATUS"},
	}
	if withSource {
		columns = append(columns, ui.TableColumn{Header: "SOURCE"})
	}

	table := ui.NewTable(columns...)
	for _, e := range entries {
		status := ui.StyleSuccess.Render(ui.IconSuccess)
		if len(e.Errors) > 0 {
			status = ui.StyleError.Render(ui.IconError + " invalid")
		}
		viewBox := e.ViewBox
		if viewBox == "" {
			viewBox = "-"
		}
		table.AddRow(e.Identifier, e.GetDimensionsString(), viewBox, status, e.SourcePath)
	}
	return table.Render()
}
