package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var embedFlags overrideFlags

var embedCmd = &cobra.Command{
	Use:   "embed <name>",
	Short: "Print inline markup for an SVG",
	Long: `Print the normalized <svg> element for an SVG, ready to paste inline.

The name may be an identifier or a path relative to a library directory.

Examples:
  sx embed arrow-left
  sx embed social/twitter.svg --width 32 --height auto
  sx embed logo --class "brand brand--large"`,
	Args: cobra.ExactArgs(1),
	RunE: runEmbed,
}

func init() {
	embedFlags.register(embedCmd)
}

func runEmbed(cmd *cobra.Command, args []string) error {
	markup := libraryService.Embed(getContext(cmd), args[0], embedFlags.overrides())
	if markup == "" {
		return fmt.Errorf("no SVG matches '%s'", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), markup)
	return nil
}
