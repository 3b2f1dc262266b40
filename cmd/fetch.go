package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	fetchFlags overrideFlags
	fetchRaw   bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <name>",
	Short: "Print the normalized asset as JSON",
	Long: `Print the normalized asset for an SVG as JSON, including the resolved
size, the attributes written and, when overrides are given, the original
attributes.

Examples:
  sx fetch arrow-left
  sx fetch arrow-left --width 48 --height auto
  sx fetch arrow-left --raw`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

var rawCmd = &cobra.Command{
	Use:   "raw <name>",
	Short: "Print the original file content of an SVG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRaw(cmd, args[0])
	},
}

func init() {
	fetchFlags.register(fetchCmd)
	fetchCmd.Flags().BoolVar(&fetchRaw, "raw", false, "Print the original file content instead")
}

func runFetch(cmd *cobra.Command, args []string) error {
	if fetchRaw {
		return printRaw(cmd, args[0])
	}

	asset, err := libraryService.Fetch(getContext(cmd), args[0], fetchFlags.overrides())
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), asset)
}

func printRaw(cmd *cobra.Command, name string) error {
	raw, err := libraryService.Raw(getContext(cmd), name)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), raw)
	return nil
}
