package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamal-hamza/sx-cli/pkg/ui"
)

var checkCmd = &cobra.Command{
	Use:     "check",
	Short:   "Validate every SVG in the library",
	Aliases: []string{"doctor"},
	Long: `Parse every SVG in the library and report the files that cannot be used.

Exits with an error when at least one file is invalid.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	// Always read the files, never a cached snapshot
	if err := libraryService.Reload(getContext(cmd)); err != nil {
		appLogger.Warn("Failed to drop cached library", zap.Error(err))
	}

	entries, err := libraryService.ListAll(getContext(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	invalid := 0
	for _, e := range entries {
		if len(e.Errors) == 0 {
			continue
		}
		invalid++
		fmt.Fprintln(out, ui.FormatError(e.Identifier))
		if e.SourcePath != "" {
			fmt.Fprintln(out, ui.FormatMuted("  "+e.SourcePath))
		}
		for _, msg := range e.Errors {
			fmt.Fprintln(out, "  "+msg)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d SVGs are invalid", invalid, len(entries))
	}

	fmt.Fprintln(out, ui.FormatSuccess(fmt.Sprintf("All %d SVGs are valid", len(entries))))
	return nil
}
