package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/sx-cli/internal/core/domain"
	"github.com/kamal-hamza/sx-cli/internal/core/services"
	"github.com/kamal-hamza/sx-cli/pkg/ui"
)

var (
	pickFlags  overrideFlags
	pickUseRef bool
)

var pickCmd = &cobra.Command{
	Use:   "pick [query]",
	Short: "Fuzzy-find an SVG and copy its markup",
	Long: `Choose an SVG interactively and copy its inline markup to the clipboard.

Examples:
  sx pick
  sx pick arrow --width 24 --height auto
  sx pick social --use     # copy a sprite reference instead`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPick,
}

func init() {
	pickFlags.register(pickCmd)
	pickCmd.Flags().BoolVar(&pickUseRef, "use", false, "Copy a sprite <use> reference instead of inline markup")
}

func runPick(cmd *cobra.Command, args []string) error {
	ctx := getContext(cmd)
	out := cmd.OutOrStdout()

	entries, err := libraryService.ListAll(ctx)
	if err != nil {
		return err
	}

	usable := make([]domain.ListEntry, 0, len(entries))
	for _, e := range entries {
		if len(e.Errors) == 0 {
			usable = append(usable, e)
		}
	}
	if len(usable) == 0 {
		fmt.Fprintln(out, ui.FormatWarning("No SVGs found"))
		return nil
	}

	opts := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return pickPreview(usable[i])
		}),
	}
	if len(args) == 1 {
		opts = append(opts, fuzzyfinder.WithQuery(args[0]))
	}

	idx, err := fuzzyfinder.Find(
		usable,
		func(i int) string { return usable[i].Identifier },
		opts...,
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return err
	}
	selected := usable[idx]

	var snippet string
	if pickUseRef {
		snippet = libraryService.Use(ctx, services.NewUsageTracker(), selected.Identifier)
	} else {
		snippet = libraryService.Embed(ctx, selected.Identifier, pickFlags.overrides())
	}
	if snippet == "" {
		return fmt.Errorf("no SVG matches '%s'", selected.Identifier)
	}

	fmt.Fprintln(out, ui.FormatInfo("Markup (Copied):"))
	fmt.Fprintln(out, ui.FormatCode(snippet))

	if err := clipboard.WriteAll(snippet); err != nil {
		fmt.Fprintln(out, ui.FormatMuted("(Clipboard access failed)"))
	}
	return nil
}

func pickPreview(e domain.ListEntry) string {
	var b strings.Builder
	b.WriteString(e.Identifier + "\n\n")
	b.WriteString(ui.RenderKeyValue("Size", e.GetDimensionsString()) + "\n")
	if e.ViewBox != "" {
		b.WriteString(ui.RenderKeyValue("viewBox", e.ViewBox) + "\n")
	}
	b.WriteString(ui.RenderKeyValue("Aspect", fmt.Sprintf("%.3f", e.Aspect)) + "\n")
	if e.SourcePath != "" {
		b.WriteString(ui.RenderKeyValue("Source", e.SourcePath) + "\n")
	}
	return b.String()
}
