package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/sx-cli/internal/core/services"
)

var useSpriteOnly bool

var useCmd = &cobra.Command{
	Use:   "use <name>...",
	Short: "Print sprite references and the matching sprite sheet",
	Long: `Print a <use> reference for each name, followed by a hidden sprite
sheet holding one <symbol> per distinct SVG referenced.

Place the sprite sheet once per page; each reference renders the symbol.

Examples:
  sx use arrow-left arrow-right
  sx use social/twitter social/github --sprite-only > sprite.svg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUse,
}

func init() {
	useCmd.Flags().BoolVar(&useSpriteOnly, "sprite-only", false, "Only print the sprite sheet")
}

func runUse(cmd *cobra.Command, args []string) error {
	ctx := getContext(cmd)
	out := cmd.OutOrStdout()
	tracker := services.NewUsageTracker()

	for _, name := range args {
		ref := libraryService.Use(ctx, tracker, name)
		if ref == "" {
			return fmt.Errorf("no SVG matches '%s'", name)
		}
		if !useSpriteOnly {
			fmt.Fprintln(out, ref)
		}
	}

	sprite, err := libraryService.Sprite(ctx, tracker)
	if err != nil {
		return err
	}
	fmt.Fprint(out, sprite)
	return nil
}
