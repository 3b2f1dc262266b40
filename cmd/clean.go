package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/sx-cli/pkg/ui"
)

var cleanAll bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clear the cached library",
	Long: `Remove cached library snapshots so the next lookup reads the SVG files again.

With --all the whole cache directory is wiped, including the SQLite database.

Examples:
  sx clean
  sx clean --all`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "Wipe the entire cache directory")
}

func runClean(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if cleanAll {
		fmt.Fprint(out, ui.StyleWarning.Render("Cleaning entire cache... "))

		// The database must be closed before its file goes away
		if err := shutdownApp(cmd, args); err != nil {
			fmt.Fprintln(out, ui.FormatError("Failed"))
			return err
		}
		n, err := appWorkspace.CleanCache()
		if err != nil {
			fmt.Fprintln(out, ui.FormatError("Failed"))
			return err
		}

		fmt.Fprintln(out, ui.FormatSuccess("Done"))
		fmt.Fprintln(out, ui.FormatMuted(fmt.Sprintf("%d entries removed from %s", n, appWorkspace.CachePath)))
		return nil
	}

	if cacheStore == nil {
		fmt.Fprintln(out, ui.FormatInfo("Caching is disabled (cache_backend: none)"))
		return nil
	}

	fmt.Fprint(out, ui.StyleWarning.Render("Clearing cached library... "))
	n, err := cacheStore.Clear()
	if err != nil {
		fmt.Fprintln(out, ui.FormatError("Failed"))
		return err
	}
	fmt.Fprintln(out, ui.FormatSuccess(fmt.Sprintf("Done (%d entries)", n)))
	return nil
}
