package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/sx-cli/pkg/config"
	"github.com/kamal-hamza/sx-cli/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the sx configuration file",
	Long: `Open the configuration file in $VISUAL or $EDITOR, creating it with the
default settings first when it does not exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appWorkspace.ConfigPath

		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess("Created default config"))
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatInfo("Opening config: "+path))
		return openInEditor(path)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), appWorkspace.ConfigPath)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.RenderKeyValue("Config", appWorkspace.ConfigPath))
		fmt.Fprintln(out, ui.RenderKeyValue("Library", ""))
		fmt.Fprint(out, ui.RenderSimpleList(libraryDirs))
		fmt.Fprintln(out, ui.RenderKeyValue("Inline assets", fmt.Sprint(len(appConfig.InlineAssets))))
		fmt.Fprintln(out, ui.RenderKeyValue("Cache", fmt.Sprintf("%s (%s)", appConfig.CacheBackend, appConfig.CacheTTL())))
		fmt.Fprintln(out, ui.RenderKeyValue("Cache dir", appWorkspace.CachePath))
		fmt.Fprintln(out, ui.RenderKeyValue("Debug", fmt.Sprint(appDebug)))
		fmt.Fprintln(out, ui.RenderKeyValue("Log level", appConfig.LogLevel))
		fmt.Fprintln(out, ui.RenderKeyValue("Listen", appConfig.ListenAddr))
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}
