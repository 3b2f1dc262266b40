package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/sx-cli/internal/adapters/httpapi"
	"github.com/kamal-hamza/sx-cli/pkg/ui"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the library over HTTP",
	Long: `Serve the library as a read-only REST API.

Routes:
  GET /svg                  list every SVG
  GET /svg/{name}           normalized asset as JSON (?width=&height=&class=&id=)
  GET /svg/{name}.svg       normalized markup as image/svg+xml
  GET /svg/{name}.svg?raw   original file content`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to listen_addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = appConfig.ListenAddr
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.StylePrimary.Render(ui.IconServe+" Serving SVG library on "+addr))
	fmt.Fprintln(out, ui.FormatMuted("Press Ctrl+C to stop"))

	server := httpapi.NewServer(libraryService, appLogger)
	return server.ListenAndServe(getContext(cmd), addr)
}
