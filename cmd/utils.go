package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/sx-cli/internal/core/domain"
)

// overrideFlags binds the render overrides accepted by several commands
type overrideFlags struct {
	width  string
	height string
	class  string
	id     string
}

func (f *overrideFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.width, "width", "", `Width in pixels or "auto"`)
	cmd.Flags().StringVar(&f.height, "height", "", `Height in pixels or "auto"`)
	cmd.Flags().StringVar(&f.class, "class", "", "Class attribute for the root element")
	cmd.Flags().StringVar(&f.id, "id", "", "Id attribute for the root element")
}

// overrides validates the flags the same way request parameters are
// validated; invalid sizes are dropped
func (f *overrideFlags) overrides() domain.Overrides {
	params := map[string]string{}
	if f.width != "" {
		params["width"] = f.width
	}
	if f.height != "" {
		params["height"] = f.height
	}
	if f.class != "" {
		params["class"] = f.class
	}
	if f.id != "" {
		params["id"] = f.id
	}
	return domain.ParseOverrides(params)
}

// GetPreferredEditor returns the editor command from the environment or a default
func GetPreferredEditor() string {
	if env := os.Getenv("VISUAL"); env != "" {
		return env
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return "vi"
}

// openInEditor runs the preferred editor attached to the terminal
func openInEditor(path string) error {
	c := exec.Command(GetPreferredEditor(), path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
