package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ANSI color indexes, so output follows the terminal's own scheme
const (
	ansiRed     = "1"
	ansiGreen   = "2"
	ansiYellow  = "3"
	ansiBlue    = "4"
	ansiMagenta = "5"
	ansiCyan    = "6"
	ansiGray    = "8"
)

// Icons prefixed to status lines
const (
	IconSuccess = "✔"
	IconError   = "✘"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconWatch   = "👀"
	IconServe   = "🌐"
)

// Styles are rebuilt by SetTheme
var (
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleInfo    lipgloss.Style
	StyleMuted   lipgloss.Style
	StylePrimary lipgloss.Style
	StyleAccent  lipgloss.Style
	StyleTitle   lipgloss.Style

	StyleTableHeader lipgloss.Style
	StyleTableRow    lipgloss.Style
	StyleTableRowAlt lipgloss.Style
	StyleTableBorder lipgloss.Style
)

func init() {
	SetTheme("auto")
}

// SetTheme applies a color theme: "auto", "dark", "light" or "none".
// "none" switches lipgloss to the ASCII profile so no escape codes are
// written.
func SetTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "none":
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	fg := func(ansi string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ansi))
	}

	StyleSuccess = fg(ansiGreen).Bold(true)
	StyleError = fg(ansiRed).Bold(true)
	StyleWarning = fg(ansiYellow).Bold(true)
	StyleInfo = fg(ansiCyan)
	StyleMuted = fg(ansiGray)
	StylePrimary = fg(ansiMagenta).Bold(true)
	StyleAccent = fg(ansiBlue)
	StyleTitle = StylePrimary.Underline(true)

	StyleTableHeader = StylePrimary
	StyleTableRow = lipgloss.NewStyle()
	StyleTableRowAlt = lipgloss.NewStyle().Faint(true)
	StyleTableBorder = StyleMuted
}

// FormatSuccess returns a success message with icon
func FormatSuccess(msg string) string {
	return StyleSuccess.Render(IconSuccess + " " + msg)
}

// FormatError returns an error message with icon
func FormatError(msg string) string {
	return StyleError.Render(IconError + " " + msg)
}

// FormatInfo returns an info message with icon
func FormatInfo(msg string) string {
	return StyleInfo.Render(IconInfo + " " + msg)
}

// FormatWarning returns a warning message with icon
func FormatWarning(msg string) string {
	return StyleWarning.Render(IconWarning + " " + msg)
}

// FormatMuted returns muted text
func FormatMuted(text string) string {
	return StyleMuted.Render(text)
}

// FormatCode highlights identifiers and markup snippets
func FormatCode(text string) string {
	return StyleAccent.Render(text)
}
