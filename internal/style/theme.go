// Package style defines the colours and text styles of yrm output.
//
// Call Init(colorEnabled) once at startup. After that, use the exported
// styles through Render so plain output stays free of escape codes.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ─── Colour palette ──────────────────────────────────────────────────────────

var (
	Cyan   = lipgloss.Color("#00B4D8")
	Green  = lipgloss.Color("#22C55E")
	Yellow = lipgloss.Color("#FACC15")
	Red    = lipgloss.Color("#EF4444")
	Dim    = lipgloss.Color("#6B7280")
)

// ─── Text styles ─────────────────────────────────────────────────────────────

var (
	// Active highlights the registry currently in use.
	Active = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	// Name is used for registry names in reports.
	Name = lipgloss.NewStyle().
		Foreground(Cyan)

	Success = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Yellow)

	Error = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	// DimText is used for hints and failed probes.
	DimText = lipgloss.NewStyle().
		Foreground(Dim)

	Bold = lipgloss.NewStyle().Bold(true)

	// SpinnerColor is the colour of the latency test spinner.
	SpinnerColor = Cyan
)

// Enabled tracks whether styles should render ANSI output.
var Enabled = true

// Init configures the style package. Call once at startup.
func Init(colorEnabled bool) {
	Enabled = colorEnabled
	if !colorEnabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Render applies s to text when colour is enabled and returns text
// unchanged otherwise.
func Render(s lipgloss.Style, text string) string {
	if !Enabled {
		return text
	}
	return s.Render(text)
}

// WarningIcon returns a themed warning indicator.
func WarningIcon() string {
	if Enabled {
		return Warning.Render("!")
	}
	return "WARN"
}

// Hint renders a "next step" hint message.
func Hint(msg string) string {
	return Render(DimText, "→ "+msg)
}
