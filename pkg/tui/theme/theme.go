package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Faint    lipgloss.Style
	Accent   lipgloss.Style
	Selected lipgloss.Style

	Footer FooterTheme
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Tab    lipgloss.Style
	Active lipgloss.Style
}

// accents maps the stored accent-color names to their base hex values.
var accents = map[string]string{
	"purple": "#8b5cf6",
	"blue":   "#3b82f6",
	"green":  "#10b981",
	"rose":   "#f43f5e",
	"amber":  "#f59e0b",
}

// Accents lists the accent-color names a document may store.
func Accents() []string {
	return []string{"purple", "blue", "green", "rose", "amber"}
}

// ForAccent builds the theme around the stored accent color. Unknown names
// fall back to purple. The bright variant is derived from the base so every
// accent stays readable on a dark background.
func ForAccent(name string) Theme {
	hex, ok := accents[name]
	if !ok {
		hex = accents["purple"]
	}

	base, err := colorful.Hex(hex)
	if err != nil {
		base, _ = colorful.Hex(accents["purple"])
	}
	bright := base.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.35)

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(base.Hex()))
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(bright.Hex())),
		Subtitle: faint,
		Body:     lipgloss.NewStyle(),
		Faint:    faint,
		Accent:   accent,
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(bright.Hex())),

		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: faint,
			Tab:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Active: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(base.Hex())).Underline(true),
		},
	}
}

// Default returns the purple theme.
func Default() Theme {
	return ForAccent("purple")
}
