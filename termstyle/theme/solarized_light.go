package theme

import (
	"charm.land/lipgloss/v2"

	"go.jacobcolvin.com/synhi/termstyle"
)

// SolarizedLight returns [termstyle.Styles] using solarized-light colors.
func SolarizedLight() termstyle.Styles {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#586e75")).
		Background(lipgloss.Color("#eee8d5"))

	return termstyle.NewStyles(base,
		termstyle.Set(
			"cmt-comment",
			base.Foreground(lipgloss.Color("#93a1a1")).Italic(true),
		),
		termstyle.Set(
			"cmt-invalid",
			base.Foreground(lipgloss.Color("#d33682")),
		),
		termstyle.Set(
			"cmt-number",
			base.Bold(true),
		),
		termstyle.Set(
			"cmt-name",
			base.Foreground(lipgloss.Color("#268bd2")),
		),
		termstyle.Set(
			"cmt-propertyName",
			base.Bold(true),
		),
		termstyle.Set(
			"cmt-bool",
			base.Bold(true),
		),
		termstyle.Set(
			"cmt-string",
			base.Foreground(lipgloss.Color("#2aa198")),
		),
		termstyle.Set(
			"cmt-punctuation",
			base.Foreground(lipgloss.Color("#859900")),
		),
		termstyle.Set(
			"ui-highlight",
			lipgloss.NewStyle().Background(lipgloss.Darken(lipgloss.Color("#eee8d5"), 0.15)),
		),
		termstyle.Set(
			"ui-highlight-selected",
			lipgloss.NewStyle().Background(lipgloss.Darken(lipgloss.Color("#eee8d5"), 0.30)),
		),
	)
}
