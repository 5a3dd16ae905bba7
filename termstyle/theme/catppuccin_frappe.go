package theme

import (
	"charm.land/lipgloss/v2"

	"go.jacobcolvin.com/synhi/termstyle"
)

// CatppuccinFrappe returns [termstyle.Styles] using catppuccin-frappe colors.
func CatppuccinFrappe() termstyle.Styles {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#c6d0f5")).
		Background(lipgloss.Color("#303446"))

	return termstyle.NewStyles(base,
		termstyle.Set(
			"cmt-comment",
			base.Foreground(lipgloss.Color("#737994")).Italic(true),
		),
		termstyle.Set(
			"cmt-docComment",
			base.Foreground(lipgloss.Color("#737994")).Bold(true),
		),
		termstyle.Set(
			"cmt-deleted",
			base.Foreground(lipgloss.Color("#e78284")).Background(lipgloss.Color("#414559")),
		),
		termstyle.Set(
			"cmt-invalid",
			base.Foreground(lipgloss.Color("#e78284")),
		),
		termstyle.Set(
			"cmt-inserted",
			base.Foreground(lipgloss.Color("#a6d189")).Background(lipgloss.Color("#414559")),
		),
		termstyle.Set(
			"cmt-number",
			base.Foreground(lipgloss.Color("#ef9f76")),
		),
		termstyle.Set(
			"cmt-string",
			base.Foreground(lipgloss.Color("#a6d189")),
		),
		termstyle.Set(
			"cmt-name",
			base.Foreground(lipgloss.Color("#c6d0f5")),
		),
		termstyle.Set(
			"cmt-annotation",
			base.Foreground(lipgloss.Color("#8caaee")).Bold(true),
		),
		termstyle.Set(
			"cmt-propertyName",
			base.Foreground(lipgloss.Color("#ca9ee6")),
		),
		termstyle.Set(
			"cmt-bool",
			base.Foreground(lipgloss.Color("#ef9f76")),
		),
		termstyle.Set(
			"cmt-separator",
			base.Foreground(lipgloss.Color("#ef9f76")),
		),
		termstyle.Set(
			"cmt-punctuation",
			base.Foreground(lipgloss.Color("#99d1db")).Bold(true),
		),
		termstyle.Set(
			"ui-title",
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("#303446")).
				Background(lipgloss.Color("#ca9ee6")).
				Bold(true),
		),
		termstyle.Set(
			"ui-title-accent",
			base.Background(lipgloss.Lighten(lipgloss.Color("#303446"), 0.30)).
				Foreground(lipgloss.Lighten(lipgloss.Color("#c6d0f5"), 0.15)),
		),
		termstyle.Set(
			"ui-title-subtle",
			base.Background(lipgloss.Lighten(lipgloss.Color("#303446"), 0.15)),
		),
		termstyle.Set(
			"ui-text-accent",
			base.Foreground(lipgloss.Lighten(lipgloss.Color("#ca9ee6"), 0.15)),
		),
		termstyle.Set(
			"ui-text-accent-selected",
			base.Foreground(lipgloss.Color("#ca9ee6")),
		),
		termstyle.Set(
			"ui-text-subtle",
			base.Foreground(lipgloss.Darken(lipgloss.Color("#c6d0f5"), 0.15)),
		),
		termstyle.Set(
			"ui-text-subtle-selected",
			base.Foreground(lipgloss.Color("#c6d0f5")),
		),
		termstyle.Set(
			"ui-highlight",
			lipgloss.NewStyle().Background(lipgloss.Lighten(lipgloss.Color("#303446"), 0.15)),
		),
		termstyle.Set(
			"ui-highlight-selected",
			lipgloss.NewStyle().Background(lipgloss.Lighten(lipgloss.Color("#303446"), 0.30)),
		),
		termstyle.Set(
			"ui-title-ok",
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("#303446")).
				Background(lipgloss.Color("#a6d189")).
				Bold(true),
		),
		termstyle.Set(
			"ui-title-warn",
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("#303446")).
				Background(lipgloss.Color("#e5c890")).
				Bold(true),
		),
		termstyle.Set(
			"ui-title-error",
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("#303446")).
				Background(lipgloss.Color("#e78284")).
				Bold(true),
		),
		termstyle.Set(
			"ui-text-ok",
			base.Foreground(lipgloss.Color("#a6d189")),
		),
		termstyle.Set(
			"ui-text-warn",
			base.Foreground(lipgloss.Color("#e5c890")),
		),
		termstyle.Set(
			"ui-text-error",
			base.Foreground(lipgloss.Color("#e78284")),
		),
	)
}
