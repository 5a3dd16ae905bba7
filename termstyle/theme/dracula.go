package theme

import (
	"charm.land/lipgloss/v2"

	"go.jacobcolvin.com/synhi/termstyle"
)

// Dracula returns [termstyle.Styles] using dracula colors.
func Dracula() termstyle.Styles {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f8f8f2")).
		Background(lipgloss.Color("#282a36"))

	return termstyle.NewStyles(base,
		termstyle.Set(
			"cmt-comment",
			base.Foreground(lipgloss.Color("#6272a4")),
		),
		termstyle.Set(
			"cmt-deleted",
			base.Foreground(lipgloss.Color("#ff5555")),
		),
		termstyle.Set(
			"cmt-invalid",
			base.Foreground(lipgloss.Color("#f8f8f2")),
		),
		termstyle.Set(
			"cmt-inserted",
			base.Foreground(lipgloss.Color("#50fa7b")).Bold(true),
		),
		termstyle.Set(
			"cmt-changed",
			base.Foreground(lipgloss.Color("#f1fa8c")),
		),
		termstyle.Set(
			"cmt-number",
			base.Foreground(lipgloss.Color("#bd93f9")),
		),
		termstyle.Set(
			"cmt-string",
			base.Foreground(lipgloss.Color("#f1fa8c")),
		),
		termstyle.Set(
			"cmt-name",
			base.Foreground(lipgloss.Color("#f8f8f2")),
		),
		termstyle.Set(
			"cmt-annotation",
			base.Foreground(lipgloss.Color("#f8f8f2")),
		),
		termstyle.Set(
			"cmt-propertyName",
			base.Foreground(lipgloss.Color("#ff79c6")),
		),
		termstyle.Set(
			"cmt-punctuation",
			base.Foreground(lipgloss.Color("#f8f8f2")),
		),
		termstyle.Set(
			"cmt-bool",
			base.Foreground(lipgloss.Color("#ff79c6")),
		),
		termstyle.Set(
			"cmt-separator",
			base.Foreground(lipgloss.Color("#f8f8f2")),
		),
		termstyle.Set(
			"ui-title",
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("#282a36")).
				Background(lipgloss.Color("#ff79c6")).
				Bold(true),
		),
		termstyle.Set(
			"ui-title-accent",
			base.Background(lipgloss.Lighten(lipgloss.Color("#282a36"), 0.30)).
				Foreground(lipgloss.Lighten(lipgloss.Color("#f8f8f2"), 0.15)),
		),
		termstyle.Set(
			"ui-title-subtle",
			base.Background(lipgloss.Lighten(lipgloss.Color("#282a36"), 0.15)),
		),
		termstyle.Set(
			"ui-text-accent",
			base.Foreground(lipgloss.Lighten(lipgloss.Color("#f8f8f2"), 0.15)),
		),
		termstyle.Set(
			"ui-text-accent-selected",
			base.Foreground(lipgloss.Color("#f8f8f2")),
		),
		termstyle.Set(
			"ui-text-subtle",
			base.Foreground(lipgloss.Darken(lipgloss.Color("#f8f8f2"), 0.15)),
		),
		termstyle.Set(
			"ui-text-subtle-selected",
			base.Foreground(lipgloss.Color("#f8f8f2")),
		),
		termstyle.Set(
			"ui-highlight",
			lipgloss.NewStyle().Background(lipgloss.Lighten(lipgloss.Color("#282a36"), 0.15)),
		),
		termstyle.Set(
			"ui-highlight-selected",
			lipgloss.NewStyle().Background(lipgloss.Lighten(lipgloss.Color("#282a36"), 0.30)),
		),
		termstyle.Set(
			"ui-title-ok",
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("#282a36")).
				Background(lipgloss.Color("#50fa7b")).
				Bold(true),
		),
		termstyle.Set(
			"ui-title-warn",
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("#282a36")).
				Background(lipgloss.Color("#f1fa8c")).
				Bold(true),
		),
		termstyle.Set(
			"ui-title-error",
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("#282a36")).
				Background(lipgloss.Color("#ff5555")).
				Bold(true),
		),
		termstyle.Set(
			"ui-text-ok",
			base.Foreground(lipgloss.Color("#50fa7b")),
		),
		termstyle.Set(
			"ui-text-warn",
			base.Foreground(lipgloss.Color("#f1fa8c")),
		),
		termstyle.Set(
			"ui-text-error",
			base.Foreground(lipgloss.Color("#ff5555")),
		),
	)
}
