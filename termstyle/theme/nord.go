package theme

import (
	"charm.land/lipgloss/v2"

	"go.jacobcolvin.com/synhi/termstyle"
)

// Nord returns [termstyle.Styles] using nord colors.
func Nord() termstyle.Styles {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d8dee9")).
		Background(lipgloss.Color("#2e3440"))

	return termstyle.NewStyles(base,
		termstyle.Set(
			"cmt-comment",
			base.Foreground(lipgloss.Color("#616e87")).Italic(true),
		),
		termstyle.Set(
			"cmt-deleted",
			base.Foreground(lipgloss.Color("#bf616a")),
		),
		termstyle.Set(
			"cmt-invalid",
			base.Foreground(lipgloss.Color("#bf616a")),
		),
		termstyle.Set(
			"cmt-inserted",
			base.Foreground(lipgloss.Color("#a3be8c")),
		),
		termstyle.Set(
			"cmt-changed",
			base.Foreground(lipgloss.Color("#ebcb8b")),
		),
		termstyle.Set(
			"cmt-number",
			base.Foreground(lipgloss.Color("#b48ead")),
		),
		termstyle.Set(
			"cmt-string",
			base.Foreground(lipgloss.Color("#a3be8c")),
		),
		termstyle.Set(
			"cmt-string2",
			base.Foreground(lipgloss.Color("#ebcb8b")),
		),
		termstyle.Set(
			"cmt-name",
			base.Foreground(lipgloss.Color("#d8dee9")),
		),
		termstyle.Set(
			"cmt-annotation",
			base.Foreground(lipgloss.Color("#d08770")),
		),
		termstyle.Set(
			"cmt-propertyName",
			base.Foreground(lipgloss.Color("#81a1c1")),
		),
		termstyle.Set(
			"cmt-punctuation",
			base.Foreground(lipgloss.Color("#eceff4")),
		),
		termstyle.Set(
			"cmt-separator",
			base.Foreground(lipgloss.Color("#8fbcbb")),
		),
		termstyle.Set(
			"ui-title",
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("#2e3440")).
				Background(lipgloss.Color("#81a1c1")).
				Bold(true),
		),
		termstyle.Set(
			"ui-title-accent",
			base.Background(lipgloss.Lighten(lipgloss.Color("#2e3440"), 0.30)).
				Foreground(lipgloss.Lighten(lipgloss.Color("#d8dee9"), 0.15)),
		),
		termstyle.Set(
			"ui-title-subtle",
			base.Background(lipgloss.Lighten(lipgloss.Color("#2e3440"), 0.15)),
		),
		termstyle.Set(
			"ui-text-accent",
			base.Foreground(lipgloss.Lighten(lipgloss.Color("#d8dee9"), 0.15)),
		),
		termstyle.Set(
			"ui-text-accent-selected",
			base.Foreground(lipgloss.Color("#d8dee9")),
		),
		termstyle.Set(
			"ui-text-subtle",
			base.Foreground(lipgloss.Darken(lipgloss.Color("#d8dee9"), 0.15)),
		),
		termstyle.Set(
			"ui-text-subtle-selected",
			base.Foreground(lipgloss.Color("#d8dee9")),
		),
		termstyle.Set(
			"ui-highlight",
			lipgloss.NewStyle().Background(lipgloss.Lighten(lipgloss.Color("#2e3440"), 0.15)),
		),
		termstyle.Set(
			"ui-highlight-selected",
			lipgloss.NewStyle().Background(lipgloss.Lighten(lipgloss.Color("#2e3440"), 0.30)),
		),
	)
}
