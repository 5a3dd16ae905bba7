package theme

import (
	"charm.land/lipgloss/v2"

	"go.jacobcolvin.com/synhi/termstyle"
)

// GithubDark returns [termstyle.Styles] using github-dark colors.
func GithubDark() termstyle.Styles {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e6edf3")).
		Background(lipgloss.Color("#0d1117"))

	return termstyle.NewStyles(base,
		termstyle.Set(
			"cmt-comment",
			base.Foreground(lipgloss.Color("#8b949e")).Italic(true),
		),
		termstyle.Set(
			"cmt-deleted",
			base.Foreground(lipgloss.Color("#ffa198")).Background(lipgloss.Color("#490202")),
		),
		termstyle.Set(
			"cmt-invalid",
			base.Foreground(lipgloss.Color("#ffa198")),
		),
		termstyle.Set(
			"cmt-inserted",
			base.Foreground(lipgloss.Color("#56d364")).Background(lipgloss.Color("#0f5323")),
		),
		termstyle.Set(
			"cmt-name",
			base.Foreground(lipgloss.Color("#e6edf3")),
		),
		termstyle.Set(
			"cmt-annotation",
			base.Foreground(lipgloss.Color("#d2a8ff")).Bold(true),
		),
		termstyle.Set(
			"cmt-propertyName",
			base.Foreground(lipgloss.Color("#7ee787")),
		),
		termstyle.Set(
			"cmt-bool",
			base.Foreground(lipgloss.Color("#79c0ff")),
		),
		termstyle.Set(
			"cmt-string",
			base.Foreground(lipgloss.Color("#a5d6ff")),
		),
		termstyle.Set(
			"cmt-separator",
			base.Foreground(lipgloss.Color("#ff7b72")),
		),
		termstyle.Set(
			"cmt-punctuation",
			base.Foreground(lipgloss.Color("#ff7b72")).Bold(true),
		),
	)
}
