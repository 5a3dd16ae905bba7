package fangs

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"

	"go.jacobcolvin.com/synhi/termstyle"
)

// ColorScheme creates a [fang.ColorScheme] from [termstyle.Styles].
//
// This allows CLI chrome to be derived from the same theme a user picked for
// highlighting, so help output and highlighted source share a palette.
func ColorScheme(styles termstyle.Styles) fang.ColorScheme {
	base := styles.Style("")
	comment := styles.Style("cmt-comment")
	invalid := styles.Style("cmt-invalid")

	return fang.ColorScheme{
		Base:           base.GetForeground(),
		Title:          styles.Style("cmt-propertyName").GetForeground(),
		Description:    base.GetForeground(),
		Codeblock:      base.GetBackground(),
		Program:        styles.Style("cmt-propertyName").GetForeground(),
		Command:        styles.Style("cmt-annotation").GetForeground(),
		DimmedArgument: comment.GetForeground(),
		Comment:        comment.GetForeground(),
		Flag:           styles.Style("cmt-number").GetForeground(),
		FlagDefault:    comment.GetForeground(),
		QuotedString:   styles.Style("cmt-string").GetForeground(),
		Argument:       base.GetForeground(),
		Dash:           styles.Style("cmt-punctuation").GetForeground(),
		ErrorHeader: [2]color.Color{
			invalid.GetForeground(),
			invalid.GetBackground(),
		},
	}
}

// ColorSchemeFunc returns a [fang.ColorSchemeFunc] that creates a
// [fang.ColorScheme] from [termstyle.Styles].
//
// This wraps [ColorScheme] for use with [fang.WithColorSchemeFunc]. Since
// themes are designed for a specific light/dark mode, the
// [lipgloss.LightDarkFunc] parameter is ignored.
func ColorSchemeFunc(styles termstyle.Styles) fang.ColorSchemeFunc {
	return func(_ lipgloss.LightDarkFunc) fang.ColorScheme {
		return ColorScheme(styles)
	}
}
