// Package termstyle renders resolved class strings to terminal colors.
//
// [style.Style] resolves a [tag.Tag] to a plain class string such as
// "cmt-string" or "cmt-literal cmt-emphasis" — the engine's core output is
// text, per §4.3, with no notion of a terminal or a color. termstyle is the
// consumer-side layer that maps those class strings to [lipgloss.Style]
// values for a terminal demo, the same separation the Pygments-token
// renderer this package is adapted from draws between token category and
// rendered color.
//
// Unlike a fixed Pygments token enum, [HighlightTree] emits free-form
// space-separated class strings built from whatever tag vocabulary a
// language defines (see [style.Preset]), so [Styles] is keyed by class
// string rather than by a closed set of constants. [Resolve] splits a class
// string on whitespace and looks up the most specific (rightmost) token that
// has an entry, falling back to the base style — the same "walk toward the
// root until something is defined" idiom, generalized from a fixed
// ancestor-pointer table to plain string lookup, since the fallback chain
// for a composed class was already resolved once, when [style.Style.Match]
// built the string.
//
// # Themes
//
// The [go.jacobcolvin.com/synhi/termstyle/theme] subpackage provides a
// handful of named palettes (Nord, Dracula, GitHub Dark, ...), each a
// function returning [Styles]. [Mode] marks whether a theme targets a light
// or dark terminal background.
//
// # Style strings
//
// [Parse], [MustParse], and [Encode] convert between Pygments-style strings
// ("bold #c678dd") and [lipgloss.Style] values. synhicat's --style flag
// takes this form directly (--style cmt-string="#ff0000 bold"), letting a
// user override one class from the command line without defining a whole
// new theme; [Encode] is the inverse, for anything that needs to report a
// resolved style back out in the same notation.
package termstyle
