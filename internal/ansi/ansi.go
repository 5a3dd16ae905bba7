package ansi

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

const (
	// nul is the first C0 control character.
	nul = 0x00
	// unitSeparator is the last C0 control character.
	unitSeparator = 0x1F
	// pad is the first C1 control character.
	pad = 0x80
	// apc is the last C1 control character.
	apc = 0x9F
	// del is the delete control character.
	del = 0x7F

	// nulPicture is the Unicode Control Picture for [nul].
	nulPicture = 0x2400
	// delPicture is the Unicode Control Picture for [del].
	delPicture = 0x2421
	// replacementCharacter stands in for C1 controls, which have no Control
	// Picture of their own.
	replacementCharacter = 0xFFFD

	ellipsis = "…"
)

// placeholder maps one rune to the glyph [Escape] renders in its place, or
// reports false if r needs no substitution.
func placeholder(r rune) (rune, bool) {
	switch {
	case r >= nul && r <= unitSeparator:
		return r + nulPicture, true
	case r == del:
		return delPicture, true
	case r >= pad && r <= apc:
		return replacementCharacter, true
	default:
		return 0, false
	}
}

// Escape replaces control characters with visible Unicode Control Pictures
// (C0, plus DEL) or the replacement character (C1), so status-bar text
// sourced from file content — a revision's name, a search term typed against
// it — can't move the cursor, change colors, or otherwise desync the
// terminal when rendered.
func Escape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for _, r := range s {
		if p, ok := placeholder(r); ok {
			sb.WriteRune(p)
		} else {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// EscapeWidth escapes s like [Escape] and truncates the result to at most
// width display cells, appending an ellipsis when it does. A non-positive
// width always yields the empty string.
func EscapeWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}

	escaped := Escape(s)
	if xansi.StringWidth(escaped) <= width {
		return escaped
	}

	if width <= xansi.StringWidth(ellipsis) {
		return xansi.Cut(ellipsis, 0, width)
	}

	return xansi.Cut(escaped, 0, width-xansi.StringWidth(ellipsis)) + ellipsis
}
