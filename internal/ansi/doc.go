// Package ansi makes arbitrary file content and user input safe to drop into
// the status bar.
//
// # Escaping control characters
//
// Revision names and search terms come from whatever file the user loaded,
// so they can carry the same control bytes a terminal would otherwise
// interpret — an embedded escape sequence, a stray NUL — and desync its
// cursor or colors rather than just display.
//
// [Escape] replaces each control character with a visible Unicode stand-in,
// safe to render without affecting terminal state:
//
//	escaped := ansi.Escape("\x1b[31mRed\x1b[0m") // "␛[31mRed␛[0m"
//
// # Fitting a width budget
//
// [EscapeWidth] additionally clamps the escaped text to a display-width
// budget, appending an ellipsis when it truncates — for a status bar field
// that must not push the line's other fields out of view:
//
//	field := ansi.EscapeWidth(longRevisionName, 20)
package ansi
