// Package colors composes the two ways this module layers one
// [charm.land/lipgloss/v2.Style] over another: outright override, for a
// search match painted on top of a line's syntax colors, and a 50/50 LAB
// blend, for a diff row that should read as "added" or "removed" while
// still showing the syntax colors underneath.
package colors

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// visible reports whether c paints anything at all — not nil and not
// lipgloss's "no color" sentinel.
func visible(c color.Color) (colorful.Color, bool) {
	if c == nil {
		return colorful.Color{}, false
	}

	if _, isNoColor := c.(lipgloss.NoColor); isNoColor {
		return colorful.Color{}, false
	}

	return colorful.MakeColor(c)
}

// Visible reports whether c paints anything at all, for callers that only
// need the boolean (e.g. deciding whether to encode a foreground/background
// at all) and not the parsed [colorful.Color].
func Visible(c color.Color) bool {
	_, ok := visible(c)

	return ok
}

// Override returns overlay if it paints anything, otherwise base. Unlike
// [Blend], overlay wins outright rather than mixing with base — the rule a
// search-highlighted line uses over its own syntax color.
func Override(base, overlay color.Color) color.Color {
	if _, ok := visible(overlay); ok {
		return overlay
	}

	return base
}

// Blend mixes c1 and c2 50/50 in LAB space, the rule a diff-tinted line
// uses to keep a token's syntax color readable under the diff's accent
// rather than replacing it outright. An invisible operand is dropped in
// favor of the other; if both are invisible, Blend returns nil.
func Blend(c1, c2 color.Color) color.Color {
	cf1, ok1 := visible(c1)
	cf2, ok2 := visible(c2)

	switch {
	case !ok1 && !ok2:
		return nil
	case !ok1:
		return c2
	case !ok2:
		return c1
	default:
		return cf1.BlendLab(cf2, 0.5)
	}
}

// BlendStyles layers overlay onto base the way a diff row layers its
// added/removed/changed accent onto a token's own syntax style: foreground
// and background blend in LAB space via [Blend] rather than being replaced,
// and overlay's text transform (if any) composes after base's rather than
// supplanting it.
func BlendStyles(base, overlay *lipgloss.Style) *lipgloss.Style {
	style := *base

	if fg := Blend(style.GetForeground(), overlay.GetForeground()); fg != nil {
		style = style.Foreground(fg)
	}

	if bg := Blend(style.GetBackground(), overlay.GetBackground()); bg != nil {
		style = style.Background(bg)
	}

	baseTransform := style.GetTransform()
	overlayTransform := overlay.GetTransform()

	switch {
	case baseTransform != nil && overlayTransform != nil:
		style = style.Transform(func(s string) string {
			return overlayTransform(baseTransform(s))
		})
	case overlayTransform != nil:
		style = style.Transform(overlayTransform)
	}

	return &style
}

// OverrideStyles layers overlay onto base the way a search match layers its
// highlight onto a line's syntax style: foreground, background, and text
// transform are each replaced outright via [Override] when overlay sets
// one, rather than blended.
func OverrideStyles(base, overlay *lipgloss.Style) *lipgloss.Style {
	style := *base

	if fg := Override(style.GetForeground(), overlay.GetForeground()); fg != nil {
		style = style.Foreground(fg)
	}

	if bg := Override(style.GetBackground(), overlay.GetBackground()); bg != nil {
		style = style.Background(bg)
	}

	if overlayTransform := overlay.GetTransform(); overlayTransform != nil {
		style = style.Transform(overlayTransform)
	}

	return &style
}
