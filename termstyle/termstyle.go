package termstyle

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Mode represents the color scheme mode of a theme.
type Mode int

// Color scheme modes.
//
//nolint:grouper // Enum.
const (
	Light Mode = iota
	Dark
)

// Styles maps class strings (as resolved by [style.Style.Match]/
// [style.CombinedMatch], or a UI-chrome key such as "ui-title") to their
// rendered [lipgloss.Style]. The empty string is the base style that
// [Resolve] falls back to.
type Styles map[string]lipgloss.Style

// StylesOption configures a [Styles] map during construction.
// See [Set] for the primary option.
type StylesOption func(map[string]lipgloss.Style)

// Set returns a [StylesOption] that overrides the style for the given class
// key. The key may be a single class ("cmt-comment"), a full composed class
// string ("cmt-literal cmt-emphasis") to override that exact combination, or
// a UI-chrome key not produced by the highlighter at all ("ui-title").
//
//nolint:gocritic // Value semantics preferred for API ergonomics.
func Set(class string, ls lipgloss.Style) StylesOption {
	return func(m map[string]lipgloss.Style) {
		m[class] = ls
	}
}

// NewStyles creates a [Styles] map. base is used both as the fallback style
// for any class with no matching entry and, unless overridden, as the style
// for the empty class string.
//
//nolint:gocritic // Value semantics preferred for API ergonomics.
func NewStyles(base lipgloss.Style, opts ...StylesOption) Styles {
	m := make(map[string]lipgloss.Style, len(opts)+1)
	m[""] = base

	for _, opt := range opts {
		opt(m)
	}

	return Styles(m)
}

// base returns the Styles' fallback style.
func (s Styles) base() lipgloss.Style {
	if ls, ok := s[""]; ok {
		return ls
	}

	return lipgloss.NewStyle()
}

// Resolve returns the rendered style for a space-separated class string.
//
// It first tries classes verbatim, so a theme can override an exact
// combination (e.g. "cmt-literal cmt-emphasis") differently from either
// class alone. Failing that, it walks the individual classes from last to
// first — the rightmost, most specific class per the highlighter's
// inherited-then-own ordering (§4.4) — and returns the first one with an
// entry. If nothing matches, it returns the base style.
func (s Styles) Resolve(classes string) lipgloss.Style {
	classes = strings.TrimSpace(classes)
	if classes == "" {
		return s.base()
	}

	if ls, ok := s[classes]; ok {
		return ls
	}

	fields := strings.Fields(classes)
	for i := len(fields) - 1; i >= 0; i-- {
		if ls, ok := s[fields[i]]; ok {
			return ls
		}
	}

	return s.base()
}

// Style returns a pointer to the resolved style for a single class key.
// Each call returns a pointer to a fresh copy, so two calls never return the
// same pointer, even for the same class.
func (s Styles) Style(class string) *lipgloss.Style {
	ls := s.Resolve(class)

	return &ls
}
