// Package style implements the style map: resolving a [tag.Tag] to a class
// string for one style, or a combination of styles, per §4.3.
package style

import (
	"strings"
	"sync"

	"go.jacobcolvin.com/synhi/tag"
)

// Entry is one `{tag(s), class}` mapping passed to [Define]. Grouping
// several tags under one class (e.g. both comment variants under
// "cmt-comment") is common enough that entries take a tag list rather than
// forcing callers to repeat the class for each tag individually — mirrored
// from how a highlight style spec in this domain is usually authored as a
// list of `{tag, class}` records rather than a single flat map.
type Entry struct {
	Tags  []*tag.Tag
	Class string
}

// Options configures [Define].
type Options struct {
	// Scope restricts this style to a single top-level node type; [Style.Match]
	// returns "" for any other scope. Leave nil to apply everywhere.
	Scope any // compared against the scope value passed to Match.
	// All is appended to every resolved class within Scope (or everywhere,
	// if Scope is nil).
	All string
	// Fallback computes a class for a tag that matched no entry, in place
	// of All, when non-nil. Used by [Preset] to synthesize "cmt-<tagname>"
	// from the tag's own name rather than from a fixed table.
	Fallback func(*tag.Tag) string
}

// Style holds one compiled highlight style: a monotonic tag→class cache,
// an optional scope restriction, and an optional catch-all class.
type Style struct {
	entries  []Entry
	scope    any
	hasScope bool
	all      string
	fallback func(*tag.Tag) string

	mu    sync.RWMutex
	cache map[int]cacheEntry
}

type cacheEntry struct {
	class string
	hit   bool
}

// Define builds a [Style] from entries and options, per §4.3's construction
// algorithm. entries are recorded as given; resolution against a tag's
// fallback [tag.Tag.Set] happens lazily in [Style.Match].
func Define(entries []Entry, opts Options) *Style {
	return &Style{
		entries:  entries,
		scope:    opts.Scope,
		hasScope: opts.Scope != nil,
		all:      opts.All,
		fallback: opts.Fallback,
		cache:    map[int]cacheEntry{},
	}
}

// direct returns the class registered directly for t by one of s's entries,
// and whether any entry named t at all.
func (s *Style) direct(t *tag.Tag) (string, bool) {
	for _, e := range s.entries {
		for _, et := range e.Tags {
			if et == t {
				return e.Class, true
			}
		}
	}

	return "", false
}

// Match resolves t to a class string for this style, honoring scope.
//
// Per §4.3: if the style is scoped and scope doesn't match, return "". Then
// walk t.Set (most to least specific); the first ancestor with a direct
// entry yields the class, memoized back onto t so repeat lookups for the
// same tag are O(1). s.all is applied to every styled token within scope,
// per §3, so it is appended to a matched entry's class rather than only
// standing in when nothing matches. If nothing in t.Set matches and a
// fallback is set, the fallback class is used in place of s.all.
func (s *Style) Match(t *tag.Tag, scope any) string {
	if s.hasScope && scope != s.scope {
		return ""
	}

	s.mu.RLock()
	if ce, ok := s.cache[t.ID()]; ok {
		s.mu.RUnlock()

		return ce.class
	}
	s.mu.RUnlock()

	class := ""
	hit := false

	for _, anc := range t.Set {
		if c, ok := s.direct(anc); ok {
			class = c
			hit = true

			break
		}
	}

	switch {
	case hit:
		class = joinClasses(class, s.all)
	case s.fallback != nil:
		class = s.fallback(t)
	default:
		class = s.all
	}

	s.mu.Lock()
	s.cache[t.ID()] = cacheEntry{class: class, hit: hit}
	s.mu.Unlock()

	return class
}

// joinClasses concatenates a and b space-separated, skipping whichever is
// empty — the same "only join non-empty parts" rule [combine] uses across
// styles, applied here within one style's entry class and its all class.
func joinClasses(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}

// MatchFunc is the shape the highlighter consumes: resolve a tag (within a
// scope) to a class string.
type MatchFunc func(t *tag.Tag, scope any) string

// CombinedMatch returns a [MatchFunc] that concatenates (space-separated,
// in styles order) every non-empty class each style in styles resolves for
// a tag.
//
// If none of styles is scoped, results are cached by tag id (scope is
// constant across calls in that case and need not be part of the key); a
// scoped combination is rarely repeated with the same tag/scope pair, so it
// is computed fresh every call.
func CombinedMatch(styles []*Style) MatchFunc {
	anyScoped := false

	for _, st := range styles {
		if st.hasScope {
			anyScoped = true

			break
		}
	}

	if !anyScoped {
		var (
			mu    sync.Mutex
			cache = map[int]string{}
		)

		return func(t *tag.Tag, scope any) string {
			mu.Lock()
			if c, ok := cache[t.ID()]; ok {
				mu.Unlock()

				return c
			}
			mu.Unlock()

			c := combine(styles, t, scope)

			mu.Lock()
			cache[t.ID()] = c
			mu.Unlock()

			return c
		}
	}

	return func(t *tag.Tag, scope any) string {
		return combine(styles, t, scope)
	}
}

func combine(styles []*Style, t *tag.Tag, scope any) string {
	var parts []string

	for _, st := range styles {
		if c := st.Match(t, scope); c != "" {
			parts = append(parts, c)
		}
	}

	return strings.Join(parts, " ")
}
