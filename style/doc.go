// Package style implements the style map described in §4.3: resolving a
// [tag.Tag] to a class string, for one style or a combination of styles.
//
// A [Style] is built once with [Define] from a list of [Entry] records (each
// naming the tags that map to one class) plus [Options] for a scope
// restriction, a catch-all class, or a fallback function. [Style.Match]
// walks a tag's fallback [tag.Tag.Set] — most to least specific — and
// returns the class of the first ancestor with a direct entry, memoizing the
// result.
//
// [Preset] builds the mechanical default: every tag maps to "cmt-<name>",
// modifiers append "cmt-<modifierName>" after the base class, with a few
// composite overrides (escapes and regexes read as "cmt-string2").
//
// [CombinedMatch] composes several [Style] values — e.g. a language's own
// preset plus a user override — into the single [MatchFunc] the tree
// highlighter consumes.
//
// This package knows nothing about terminals or colors; see
// [go.jacobcolvin.com/synhi/termstyle] for rendering resolved class strings
// to terminal styles.
package style
