// Package styletree indexes the resolved [charm.land/lipgloss/v2.Style] of
// every highlighted span of a revision by byte range, so a renderer can pull
// out exactly the spans covering one display line (for [Tree.SpansIn]) or
// the style in effect at one byte offset (for [Tree.StyleAt]) without
// re-walking the syntax tree that produced them. Spans are half-open
// [start, end) and stored in an augmented AVL tree keyed by start position,
// each node also tracking the maximum end in its subtree so stabbing and
// range queries can prune whole subtrees that end before the query point.
package styletree
