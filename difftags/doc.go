// Package difftags computes a minimal edit sequence between two token
// streams (typically source lines) and classifies each operation with a
// [tag.Tag] — [tag.Inserted], [tag.Deleted], or [tag.Changed] — so the
// result composes with the same [go.jacobcolvin.com/synhi/style] resolution
// the tree highlighter uses, rather than a bespoke rendering path.
//
// # Algorithm Interface
//
// [Algorithm] allows pluggable diff algorithms; [Hirschberg] is the default,
// using a space-efficient LCS strategy.
//
// Unlike the standard dynamic programming approach that requires O(m*n)
// space, Hirschberg's divide-and-conquer strategy reduces space complexity to
// O(n), n being the length of the after sequence, while maintaining O(m*n)
// time. This matters when diffing large
// documents line by line.
//
// # Usage
//
// Create a [Hirschberg] instance once and reuse it across comparisons; its
// buffers grow as needed but are never shrunk:
//
//	h := difftags.NewHirschberg()
//	ops := h.Diff(before, after)
//	lines := difftags.Classify(ops)
//
// Each [Line] in the result carries a Tag — resolve it with the same
// [go.jacobcolvin.com/synhi/style.MatchFunc] passed to
// [go.jacobcolvin.com/synhi/highlight.HighlightTree] to get a consistent
// class string across both syntax and diff highlighting.
package difftags
