// Package highlight implements the tree highlighter: a cursor-driven
// traversal that resolves a [syntree.Tree]'s nodes to style classes via
// compiled [selector.Rule] chains and a [style.MatchFunc], and emits
// coalesced, non-overlapping spans over a byte range, per §4.4.
package highlight

import (
	"go.jacobcolvin.com/synhi/selector"
	"go.jacobcolvin.com/synhi/style"
	"go.jacobcolvin.com/synhi/syntree"
)

// EmitFunc receives one coalesced span [from, to) with its resolved,
// space-separated class string.
type EmitFunc func(from, to int, class string)

// HighlightAll drives [HighlightTree] over the whole of tree.
func HighlightAll(tree syntree.Tree, match style.MatchFunc, emit EmitFunc) {
	HighlightTree(tree, match, emit, 0, tree.Length())
}

// HighlightTree is the engine's single public entry point: walk tree's
// nodes intersecting [from, to), resolving tags through match, and emit
// non-overlapping, position-ordered spans to emit.
//
// The traversal is synchronous and performs no allocation beyond the name
// stack (grown once to the maximum depth reached) and the span builder's
// constant-size state.
func HighlightTree(tree syntree.Tree, match style.MatchFunc, emit EmitFunc, from, to int) {
	h := &highlighter{match: match}
	b := newSpanBuilder(from, emit)

	h.highlightRange(tree.Cursor(), from, to, "", 0, nil, b)
	b.flush(to)
}

type highlighter struct {
	stack []string
	match style.MatchFunc
}

func (h *highlighter) setStack(depth int, name string) {
	for len(h.stack) <= depth {
		h.stack = append(h.stack, "")
	}

	h.stack[depth] = name
}

// highlightRange implements §4.4's traversal contract for one node.
//
//nolint:revive // Mirrors the algorithm's parameter list one-to-one; splitting it obscures the correspondence.
func (h *highlighter) highlightRange(
	cur syntree.TreeCursor, from, to int, inherited string, depth int, scope any, b *spanBuilder,
) {
	start, end := cur.From(), cur.To()
	if start >= to || end <= from {
		return
	}

	h.setStack(depth, cur.Type().Name())

	if cur.Type().IsTop() {
		scope = cur.Type()
	}

	cls := inherited
	opaque := false

	if head, ok := selector.RuleProp.Get(cur.Type()); ok {
		for r := head; r != nil; r = r.Next {
			if !selector.MatchContext(r.Context, h.stack, depth) {
				continue
			}

			for _, t := range r.Tags {
				c := h.match(t, scope)
				if c == "" {
					continue
				}

				cls = appendClass(cls, c)

				if r.Mode == selector.Inherit {
					inherited = appendClass(inherited, c)
				}
			}

			if r.Mode == selector.Opaque {
				opaque = true
			}

			break
		}
	}

	// A node whose range only partially overlaps [from, to) (because a
	// caller requested a sub-range, or an overlay boundary splits it) still
	// contributes a span, but that span's start must not precede from —
	// §9's "highlighting of a range that starts/ends mid-token is allowed"
	// clips emitted spans to [from, to) rather than requiring token-aligned
	// boundaries.
	b.startSpan(max(start, from), cls)

	if opaque {
		return
	}

	if mounted, ok := cur.Mounted(); ok {
		h.highlightMounted(cur, mounted, from, to, inherited, depth, scope, cls, b)

		return
	}

	h.descendChildren(cur, from, to, inherited, depth, scope, cls, b)
}

// descendChildren implements step 7: recurse into each child intersecting
// [from, to), resuming the parent's own class between children so gaps
// (whitespace, punctuation with no rule) still carry any ambient class.
//
//nolint:revive // See highlightRange.
func (h *highlighter) descendChildren(
	cur syntree.TreeCursor, from, to int, inherited string, depth int, scope any, cls string, b *spanBuilder,
) {
	if !cur.FirstChild() {
		return
	}
	defer cur.Parent()

	for {
		cStart, cEnd := cur.From(), cur.To()
		if cEnd > from && cStart < to {
			h.highlightRange(cur, from, to, inherited, depth+1, scope, b)
			b.startSpan(min(to, cEnd), cls)
		}

		if !cur.NextSibling() {
			return
		}
	}
}

// highlightMounted implements step 6: a full mount replaces the node's
// subtree outright; an overlay mount interleaves outer children and inner
// tree content at each overlay boundary.
//
//nolint:revive // See highlightRange.
func (h *highlighter) highlightMounted(
	cur syntree.TreeCursor, m *syntree.Mounted, from, to int, inherited string, depth int, scope any, cls string, b *spanBuilder,
) {
	if len(m.Overlay) == 0 {
		h.highlightRange(m.Tree.Cursor(), from, to, inherited, depth+1, m.Tree.Type(), b)

		return
	}

	start, end := cur.From(), cur.To()
	innerScope := m.Tree.Type()
	pos := start

	for _, ov := range m.Overlay {
		absFrom, absTo := start+ov.From, start+ov.To

		if absFrom > pos {
			h.descendChildren(cur, max(from, pos), min(to, absFrom), inherited, depth, scope, cls, b)
		}

		b.startSpan(clamp(absFrom, from, to), cls)

		if clippedFrom, clippedTo := max(from, absFrom), min(to, absTo); clippedFrom < clippedTo {
			h.highlightRange(m.Tree.Cursor(), clippedFrom, clippedTo, inherited, depth, innerScope, b)
		}

		b.startSpan(clamp(absTo, from, to), cls)

		pos = absTo
		if pos >= to {
			return
		}
	}

	if pos < end {
		h.descendChildren(cur, max(from, pos), min(to, end), inherited, depth, scope, cls, b)
	}
}

func appendClass(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}

func clamp(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
