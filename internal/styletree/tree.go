package styletree

import "charm.land/lipgloss/v2"

// Tree indexes the highlighted spans of one revision's rendered output by
// byte range, so a viewer can answer "what style covers this point" or
// "what spans cover this line" in O(log n + k) without re-running the
// highlighter. Spans are half-open [start, end); results come back in
// insertion order, which is highlight order, so a caller compositing
// overlapping spans (search highlight over syntax color, say) sees the base
// span before any overlay.
type Tree struct {
	root *node
	size int
	seq  int // next insertion sequence number
}

// New returns an empty [Tree].
func New() *Tree {
	return &Tree{}
}

// Len reports how many spans are indexed.
func (t *Tree) Len() int {
	return t.size
}

// Clear drops every indexed span, for reuse across revisions without
// reallocating the tree.
func (t *Tree) Clear() {
	t.root = nil
	t.size = 0
	t.seq = 0
}

// Insert indexes the span [start, end) as styled with style.
func (t *Tree) Insert(start, end int, style *lipgloss.Style) {
	t.root = t.insertNode(t.root, start, end, t.seq, style)
	t.seq++
	t.size++
}

func (t *Tree) insertNode(n *node, start, end, seq int, style *lipgloss.Style) *node {
	if n == nil {
		return newSpanNode(start, end, seq, style)
	}

	if start < n.start {
		n.left = t.insertNode(n.left, start, end, seq, style)
	} else {
		n.right = t.insertNode(n.right, start, end, seq, style)
	}

	return rebalance(n)
}

// hit is a candidate match collected during a query, carrying its insertion
// sequence so results can be reordered back to highlight order.
type hit struct {
	style *lipgloss.Style
	seq   int
}

// Query returns the styles of every span containing point, in highlight
// (insertion) order. A later, unrelated insert does not change the relative
// order of spans already indexed.
func (t *Tree) Query(point int) []*lipgloss.Style {
	if t.root == nil {
		return nil
	}

	var hits []hit

	queryPoint(t.root, point, &hits)

	if len(hits) == 0 {
		return nil
	}

	styles := make([]*lipgloss.Style, len(hits))
	for i := range hits {
		styles[i] = hits[i].style
	}

	return styles
}

// StyleAt returns the style of the topmost span containing point — the
// last span inserted that covers it, matching the highlighter's rule that a
// later-applied class (e.g. a search-highlight overlay) wins over an
// earlier one (e.g. the base syntax class) at the same position. It
// reports false if no indexed span covers point.
func (t *Tree) StyleAt(point int) (lipgloss.Style, bool) {
	styles := t.Query(point)
	if len(styles) == 0 {
		return lipgloss.Style{}, false
	}

	return *styles[len(styles)-1], true
}

func queryPoint(n *node, point int, hits *[]hit) {
	if n == nil {
		return
	}

	// Prune: if point is beyond the maximum end in this subtree, no span
	// here can contain it.
	if point >= n.maxEnd {
		return
	}

	queryPoint(n.left, point, hits)

	if point >= n.start && point < n.end {
		insertSorted(hits, hit{style: n.style, seq: n.seq})
	}

	// Spans in the right subtree all start at or after n.start.
	if point >= n.start {
		queryPoint(n.right, point, hits)
	}
}

// insertSorted appends h and walks it back into place by seq, an insertion
// sort that stays cheap because in-order tree traversal already produces
// nearly-sorted output.
func insertSorted(hits *[]hit, h hit) {
	*hits = append(*hits, h)
	for i := len(*hits) - 1; i > 0 && (*hits)[i].seq < (*hits)[i-1].seq; i-- {
		(*hits)[i], (*hits)[i-1] = (*hits)[i-1], (*hits)[i]
	}
}

// Span is one indexed highlight span returned by [Tree.SpansIn].
type Span struct {
	Style *lipgloss.Style
	Start int
	End   int
	seq   int // insertion sequence, for ordering
}

// SpansIn returns every span overlapping [start, end) — typically one
// display line's byte range — in highlight order, so a renderer can walk
// them left to right and fill the gaps between spans with unstyled text.
// A span [sStart, sEnd) overlaps [start, end) when sStart < end && sEnd > start.
func (t *Tree) SpansIn(start, end int) []Span {
	if t.root == nil {
		return nil
	}

	var spans []Span

	queryRange(t.root, start, end, &spans)

	if len(spans) == 0 {
		return nil
	}

	return spans
}

func queryRange(n *node, start, end int, spans *[]Span) {
	if n == nil {
		return
	}

	// Prune: if the query starts beyond the maximum end in this subtree,
	// nothing here can overlap.
	if start >= n.maxEnd {
		return
	}

	queryRange(n.left, start, end, spans)

	if n.start < end && n.end > start {
		insertSpanSorted(spans, Span{Start: n.start, End: n.end, Style: n.style, seq: n.seq})
	}

	// Spans in the right subtree all start at or after n.start, so they
	// can't overlap [start, end) once end <= n.start.
	if end > n.start {
		queryRange(n.right, start, end, spans)
	}
}

func insertSpanSorted(spans *[]Span, s Span) {
	*spans = append(*spans, s)
	for i := len(*spans) - 1; i > 0 && (*spans)[i].seq < (*spans)[i-1].seq; i-- {
		(*spans)[i], (*spans)[i-1] = (*spans)[i-1], (*spans)[i]
	}
}
