package styletree

import "charm.land/lipgloss/v2"

// node is one highlighted span in the tree, keyed by its half-open byte
// range [start, end).
type node struct {
	style  *lipgloss.Style // resolved style for this span
	left   *node
	right  *node
	start  int // span start, byte offset into the revision
	end    int // span end, byte offset into the revision (exclusive)
	seq    int // insertion order, so overlapping spans replay in highlight order
	maxEnd int // max end across this subtree, for stabbing-query pruning
	height int
}

func newSpanNode(start, end, seq int, style *lipgloss.Style) *node {
	return &node{
		start:  start,
		end:    end,
		style:  style,
		seq:    seq,
		maxEnd: end,
		height: 1,
	}
}

func (n *node) updateHeight() {
	leftH, rightH := 0, 0

	if n.left != nil {
		leftH = n.left.height
	}

	if n.right != nil {
		rightH = n.right.height
	}

	n.height = 1 + max(leftH, rightH)
}

// updateMaxEnd recalculates maxEnd from this node's own end and its
// children's maxEnd, keeping the stabbing-query pruning invariant intact
// after an insert or rotation.
func (n *node) updateMaxEnd() {
	n.maxEnd = n.end
	if n.left != nil && n.left.maxEnd > n.maxEnd {
		n.maxEnd = n.left.maxEnd
	}

	if n.right != nil && n.right.maxEnd > n.maxEnd {
		n.maxEnd = n.right.maxEnd
	}
}

func (n *node) balanceFactor() int {
	leftH, rightH := 0, 0

	if n.left != nil {
		leftH = n.left.height
	}

	if n.right != nil {
		rightH = n.right.height
	}

	return leftH - rightH
}

// rotateRight performs a right rotation on the subtree rooted at y.
//
//	    y                x
//	   / \              / \
//	  x   C    ->      A   y
//	 / \                  / \
//	A   B                B   C
func rotateRight(y *node) *node {
	x := y.left
	b := x.right

	x.right = y
	y.left = b

	y.updateHeight()
	y.updateMaxEnd()
	x.updateHeight()
	x.updateMaxEnd()

	return x
}

// rotateLeft performs a left rotation on the subtree rooted at x.
//
//	  x                  y
//	 / \                / \
//	A   y      ->      x   C
//	   / \            / \
//	  B   C          A   B
func rotateLeft(x *node) *node {
	y := x.right
	b := y.left

	y.left = x
	x.right = b

	x.updateHeight()
	x.updateMaxEnd()
	y.updateHeight()
	y.updateMaxEnd()

	return y
}

// rebalance restores the AVL height invariant for the subtree rooted at n
// and returns its (possibly new) root.
func rebalance(n *node) *node {
	n.updateHeight()
	n.updateMaxEnd()

	balance := n.balanceFactor()

	// Left heavy.
	if balance > 1 {
		// Left-right case: rotate the left child left first.
		if n.left.balanceFactor() < 0 {
			n.left = rotateLeft(n.left)
		}

		return rotateRight(n)
	}

	// Right heavy.
	if balance < -1 {
		// Right-left case: rotate the right child right first.
		if n.right.balanceFactor() > 0 {
			n.right = rotateRight(n.right)
		}

		return rotateLeft(n)
	}

	return n
}
