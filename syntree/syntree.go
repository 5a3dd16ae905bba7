// Package syntree defines the contracts a parser's output tree must satisfy
// to be driven by [go.jacobcolvin.com/synhi/highlight], and ships one
// concrete implementation ([Node] and its cursor) used by
// [go.jacobcolvin.com/synhi/toylang] and by the core's own tests.
//
// The highlighter depends only on the interfaces in this file. Nothing in
// this package or in highlight knows about any specific grammar; toylang is
// just one tenant of the contract.
package syntree

// Tree is a parsed syntax tree, or a mounted inner tree replacing/overlaying
// part of an outer one.
type Tree interface {
	// Length is the number of bytes this tree covers.
	Length() int

	// Type is the node type of the tree's root.
	Type() NodeType

	// Cursor returns a cursor positioned at the tree's root.
	Cursor() TreeCursor
}

// TreeCursor walks a [Tree]. A cursor is mutated in place by FirstChild,
// NextSibling and Parent; callers that need to remember a position should
// read From/To/Type before advancing.
type TreeCursor interface {
	// From is the start byte offset of the current node.
	From() int
	// To is the end byte offset of the current node.
	To() int
	// Type is the node type of the current node.
	Type() NodeType

	// FirstChild moves the cursor to the first child of the current node
	// and returns true, or leaves the cursor unchanged and returns false if
	// the current node has no children.
	FirstChild() bool
	// NextSibling moves the cursor to the next sibling and returns true, or
	// leaves the cursor unchanged and returns false if there is none.
	NextSibling() bool
	// Parent moves the cursor to the parent node and returns true, or
	// leaves the cursor unchanged and returns false if already at the root.
	Parent() bool

	// Mounted returns the mounted inner-language data attached to the
	// current node, if any. Mounting is a property of this specific node
	// occurrence, not of its [NodeType]: two nodes sharing a type may mount
	// different inner trees (or none).
	Mounted() (*Mounted, bool)
}

// NodeType identifies the grammatical category of a node.
type NodeType interface {
	// Name is the grammar-defined name of this node type (e.g. "String",
	// "Identifier"). Selector innermost steps match against Name.
	Name() string

	// IsTop is true for the root node type of a language/grammar. It marks
	// the node whose encounter updates the highlighter's current scope.
	IsTop() bool

	// Prop looks up the value stored under key, where key is typically a
	// *[NodeProp[T]] used as an identity key. ok is false if nothing was
	// ever stored under key for this type.
	Prop(key any) (value any, ok bool)
}

// Range is a byte range local to the node that mounts it: [From, To) offsets
// from the start of the mounting node, not absolute document offsets.
type Range struct {
	From int
	To   int
}

// Mounted describes an inner-language parse attached to a node.
//
// When Overlay is nil, Tree fully replaces the mounting node's subtree for
// highlighting purposes. When Overlay is non-empty, it is a positionally
// sorted, non-overlapping list of node-local ranges that belong to Tree; the
// remainder of the mounting node's extent is highlighted by the outer
// grammar as usual, and Tree's content is interleaved at the overlay
// boundaries.
//
// Tree's own node coordinates are in the same absolute coordinate space as
// the outer document (not renormalized to 0), so it can be traversed
// directly alongside the outer tree without a translation step; only
// Overlay's entries need "+ mounting node start" to become absolute.
type Mounted struct {
	Tree    Tree
	Overlay []Range
}

// NodeProp is a typed key for attaching arbitrary per-node-type data. Two
// distinct *NodeProp[T] values are always distinct keys, even if T and the
// chosen name coincide; construct one with [NewNodeProp] and hold onto it.
type NodeProp[T any] struct {
	name string
}

// NewNodeProp allocates a new property key. name is used only for
// diagnostics.
func NewNodeProp[T any](name string) *NodeProp[T] {
	return &NodeProp[T]{name: name}
}

// Name returns the diagnostic name given at construction.
func (p *NodeProp[T]) Name() string { return p.name }

// Get looks up this property on nt, returning the zero value and false if
// nt has nothing stored under this key or the stored value isn't of type T.
func (p *NodeProp[T]) Get(nt NodeType) (T, bool) {
	var zero T

	v, ok := nt.Prop(p)
	if !ok {
		return zero, false
	}

	tv, ok := v.(T)
	if !ok {
		return zero, false
	}

	return tv, true
}
