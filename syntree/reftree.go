package syntree

// Node is a concrete [Tree]/[TreeCursor]-satisfying node used by toylang and
// by this module's own tests. Unlike a production parser's packed node
// representation, Node is a plain pointer tree: adequate for a toy grammar
// and for exercising the highlighter contract end to end.
type Node struct {
	NodeTyp  *Type
	FromPos  int
	ToPos    int
	Children []*Node
	Mount    *Mounted
}

// Length implements [Tree].
func (n *Node) Length() int { return n.ToPos - n.FromPos }

// Type implements [Tree].
func (n *Node) Type() NodeType { return n.NodeTyp }

// Cursor implements [Tree], returning a cursor anchored at n.
func (n *Node) Cursor() TreeCursor {
	return &cursor{stack: []*Node{n}}
}

// cursor is a path from the root to the current node, used so Parent/
// NextSibling can navigate without needing back-pointers on Node.
type cursor struct {
	stack []*Node // stack[0] is the root; stack[len-1] is current.
	idx   []int   // idx[i] is the child index of stack[i+1] within stack[i].
}

func (c *cursor) current() *Node { return c.stack[len(c.stack)-1] }

func (c *cursor) From() int { return c.current().FromPos }

func (c *cursor) To() int { return c.current().ToPos }

func (c *cursor) Type() NodeType { return c.current().NodeTyp }

func (c *cursor) Mounted() (*Mounted, bool) {
	m := c.current().Mount
	return m, m != nil
}

func (c *cursor) FirstChild() bool {
	cur := c.current()
	if len(cur.Children) == 0 {
		return false
	}

	c.stack = append(c.stack, cur.Children[0])
	c.idx = append(c.idx, 0)

	return true
}

func (c *cursor) NextSibling() bool {
	if len(c.stack) < 2 {
		return false
	}

	parent := c.stack[len(c.stack)-2]
	i := c.idx[len(c.idx)-1]

	if i+1 >= len(parent.Children) {
		return false
	}

	c.idx[len(c.idx)-1] = i + 1
	c.stack[len(c.stack)-1] = parent.Children[i+1]

	return true
}

func (c *cursor) Parent() bool {
	if len(c.stack) < 2 {
		return false
	}

	c.stack = c.stack[:len(c.stack)-1]
	c.idx = c.idx[:len(c.idx)-1]

	return true
}

// Type is a concrete [NodeType] backed by a map of arbitrary node props.
type Type struct {
	NodeName string
	Top      bool
	Props    map[any]any
}

// NewType allocates a node type. Attach props afterward with [Type.Set].
func NewType(name string) *Type {
	return &Type{NodeName: name, Props: map[any]any{}}
}

// AsTop marks t as a language's root node type (isTop) and returns it, for
// chained construction.
func (t *Type) AsTop() *Type {
	t.Top = true
	return t
}

// Set attaches a value under key, for chained construction.
func (t *Type) Set(key, value any) *Type {
	t.Props[key] = value
	return t
}

func (t *Type) Name() string { return t.NodeName }

func (t *Type) IsTop() bool { return t.Top }

func (t *Type) Prop(key any) (any, bool) {
	v, ok := t.Props[key]
	return v, ok
}
