package syntree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/synhi/syntree"
)

func sampleTree() *syntree.Node {
	leafType := syntree.NewType("Leaf")
	rootType := syntree.NewType("Root").AsTop()

	return &syntree.Node{
		NodeTyp: rootType,
		FromPos: 0,
		ToPos:   10,
		Children: []*syntree.Node{
			{NodeTyp: leafType, FromPos: 0, ToPos: 3},
			{NodeTyp: leafType, FromPos: 3, ToPos: 10},
		},
	}
}

func TestNode_LengthAndType(t *testing.T) {
	t.Parallel()

	root := sampleTree()
	assert.Equal(t, 10, root.Length())
	assert.Equal(t, "Root", root.Type().Name())
	assert.True(t, root.Type().IsTop())
}

func TestCursor_FirstChildAndNextSibling(t *testing.T) {
	t.Parallel()

	root := sampleTree()
	c := root.Cursor()

	assert.Equal(t, 0, c.From())
	assert.Equal(t, 10, c.To())

	require.True(t, c.FirstChild())
	assert.Equal(t, 0, c.From())
	assert.Equal(t, 3, c.To())

	require.True(t, c.NextSibling())
	assert.Equal(t, 3, c.From())
	assert.Equal(t, 10, c.To())

	assert.False(t, c.NextSibling(), "no third sibling")
}

func TestCursor_ParentReturnsToPreviousNode(t *testing.T) {
	t.Parallel()

	root := sampleTree()
	c := root.Cursor()

	require.True(t, c.FirstChild())
	require.True(t, c.Parent())
	assert.Equal(t, 0, c.From())
	assert.Equal(t, 10, c.To())

	assert.False(t, c.Parent(), "already at the root")
}

func TestCursor_FirstChildFailsOnLeaf(t *testing.T) {
	t.Parallel()

	root := sampleTree()
	c := root.Cursor()

	require.True(t, c.FirstChild())
	assert.False(t, c.FirstChild(), "leaves have no children")
}

func TestCursor_MountedReportsFalseByDefault(t *testing.T) {
	t.Parallel()

	root := sampleTree()
	c := root.Cursor()

	m, ok := c.Mounted()
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestCursor_MountedReportsAttachedOverlay(t *testing.T) {
	t.Parallel()

	inner := sampleTree()
	mounted := &syntree.Mounted{Tree: inner, Overlay: []syntree.Range{{From: 0, To: 3}}}

	root := &syntree.Node{
		NodeTyp: syntree.NewType("Root").AsTop(),
		FromPos: 0,
		ToPos:   10,
		Mount:   mounted,
	}

	c := root.Cursor()

	got, ok := c.Mounted()
	require.True(t, ok)
	assert.Same(t, mounted, got)
}
