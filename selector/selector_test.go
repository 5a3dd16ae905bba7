package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/synhi/selector"
	"go.jacobcolvin.com/synhi/tag"
)

func TestCompile_SimplePath(t *testing.T) {
	t.Parallel()

	tg := tag.Define("x", nil)
	rules := selector.Compile(selector.Spec{Selector: "Identifier", Tags: []*tag.Tag{tg}})

	r := rules["Identifier"]
	require.NotNil(t, r)
	assert.Equal(t, []*tag.Tag{tg}, r.Tags)
	assert.Equal(t, selector.Normal, r.Mode)
	assert.Empty(t, r.Context)
	assert.Nil(t, r.Next)
}

func TestCompile_ContextOrderIsNearestParentFirst(t *testing.T) {
	t.Parallel()

	tg := tag.Define("x", nil)
	rules := selector.Compile(selector.Spec{Selector: "Map/Key/Identifier", Tags: []*tag.Tag{tg}})

	r := rules["Identifier"]
	require.NotNil(t, r)
	assert.Equal(t, []string{"Key", "Map"}, r.Context)
}

func TestCompile_WildcardAndModes(t *testing.T) {
	t.Parallel()

	tg := tag.Define("x", nil)
	rules := selector.Compile(
		selector.Spec{Selector: "*/Tag/...", Tags: []*tag.Tag{tg}},
		selector.Spec{Selector: "Array!", Tags: []*tag.Tag{tg}},
	)

	tagRule := rules["Tag"]
	require.NotNil(t, tagRule)
	assert.Equal(t, selector.Inherit, tagRule.Mode)
	assert.Equal(t, []string{""}, tagRule.Context)

	arrRule := rules["Array"]
	require.NotNil(t, arrRule)
	assert.Equal(t, selector.Opaque, arrRule.Mode)
}

func TestCompile_QuotedStep(t *testing.T) {
	t.Parallel()

	tg := tag.Define("x", nil)
	rules := selector.Compile(selector.Spec{Selector: `"a/b"`, Tags: []*tag.Tag{tg}})

	require.NotNil(t, rules[`a/b`])
}

func TestCompile_EmptyInnermostPanics(t *testing.T) {
	t.Parallel()

	tg := tag.Define("x", nil)

	require.Panics(t, func() {
		selector.Compile(selector.Spec{Selector: "Foo/", Tags: []*tag.Tag{tg}})
	})
}

func TestCompile_EqualDepthOrdering(t *testing.T) {
	t.Parallel()

	older := tag.Define("older", nil)
	newer := tag.Define("newer", nil)

	rules := selector.Compile(
		selector.Spec{Selector: "Ctx/Leaf", Tags: []*tag.Tag{older}},
		selector.Spec{Selector: "Ctx/Leaf", Tags: []*tag.Tag{newer}},
	)

	r := rules["Leaf"]
	require.NotNil(t, r)
	// Equal depth (1): the later-registered spec (newer) is tried first.
	assert.Equal(t, []*tag.Tag{newer}, r.Tags)
	require.NotNil(t, r.Next)
	assert.Equal(t, []*tag.Tag{older}, r.Next.Tags)
}

func TestCompile_DepthOrdering(t *testing.T) {
	t.Parallel()

	shallow := tag.Define("shallow", nil)
	deep := tag.Define("deep", nil)

	rules := selector.Compile(
		selector.Spec{Selector: "Leaf", Tags: []*tag.Tag{shallow}},
		selector.Spec{Selector: "Ctx/Leaf", Tags: []*tag.Tag{deep}},
	)

	r := rules["Leaf"]
	require.NotNil(t, r)
	assert.Equal(t, []*tag.Tag{deep}, r.Tags)
	require.NotNil(t, r.Next)
	assert.Equal(t, []*tag.Tag{shallow}, r.Next.Tags)
}

func TestMatchContext(t *testing.T) {
	t.Parallel()

	stack := []string{"Map", "Key", "Identifier"}
	// depth=2 means current node is stack[2]="Identifier"; parent is
	// stack[1]="Key", grandparent stack[0]="Map".
	assert.True(t, selector.MatchContext([]string{"Key", "Map"}, stack, 2))
	assert.True(t, selector.MatchContext([]string{""}, stack, 2))
	assert.False(t, selector.MatchContext([]string{"Other"}, stack, 2))
	assert.False(t, selector.MatchContext([]string{"Key", "Map", "Extra"}, stack, 2))
}
