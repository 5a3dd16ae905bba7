package synview_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/synhi/bubbles/synview"
	"go.jacobcolvin.com/synhi/termstyle"
	"go.jacobcolvin.com/synhi/termstyle/theme"
)

func testStyles(t *testing.T) termstyle.Styles {
	t.Helper()

	styles, ok := theme.Styles("nord")
	require.True(t, ok)

	return styles
}

func TestModel_AppendRevisionRendersPlainView(t *testing.T) {
	t.Parallel()

	m := synview.New(synview.WithStyles(testStyles(t)))
	m.SetWidth(40)
	m.SetHeight(5)
	m.AppendRevision("v1", "(hello world)")

	assert.Equal(t, 1, m.RevisionCount())
	assert.False(t, m.IsShowingDiff())
	assert.Contains(t, m.View(), "hello")
}

func TestModel_SecondRevisionShowsDiff(t *testing.T) {
	t.Parallel()

	m := synview.New(synview.WithStyles(testStyles(t)))
	m.SetWidth(40)
	m.SetHeight(10)
	m.AppendRevision("v1", "(a)\n(b)")
	m.AppendRevision("v2", "(a)\n(c)")

	assert.True(t, m.IsShowingDiff())

	view := m.View()
	assert.Contains(t, view, "a")
	assert.Contains(t, view, "c")
}

func TestModel_ToggleDiffModeShowsPlainView(t *testing.T) {
	t.Parallel()

	m := synview.New(synview.WithStyles(testStyles(t)))
	m.SetWidth(40)
	m.SetHeight(10)
	m.AppendRevision("v1", "(a)")
	m.AppendRevision("v2", "(b)")

	m.ToggleDiffMode()
	assert.False(t, m.IsShowingDiff())
}

func TestModel_RevisionNavigation(t *testing.T) {
	t.Parallel()

	m := synview.New(synview.WithStyles(testStyles(t)))
	m.AppendRevision("v1", "(a)")
	m.AppendRevision("v2", "(b)")

	assert.Equal(t, 1, m.RevisionIndex())

	m.PrevRevision()
	assert.Equal(t, 0, m.RevisionIndex())
	assert.Equal(t, "v1", m.CurrentRevisionName())

	m.NextRevision()
	assert.Equal(t, 1, m.RevisionIndex())
}

func TestModel_ScrollClampsToDocumentBounds(t *testing.T) {
	t.Parallel()

	m := synview.New()
	m.SetWidth(20)
	m.SetHeight(3)
	m.AppendRevision("v1", strings.Repeat("(x)\n", 10))

	m.ScrollUp(100)
	assert.Equal(t, 0, m.YOffset())

	m.GotoBottom()
	assert.InDelta(t, 1.0, m.ScrollPercent(), 0.001)

	m.ScrollDown(1000)
	assert.Equal(t, m.YOffset(), m.YOffset()) // no panic scrolling past the end
}

func TestModel_SearchFindsMatchingLines(t *testing.T) {
	t.Parallel()

	m := synview.New(synview.WithStyles(testStyles(t)))
	m.SetWidth(40)
	m.SetHeight(10)
	m.AppendRevision("v1", "(alpha)\n(beta)\n(alpha)")

	m.SetSearchTerm("alpha")
	assert.Equal(t, 2, m.SearchCount())
	assert.Equal(t, 0, m.SearchIndex())

	m.SearchNext()
	assert.Equal(t, 1, m.SearchIndex())

	m.SearchNext()
	assert.Equal(t, 0, m.SearchIndex())

	m.ClearSearch()
	assert.Equal(t, 0, m.SearchCount())
}

func TestModel_SearchIsANoOpWhileShowingDiff(t *testing.T) {
	t.Parallel()

	m := synview.New(synview.WithStyles(testStyles(t)))
	m.AppendRevision("v1", "(alpha)")
	m.AppendRevision("v2", "(alpha)\n(beta)")

	m.SetSearchTerm("beta")
	assert.Equal(t, 0, m.SearchCount())
}

func TestModel_InspectResolvesStyleAtPoint(t *testing.T) {
	t.Parallel()

	styles := testStyles(t)
	m := synview.New(synview.WithStyles(styles))
	m.SetWidth(40)
	m.SetHeight(5)
	m.AppendRevision("v1", `("hello")`)

	want := styles.Resolve("cmt-string")

	got, ok := m.Inspect(0, 2)
	require.True(t, ok)
	assert.Equal(t, want.GetForeground(), got.GetForeground())
}

func TestModel_InspectIsANoOpWhileShowingDiff(t *testing.T) {
	t.Parallel()

	m := synview.New(synview.WithStyles(testStyles(t)))
	m.AppendRevision("v1", `("hello")`)
	m.AppendRevision("v2", `("world")`)

	_, ok := m.Inspect(0, 2)
	assert.False(t, ok)
}

func TestModel_InspectPositionReportsLineAndColumn(t *testing.T) {
	t.Parallel()

	styles := testStyles(t)
	m := synview.New(synview.WithStyles(styles))
	m.SetWidth(40)
	m.SetHeight(5)
	m.AppendRevision("v1", "(alpha)\n(\"beta\")")

	pos, _, ok := m.InspectPosition(1, 2)
	require.True(t, ok)
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 2, pos.Col)
	assert.Equal(t, "2:3", pos.String())
}

func TestModel_ScrollRightClipsWideLines(t *testing.T) {
	t.Parallel()

	m := synview.New(synview.WithStyles(testStyles(t)))
	m.SetWidth(10)
	m.SetHeight(3)
	m.AppendRevision("v1", "(a-very-long-identifier-that-overflows-the-viewport-width)")

	assert.Equal(t, 0, m.XOffset())

	m.ScrollRight(5)
	assert.Equal(t, 5, m.XOffset())
	assert.NotContains(t, m.View(), "(a-ve")

	m.ScrollLeft(100)
	assert.Equal(t, 0, m.XOffset())
}

func TestModel_ScrollRightClampsToLongestLine(t *testing.T) {
	t.Parallel()

	m := synview.New(synview.WithStyles(testStyles(t)))
	m.SetWidth(40)
	m.SetHeight(3)
	m.AppendRevision("v1", "(short)")

	m.ScrollRight(1000)
	assert.Equal(t, 0, m.XOffset(), "line fits entirely within the viewport, so there's nothing to scroll to")
}
