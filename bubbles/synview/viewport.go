package synview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"go.jacobcolvin.com/synhi"
	"go.jacobcolvin.com/synhi/internal/colors"
	"go.jacobcolvin.com/synhi/internal/styletree"
	"go.jacobcolvin.com/synhi/position"
	"go.jacobcolvin.com/synhi/termstyle"
)

// Option configures a [Model] at construction time.
type Option func(*Model)

// WithStyles sets the initial rendering theme. The zero value renders with
// no styling at all.
func WithStyles(s termstyle.Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithKeyMap overrides the default keybindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.KeyMap = k }
}

// WithLineNumbers enables a dimmed line-number gutter.
func WithLineNumbers(enabled bool) Option {
	return func(m *Model) { m.lineNumbers = enabled }
}

// Model is a scrollable, searchable viewer for highlighted source text,
// implementing [tea.Model].
type Model struct {
	KeyMap KeyMap

	styles      termstyle.Styles
	cur         *synhi.Revision
	showDiff    bool
	lineNumbers bool

	lines        []string        // rendered, possibly diffed and search-highlighted
	maxLineWidth int             // display width of the widest line, for horizontal scroll clamping
	styleTree    *styletree.Tree // byte-range index over the current revision, nil while diffing

	width, height int
	yOffset       int
	xOffset       int

	searchTerm string
	matches    []int // line indices into the current revision's raw content
	matchIdx   int
}

// New returns a [Model] ready to receive [Model.AppendRevision] calls.
func New(opts ...Option) Model {
	m := Model{
		KeyMap:   DefaultKeyMap(),
		showDiff: true,
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Init implements [tea.Model].
func (m Model) Init() tea.Cmd { return nil } //nolint:gocritic // hugeParam: required for tea.Model.

// SetWidth sets the render width. It does not re-render the lines.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetHeight sets the number of visible lines.
func (m *Model) SetHeight(h int) {
	m.height = h
}

// Width returns the configured render width.
func (m *Model) Width() int { return m.width }

// Height returns the configured viewport height.
func (m *Model) Height() int { return m.height }

// SetStyles swaps the active theme and re-renders in place, preserving
// scroll position and revision/search state.
func (m *Model) SetStyles(s termstyle.Styles) {
	m.styles = s
	m.rerender()
}

// AppendRevision adds a new named revision, selects it, and re-renders.
// A second and later revision is shown as a diff against its predecessor
// while [Model.IsShowingDiff] reports true.
func (m *Model) AppendRevision(name, content string) {
	if m.cur == nil {
		m.cur = synhi.NewRevision(name, content)
	} else {
		m.cur = m.cur.Tip().Append(name, content)
	}

	m.rerender()
}

// RevisionCount returns the number of revisions loaded.
func (m *Model) RevisionCount() int {
	if m.cur == nil {
		return 0
	}

	return m.cur.Count()
}

// RevisionIndex returns the index of the revision currently displayed.
func (m *Model) RevisionIndex() int {
	if m.cur == nil {
		return 0
	}

	return m.cur.Index()
}

// CurrentRevisionName returns the name of the revision currently displayed,
// or "" if none are loaded.
func (m *Model) CurrentRevisionName() string {
	if m.cur == nil {
		return ""
	}

	return m.cur.Name()
}

// NextRevision advances to the next revision, if any, and re-renders.
func (m *Model) NextRevision() {
	if m.cur != nil && !m.cur.AtTip() {
		m.cur = m.cur.Seek(1)
		m.rerender()
	}
}

// PrevRevision goes back to the previous revision, if any, and re-renders.
func (m *Model) PrevRevision() {
	if m.cur != nil && !m.cur.AtOrigin() {
		m.cur = m.cur.Seek(-1)
		m.rerender()
	}
}

// IsShowingDiff reports whether the current view is a diff against the
// previous revision.
func (m *Model) IsShowingDiff() bool {
	return m.showDiff && m.cur != nil && !m.cur.AtOrigin()
}

// ToggleDiffMode flips whether a revision after the first is shown as a diff
// or as a plain highlighted view.
func (m *Model) ToggleDiffMode() {
	m.showDiff = !m.showDiff
	m.rerender()
}

// rerender recomputes m.lines from the current revision, diff mode, and
// search state.
func (m *Model) rerender() {
	if m.cur == nil {
		m.lines = nil

		return
	}

	if m.IsShowingDiff() {
		m.lines = diffLines(m.cur.Seek(-1).Content(), m.cur.Content(), m.styles)
		m.styleTree = nil
	} else {
		m.styleTree = buildStyleTree(m.cur.Content(), m.styles)
		m.lines = renderLines(m.styleTree, m.cur.Content())
	}

	m.findMatches()
	m.applySearchHighlight()

	m.maxLineWidth = 0
	for _, line := range m.lines {
		m.maxLineWidth = max(m.maxLineWidth, ansi.StringWidth(line))
	}

	m.xOffset = clampInt(m.xOffset, 0, m.maxXOffset())
}

// Inspect resolves the style in effect at the given row and column of the
// current, non-diffed revision, where row is relative to the top of the
// viewport (i.e. 0 is the first visible line) and col is a byte offset into
// that line's raw content. It reports false while showing a diff, since diff
// lines carry synthetic markers that don't align with the underlying
// revision's byte offsets, or when the position falls outside any span.
func (m *Model) Inspect(row, col int) (lipgloss.Style, bool) {
	if m.styleTree == nil || m.cur == nil {
		return lipgloss.Style{}, false
	}

	offset, ok := position.New(m.yOffset+row, col).Offset(m.cur.Content())
	if !ok {
		return lipgloss.Style{}, false
	}

	return m.styleTree.StyleAt(offset)
}

// InspectPosition is like [Model.Inspect], but also reports the resolved
// [position.Position] — the "line:col" a status bar shows alongside the
// inspected style's class.
func (m *Model) InspectPosition(row, col int) (position.Position, lipgloss.Style, bool) {
	pos := position.New(m.yOffset+row, col)

	style, ok := m.Inspect(row, col)

	return pos, style, ok
}

// SetSearchTerm highlights every line-level occurrence of term (case
// insensitive) in the current, non-diffed revision and scrolls to the first
// match. Search is a no-op while [Model.IsShowingDiff] is true, since diff
// lines don't align one-to-one with the underlying revision's lines.
func (m *Model) SetSearchTerm(term string) {
	m.searchTerm = term
	m.matchIdx = 0
	m.rerender()

	if len(m.matches) > 0 {
		m.scrollToMatch()
	}
}

// ClearSearch removes the active search term and its highlighting.
func (m *Model) ClearSearch() {
	m.SetSearchTerm("")
}

// SearchCount returns the number of matching lines.
func (m *Model) SearchCount() int { return len(m.matches) }

// SearchIndex returns the index of the current match within [Model.SearchCount].
func (m *Model) SearchIndex() int { return m.matchIdx }

// SearchNext moves to the next match, wrapping around.
func (m *Model) SearchNext() {
	if len(m.matches) == 0 {
		return
	}

	m.matchIdx = (m.matchIdx + 1) % len(m.matches)
	m.rerender()
	m.scrollToMatch()
}

// SearchPrevious moves to the previous match, wrapping around.
func (m *Model) SearchPrevious() {
	if len(m.matches) == 0 {
		return
	}

	m.matchIdx = (m.matchIdx - 1 + len(m.matches)) % len(m.matches)
	m.rerender()
	m.scrollToMatch()
}

func (m *Model) findMatches() {
	m.matches = nil

	if m.searchTerm == "" || m.IsShowingDiff() {
		return
	}

	needle := strings.ToLower(m.searchTerm)
	for i, line := range strings.Split(m.cur.Content(), "\n") {
		if strings.Contains(strings.ToLower(line), needle) {
			m.matches = append(m.matches, i)
		}
	}

	if m.matchIdx >= len(m.matches) {
		m.matchIdx = 0
	}
}

// applySearchHighlight overlays background styling on matched lines. It runs
// after highlighting so the underlying syntax colors of the line's own text
// are preserved; the overlay style itself is composed over the base theme
// style via [colors.OverrideStyles], the same base-then-overlay precedence a
// range query against a [styletree.Tree] uses when the first matching range
// wins over the base style.
func (m *Model) applySearchHighlight() {
	if len(m.matches) == 0 {
		return
	}

	base := m.styles.Resolve("")

	for i, idx := range m.matches {
		if idx >= len(m.lines) {
			continue
		}

		class := "ui-highlight"
		if i == m.matchIdx {
			class = "ui-highlight-selected"
		}

		overlay := m.styles.Resolve(class)
		composed := colors.OverrideStyles(&base, &overlay)

		m.lines[idx] = composed.Render(m.lines[idx])
	}
}

func (m *Model) scrollToMatch() {
	if m.matchIdx >= len(m.matches) {
		return
	}

	target := m.matches[m.matchIdx]
	half := m.height / 2
	m.SetYOffset(max(0, target-half))
}

// YOffset returns the first visible line index.
func (m *Model) YOffset() int { return m.yOffset }

// SetYOffset sets the first visible line index, clamped to the valid range.
func (m *Model) SetYOffset(n int) {
	m.yOffset = clampInt(n, 0, m.maxYOffset())
}

func (m *Model) maxYOffset() int {
	return max(0, len(m.lines)-m.height)
}

// ScrollPercent returns how far through the document the viewport has
// scrolled, in [0,1].
func (m *Model) ScrollPercent() float64 {
	if m.maxYOffset() == 0 {
		return 1
	}

	return float64(m.yOffset) / float64(m.maxYOffset())
}

// ScrollDown moves the viewport down by n lines.
func (m *Model) ScrollDown(n int) { m.SetYOffset(m.yOffset + n) }

// ScrollUp moves the viewport up by n lines.
func (m *Model) ScrollUp(n int) { m.SetYOffset(m.yOffset - n) }

// PageDown scrolls down by a full viewport height.
func (m *Model) PageDown() { m.ScrollDown(max(1, m.height)) }

// PageUp scrolls up by a full viewport height.
func (m *Model) PageUp() { m.ScrollUp(max(1, m.height)) }

// HalfPageDown scrolls down by half a viewport height.
func (m *Model) HalfPageDown() { m.ScrollDown(max(1, m.height/2)) }

// HalfPageUp scrolls up by half a viewport height.
func (m *Model) HalfPageUp() { m.ScrollUp(max(1, m.height/2)) }

// GotoTop scrolls to the first line.
func (m *Model) GotoTop() { m.SetYOffset(0) }

// GotoBottom scrolls to the last line.
func (m *Model) GotoBottom() { m.SetYOffset(m.maxYOffset()) }

// XOffset returns the first visible column.
func (m *Model) XOffset() int { return m.xOffset }

// SetXOffset sets the first visible column, clamped to the valid range.
func (m *Model) SetXOffset(n int) {
	m.xOffset = clampInt(n, 0, m.maxXOffset())
}

func (m *Model) maxXOffset() int {
	return max(0, m.maxLineWidth-m.contentWidth())
}

// contentWidth returns the width available for line content, excluding the
// line-number gutter when enabled.
func (m *Model) contentWidth() int {
	if !m.lineNumbers {
		return m.width
	}

	gutterWidth := len(fmt.Sprintf("%d", len(m.lines))) + 1

	return max(0, m.width-gutterWidth)
}

// ScrollLeft moves the viewport left by n columns.
func (m *Model) ScrollLeft(n int) { m.SetXOffset(m.xOffset - n) }

// ScrollRight moves the viewport right by n columns.
func (m *Model) ScrollRight(n int) { m.SetXOffset(m.xOffset + n) }

func clampInt(v, low, high int) int {
	if v < low {
		return low
	}

	if v > high {
		return high
	}

	return v
}

// Update implements [tea.Model], handling scroll and revision navigation
// keys from [Model.KeyMap]. Search input and theme switching are handled by
// the embedding application, which calls [Model.SetSearchTerm] directly.
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.PageDown):
		m.PageDown()
	case key.Matches(keyMsg, m.KeyMap.PageUp):
		m.PageUp()
	case key.Matches(keyMsg, m.KeyMap.HalfPageDown):
		m.HalfPageDown()
	case key.Matches(keyMsg, m.KeyMap.HalfPageUp):
		m.HalfPageUp()
	case key.Matches(keyMsg, m.KeyMap.Down):
		m.ScrollDown(1)
	case key.Matches(keyMsg, m.KeyMap.Up):
		m.ScrollUp(1)
	case key.Matches(keyMsg, m.KeyMap.Left):
		m.ScrollLeft(1)
	case key.Matches(keyMsg, m.KeyMap.Right):
		m.ScrollRight(1)
	case key.Matches(keyMsg, m.KeyMap.GotoTop):
		m.GotoTop()
	case key.Matches(keyMsg, m.KeyMap.GotoBottom):
		m.GotoBottom()
	case key.Matches(keyMsg, m.KeyMap.NextRevision):
		m.NextRevision()
	case key.Matches(keyMsg, m.KeyMap.PrevRevision):
		m.PrevRevision()
	case key.Matches(keyMsg, m.KeyMap.SearchNext):
		m.SearchNext()
	case key.Matches(keyMsg, m.KeyMap.SearchPrev):
		m.SearchPrevious()
	case key.Matches(keyMsg, m.KeyMap.ClearSearch):
		m.ClearSearch()
	}

	return m, nil
}

// View implements [tea.Model], rendering the visible slice of lines.
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m Model) View() string {
	end := min(len(m.lines), m.yOffset+m.height)
	if m.yOffset >= end {
		return ""
	}

	visible := make([]string, end-m.yOffset)
	copy(visible, m.lines[m.yOffset:end])

	if m.xOffset > 0 || m.maxLineWidth > m.contentWidth() {
		contentWidth := m.contentWidth()
		for i, line := range visible {
			visible[i] = ansi.Cut(line, m.xOffset, m.xOffset+contentWidth)
		}
	}

	if !m.lineNumbers {
		return lipgloss.JoinVertical(lipgloss.Left, visible...)
	}

	gutterStyle := m.styles.Resolve("cmt-comment")
	width := len(fmt.Sprintf("%d", len(m.lines)))

	out := make([]string, len(visible))
	for i, line := range visible {
		num := m.yOffset + i + 1
		out[i] = gutterStyle.Render(fmt.Sprintf("%*d ", width, num)) + line
	}

	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
