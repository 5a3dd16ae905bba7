package main

import (
	"fmt"
	"slices"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/synhi/bubbles/synview"
	"go.jacobcolvin.com/synhi/internal/ansi"
	"go.jacobcolvin.com/synhi/termstyle"
	"go.jacobcolvin.com/synhi/termstyle/theme"
)

// fileEntry is one loaded file, kept as a revision in the viewport.
type fileEntry struct {
	name    string
	content string
}

type modelOptions struct {
	files       []fileEntry
	lineNumbers bool
	search      string
	themeName   string
	styles      termstyle.Styles
}

type model struct {
	viewport      synview.Model
	themeList     []string
	themeIndex    int
	currentTheme  string
	previousTheme string
	searchInput   string
	width, height int
	searching     bool
	themePicking  bool
}

func newModel(opts modelOptions) model {
	themeList := theme.List(termstyle.Dark)
	slices.Sort(themeList)

	vp := synview.New(
		synview.WithStyles(opts.styles),
		synview.WithKeyMap(synview.DefaultKeyMap()),
		synview.WithLineNumbers(opts.lineNumbers),
	)

	for _, f := range opts.files {
		vp.AppendRevision(f.name, f.content)
	}

	if opts.search != "" {
		vp.SetSearchTerm(opts.search)
	}

	return model{
		viewport:     vp,
		themeList:    themeList,
		themeIndex:   max(0, slices.Index(themeList, opts.themeName)),
		currentTheme: opts.themeName,
	}
}

// Init implements [tea.Model].
func (m model) Init() tea.Cmd { return nil } //nolint:gocritic // hugeParam: required for tea.Model.

// Update implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(msg.Height - 1) // Reserve 1 line for the status bar.

	case tea.KeyPressMsg:
		if m.themePicking {
			m.updateThemeInput(msg)

			return m, nil
		}

		if m.searching {
			m.updateSearchInput(msg)

			return m, nil
		}

		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("t"))):
			m.themePicking = true
			m.previousTheme = m.currentTheme

		case key.Matches(msg, key.NewBinding(key.WithKeys("/"))):
			m.searching = true
			m.searchInput = ""

		case key.Matches(msg, key.NewBinding(key.WithKeys("m"))):
			m.viewport.ToggleDiffMode()
		}
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m *model) updateSearchInput(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		m.searching = false
		m.viewport.SetSearchTerm(m.searchInput)

	case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
		m.searching = false
		m.searchInput = ""

	case key.Matches(msg, key.NewBinding(key.WithKeys("backspace"))):
		if m.searchInput != "" {
			m.searchInput = m.searchInput[:len(m.searchInput)-1]
		}

	default:
		if s := msg.Text; s != "" {
			m.searchInput += s
		}
	}
}

func (m *model) updateThemeInput(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		m.themePicking = false

	case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
		m.themePicking = false
		m.applyTheme(m.previousTheme)
		m.themeIndex = slices.Index(m.themeList, m.previousTheme)

	case key.Matches(msg, key.NewBinding(key.WithKeys("j", "down"))):
		if m.themeIndex < len(m.themeList)-1 {
			m.themeIndex++
			m.applyTheme(m.themeList[m.themeIndex])
		}

	case key.Matches(msg, key.NewBinding(key.WithKeys("k", "up"))):
		if m.themeIndex > 0 {
			m.themeIndex--
			m.applyTheme(m.themeList[m.themeIndex])
		}
	}
}

func (m *model) applyTheme(name string) {
	m.currentTheme = name
	if styles, ok := theme.Styles(name); ok {
		m.viewport.SetStyles(styles)
	}
}

// View implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) View() tea.View {
	base := lipgloss.JoinVertical(
		lipgloss.Top,
		m.viewport.View(),
		m.statusBar(),
	)

	if m.themePicking {
		overlay := m.renderThemeOverlay()
		overlayWidth := lipgloss.Width(overlay)
		overlayHeight := lipgloss.Height(overlay)

		overlayX := (m.width - overlayWidth) / 2
		overlayY := (m.height - overlayHeight) / 2

		baseLayer := lipgloss.NewLayer(base)
		overlayLayer := lipgloss.NewLayer(overlay).X(overlayX).Y(overlayY).Z(1)

		base = lipgloss.NewCompositor(baseLayer, overlayLayer).Render()
	}

	v := tea.NewView(base)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	return v
}

func (m *model) statusBar() string {
	revisionInfo := ""
	if m.viewport.RevisionCount() > 1 {
		mode := ""
		if !m.viewport.IsShowingDiff() {
			mode = " none"
		}

		revisionInfo = fmt.Sprintf("[%s %d/%d%s] ",
			ansi.EscapeWidth(m.viewport.CurrentRevisionName(), max(10, m.width/3)),
			m.viewport.RevisionIndex()+1,
			m.viewport.RevisionCount(),
			mode,
		)
	}

	left := fmt.Sprintf(" %s[%d]", revisionInfo, m.viewport.YOffset()+1)

	var right string

	switch {
	case m.searching:
		right = "/" + ansi.Escape(m.searchInput)
	case m.viewport.SearchCount() > 0:
		right = fmt.Sprintf("%d/%d matches ", m.viewport.SearchIndex()+1, m.viewport.SearchCount())
	default:
		right = fmt.Sprintf("%d%% ", int(m.viewport.ScrollPercent()*100))
	}

	barStyle := lipgloss.NewStyle().
		Background(charmtone.Charcoal).
		Foreground(charmtone.Salt).
		Inline(true)

	padding := max(0, lipgloss.Width(left))
	right = lipgloss.PlaceHorizontal(m.width-padding, lipgloss.Right, right)

	return barStyle.Render(left + right)
}

func (m *model) renderThemeOverlay() string {
	overlayWidth := max(30, m.width/4)
	overlayHeight := max(10, m.height/4)

	visibleItems := overlayHeight - 4
	if visibleItems%2 == 0 {
		visibleItems++
		overlayHeight++
	}

	maxScroll := max(0, len(m.themeList)-visibleItems)
	scrollOffset := min(maxScroll, max(0, m.themeIndex-visibleItems/2))

	styles, _ := theme.Styles(m.currentTheme)
	baseStyle := styles.Style("")
	accentStyle := styles.Style("cmt-propertyName")
	dimStyle := styles.Style("cmt-comment")

	var items []string

	for i := scrollOffset; i < len(m.themeList) && len(items) < visibleItems; i++ {
		name := m.themeList[i]

		prefix := "  "
		if i == m.themeIndex {
			prefix = "> "
		}

		maxNameLen := overlayWidth - 6
		if len(name) > maxNameLen {
			name = name[:maxNameLen-1] + "~"
		}

		items = append(items, prefix+name)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	overlayStyle := baseStyle.
		Width(overlayWidth).
		Height(overlayHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentStyle.GetForeground()).
		BorderBackground(baseStyle.GetBackground()).
		Padding(0, 1)

	contentWidth := overlayWidth - 4

	headerStyle := accentStyle.Bold(true).Background(baseStyle.GetBackground()).Width(contentWidth)
	footerStyle := dimStyle.Background(baseStyle.GetBackground()).Width(contentWidth)

	header := headerStyle.Render("Select Theme")
	footer := footerStyle.Render("enter select · esc cancel")

	return overlayStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, header, content, footer),
	)
}
