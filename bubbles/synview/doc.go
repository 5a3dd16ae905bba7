// Package synview provides a Bubble Tea component for viewing
// [go.jacobcolvin.com/synhi/toylang] source with syntax highlighting,
// revision history, and diff visualization.
//
// # Usage
//
// Create a viewport, set dimensions, and load content:
//
//	m := synview.New()
//	m.SetWidth(80)
//	m.SetHeight(24)
//	m.AppendRevision("example", source)
//
// The viewport implements [tea.Model], so embed it in your Bubble Tea
// application and forward messages to [Model.Update].
//
// # Revision history
//
// The viewport tracks multiple versions of a document using
// [Model.AppendRevision]. Users navigate between revisions with Tab/Shift+Tab
// (configurable via [KeyMap]). When viewing a revision after the first, the
// viewport computes and displays a line-level diff against the previous
// revision using [go.jacobcolvin.com/synhi/difftags], coloring added,
// removed, and changed lines via the active theme's "cmt-inserted",
// "cmt-deleted", and "cmt-changed" classes.
//
// # Search
//
// Call [Model.SetSearchTerm] to highlight matches. Navigate between matches
// with [Model.SearchNext] and [Model.SearchPrevious]; the viewport scrolls to
// keep the current match visible. Matches are rendered with the active
// theme's "ui-highlight" and "ui-highlight-selected" classes.
//
// # Themes
//
// The viewport renders through a [go.jacobcolvin.com/synhi/termstyle.Styles]
// value; swap it at runtime with [Model.SetStyles] to change the active
// theme without losing scroll position or revision history.
package synview
