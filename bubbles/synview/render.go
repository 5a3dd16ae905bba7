package synview

import (
	"strings"

	"charm.land/lipgloss/v2"

	"go.jacobcolvin.com/synhi/difftags"
	"go.jacobcolvin.com/synhi/highlight"
	"go.jacobcolvin.com/synhi/internal/colors"
	"go.jacobcolvin.com/synhi/internal/styletree"
	"go.jacobcolvin.com/synhi/style"
	"go.jacobcolvin.com/synhi/tag"
	"go.jacobcolvin.com/synhi/termstyle"
	"go.jacobcolvin.com/synhi/toylang"
)

// buildStyleTree parses src with [toylang.Parse], runs it through
// [highlight.HighlightAll] with the mechanical [style.Preset], and indexes
// every resolved span by byte range into a [styletree.Tree]. The tree
// serves two readers downstream: [renderLines] walks it a line at a time to
// produce the rendered display text, and [Model.Inspect] queries it a point
// at a time to recover the style in effect at an arbitrary viewport
// position (e.g. a mouse click), without a second parse-and-highlight pass.
func buildStyleTree(src string, styles termstyle.Styles) *styletree.Tree {
	tree := toylang.Parse(src)
	idx := styletree.New()

	highlight.HighlightAll(tree, style.Preset().Match, func(from, to int, class string) {
		resolved := styles.Resolve(class)
		idx.Insert(from, to, &resolved)
	})

	return idx
}

// highlightLines is a convenience wrapper for callers that only need
// rendered lines and have no use for the underlying index.
func highlightLines(src string, styles termstyle.Styles) []string {
	return renderLines(buildStyleTree(src, styles), src)
}

// renderLines walks idx one display line at a time via [styletree.Tree.SpansIn],
// rendering each span through its resolved style and filling the gaps
// between spans with unstyled text.
func renderLines(idx *styletree.Tree, src string) []string {
	lines := strings.Split(src, "\n")
	offsets := lineOffsets(lines)

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = renderLine(idx, line, offsets[i])
	}

	return out
}

func renderLine(idx *styletree.Tree, line string, lineStart int) string {
	lineEnd := lineStart + len(line)

	var b strings.Builder

	last := lineStart

	for _, span := range idx.SpansIn(lineStart, lineEnd) {
		from, to := max(span.Start, lineStart), min(span.End, lineEnd)

		if from > last {
			b.WriteString(line[last-lineStart : from-lineStart])
		}

		b.WriteString(span.Style.Render(line[from-lineStart : to-lineStart]))
		last = to
	}

	if last < lineEnd {
		b.WriteString(line[last-lineStart:])
	}

	return b.String()
}

// lineOffsets returns, for each line produced by splitting some source on
// "\n", the byte offset in that source where the line begins.
func lineOffsets(lines []string) []int {
	offsets := make([]int, len(lines))

	offset := 0
	for i, line := range lines {
		offsets[i] = offset
		offset += len(line) + 1 // +1 for the newline split away.
	}

	return offsets
}

// blendDiffLine renders one line of src by walking idx's spans over it,
// same as [renderLine], but blends overlay into every span's own style via
// [colors.BlendStyles] rather than replacing it outright — so a diff row
// still reads its syntax colors, tinted toward the diff class, instead of
// going flat. Text outside any indexed span (whitespace runs the
// highlighter left unclassified) renders with overlay alone.
func blendDiffLine(idx *styletree.Tree, line string, lineStart int, overlay lipgloss.Style) string {
	lineEnd := lineStart + len(line)

	var b strings.Builder

	last := lineStart

	for _, span := range idx.SpansIn(lineStart, lineEnd) {
		from, to := max(span.Start, lineStart), min(span.End, lineEnd)

		if from > last {
			b.WriteString(overlay.Render(line[last-lineStart : from-lineStart]))
		}

		blended := colors.BlendStyles(span.Style, &overlay)
		b.WriteString(blended.Render(line[from-lineStart : to-lineStart]))
		last = to
	}

	if last < lineEnd {
		b.WriteString(overlay.Render(line[last-lineStart:]))
	}

	return b.String()
}

// diffLines renders before/after through [difftags], returning the lines to
// display when showing the diff between two revisions: equal lines carry
// ordinary syntax highlighting, while added/removed/changed lines keep
// their syntax highlighting blended with the matching diff class via
// [blendDiffLine], so a line tinted red for a deletion still reads its
// strings and identifiers in their usual colors.
func diffLines(before, after string, styles termstyle.Styles) []string {
	beforeLines := strings.Split(before, "\n")
	afterLines := strings.Split(after, "\n")

	h := difftags.NewHirschberg()
	h.Init(len(beforeLines), len(afterLines))
	ops := h.Diff(beforeLines, afterLines)

	beforeTree := buildStyleTree(before, styles)
	afterTree := buildStyleTree(after, styles)
	beforeOffsets := lineOffsets(beforeLines)
	afterOffsets := lineOffsets(afterLines)

	out := make([]string, 0, len(ops))

	for _, line := range difftags.Classify(ops) {
		switch {
		case line.Tag == nil:
			i := line.Op.Index
			out = append(out, "  "+renderLine(afterTree, afterLines[i], afterOffsets[i]))
		case line.Tag == tag.Deleted:
			i := line.Op.Index
			overlay := styles.Resolve("cmt-deleted")
			out = append(out, overlay.Render("- ")+blendDiffLine(beforeTree, beforeLines[i], beforeOffsets[i], overlay))
		case line.Tag == tag.Inserted:
			i := line.Op.Index
			overlay := styles.Resolve("cmt-inserted")
			out = append(out, overlay.Render("+ ")+blendDiffLine(afterTree, afterLines[i], afterOffsets[i], overlay))
		case line.Tag == tag.Changed:
			// Changed pairs carry one diff Line per side; tell them apart by
			// which sequence the op indexes into.
			overlay := styles.Resolve("cmt-changed")
			if line.Op.Kind == difftags.OpDelete {
				i := line.Op.Index
				out = append(out, overlay.Render("~ ")+blendDiffLine(beforeTree, beforeLines[i], beforeOffsets[i], overlay))
			} else {
				i := line.Op.Index
				out = append(out, overlay.Render("~ ")+blendDiffLine(afterTree, afterLines[i], afterOffsets[i], overlay))
			}
		}
	}

	return out
}
