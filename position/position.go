package position

import (
	"fmt"
	"strings"
)

// Position is a 0-indexed line and column location within a document.
type Position struct {
	Line, Col int
}

// New creates a new [Position].
func New(line, col int) Position {
	return Position{Line: line, Col: col}
}

// FromOffset converts a byte offset into content to the [Position] it falls
// on, the inverse of [Position.Offset]. It clamps to the last line if offset
// runs past the end of content.
func FromOffset(content string, offset int) Position {
	if offset < 0 {
		offset = 0
	}

	line := 0
	lineStart := 0

	for {
		idx := strings.IndexByte(content[lineStart:], '\n')
		if idx < 0 || lineStart+idx >= offset {
			break
		}

		lineStart += idx + 1
		line++
	}

	return Position{Line: line, Col: offset - lineStart}
}

// Offset returns the byte offset of p within content — the conversion a
// viewport needs to turn a clicked row/column into the byte range its
// [go.jacobcolvin.com/synhi/internal/styletree.Tree] indexed. It reports
// false if p.Line is out of range for content.
func (p Position) Offset(content string) (int, bool) {
	lines := strings.Split(content, "\n")
	if p.Line < 0 || p.Line >= len(lines) {
		return 0, false
	}

	offset := 0
	for i := range p.Line {
		offset += len(lines[i]) + 1 // +1 for the newline split away.
	}

	return offset + p.Col, true
}

// String renders p as "line:col", 1-indexed the way editors and terminals
// report cursor positions.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Col+1)
}
