package difftags

import "go.jacobcolvin.com/synhi/tag"

// Algorithm computes a sequence of operations to transform before into after.
//
// See [Hirschberg] for the default implementation.
type Algorithm interface {
	// Init prepares the algorithm for inputs of the given sizes.
	// Called before each Diff to allow buffer preallocation.
	// Algorithms may use beforeLen, afterLen, or both depending on their needs.
	Init(beforeLen, afterLen int)

	// Diff returns operations transforming before into after.
	// Operations reference indices in the original slices.
	Diff(before, after []string) []Op
}

// OpKind represents the kind of diff operation.
type OpKind int

// [OpKind] constants.
const (
	// OpEqual indicates the element exists in both sequences.
	OpEqual OpKind = iota
	// OpDelete indicates the element exists only in the before sequence.
	OpDelete
	// OpInsert indicates the element exists only in the after sequence.
	OpInsert
)

// Op represents a diff operation with an index into one of the input sequences.
type Op struct {
	Kind  OpKind
	Index int // Index into before ([OpDelete]) or after ([OpInsert]/[OpEqual]) sequence.
}

// Line is one line of classified diff output: the sequence index Op carried
// (Before or After, per Kind), and the tag this line should be highlighted
// with. Equal lines carry a nil Tag — the caller's style resolution should
// fall through to ordinary syntax highlighting for those.
type Line struct {
	Op  Op
	Tag *tag.Tag
}

// Classify walks ops and assigns each a highlighting tag, per §3's
// supplemented "diff tags" feature.
//
// A delete run immediately followed by an insert run (no intervening equal)
// reads as a replacement rather than an unrelated removal-then-addition; the
// elements they share pairwise (by position within their respective runs)
// are tagged [tag.Changed] instead of [tag.Deleted]/[tag.Inserted]. Any
// surplus on the longer side keeps its plain tag, since it has no
// counterpart to pair with.
func Classify(ops []Op) []Line {
	lines := make([]Line, 0, len(ops))

	for i := 0; i < len(ops); {
		switch ops[i].Kind {
		case OpEqual:
			lines = append(lines, Line{Op: ops[i], Tag: nil})
			i++
		case OpDelete:
			run := i
			for run < len(ops) && ops[run].Kind == OpDelete {
				run++
			}

			insEnd := run
			for insEnd < len(ops) && ops[insEnd].Kind == OpInsert {
				insEnd++
			}

			i = classifyRun(ops, i, run, insEnd, &lines)
		case OpInsert:
			lines = append(lines, Line{Op: ops[i], Tag: tag.Inserted})
			i++
		}
	}

	return lines
}

// classifyRun tags the paired prefix of a [delStart,delEnd) delete run and a
// [delEnd,insEnd) insert run as [tag.Changed], and any unpaired surplus with
// its plain kind, appending to *lines. Returns insEnd.
func classifyRun(ops []Op, delStart, delEnd, insEnd int, lines *[]Line) int {
	dels := delEnd - delStart
	inss := insEnd - delEnd
	paired := min(dels, inss)

	for j := range paired {
		*lines = append(*lines, Line{Op: ops[delStart+j], Tag: tag.Changed})
	}

	for j := delStart + paired; j < delEnd; j++ {
		*lines = append(*lines, Line{Op: ops[j], Tag: tag.Deleted})
	}

	for j := delEnd; j < delEnd+paired; j++ {
		*lines = append(*lines, Line{Op: ops[j], Tag: tag.Changed})
	}

	for j := delEnd + paired; j < insEnd; j++ {
		*lines = append(*lines, Line{Op: ops[j], Tag: tag.Inserted})
	}

	return insEnd
}
