package synhi

// Revision represents one named, versioned string content in a sequence of
// revisions. It forms a doubly-linked list so callers can track changes
// across revisions without committing to a particular document model: a
// [go.jacobcolvin.com/synhi/bubbles/synview.Model] uses it to back its
// revision history and diff navigation. A single revision, with no
// neighbors, is valid on its own.
type Revision struct {
	// The previous revision in the sequence. Nil if there is none.
	prev *Revision
	// The next revision in the sequence. Nil if there is none.
	next *Revision

	name    string
	content string
}

// NewRevision creates a new [Revision] holding content under name. Use
// [Revision.Append] or [Revision.Prepend] to add more revisions to the
// sequence.
func NewRevision(name, content string) *Revision {
	return &Revision{name: name, content: content}
}

// Content returns the string content at this revision.
func (r *Revision) Content() string {
	return r.content
}

// Name returns the name of this revision.
func (r *Revision) Name() string {
	return r.name
}

// Seek moves n revisions forward (n > 0) or backward (n < 0) in the
// sequence. If n exceeds the available revisions, it stops at the end.
func (r *Revision) Seek(n int) *Revision {
	curr := r

	if n > 0 {
		for range n {
			if curr.next == nil {
				break
			}

			curr = curr.next
		}
	}

	if n < 0 {
		for range -n {
			if curr.prev == nil {
				break
			}

			curr = curr.prev
		}
	}

	return curr
}

// Tip goes to the latest revision in the sequence.
func (r *Revision) Tip() *Revision {
	curr := r
	for curr.next != nil {
		curr = curr.next
	}

	return curr
}

// Origin goes to the original revision in the sequence.
func (r *Revision) Origin() *Revision {
	curr := r
	for curr.prev != nil {
		curr = curr.prev
	}

	return curr
}

// At returns the revision at the given zero-based index, equivalent to
// Origin().Seek(index). If index exceeds the available revisions, it stops
// at the last one.
func (r *Revision) At(index int) *Revision {
	return r.Origin().Seek(index)
}

// AtTip reports whether this is the latest revision in the sequence.
func (r *Revision) AtTip() bool {
	return r.next == nil
}

// AtOrigin reports whether this is the original revision in the sequence.
func (r *Revision) AtOrigin() bool {
	return r.prev == nil
}

// Names returns the names of all revisions in order from origin to latest.
func (r *Revision) Names() []string {
	var names []string

	curr := r.Origin()
	for curr != nil {
		names = append(names, curr.name)
		curr = curr.next
	}

	return names
}

// Index returns the zero-based index of this revision within its sequence.
func (r *Revision) Index() int {
	index := 0

	curr := r
	for curr.prev != nil {
		index++
		curr = curr.prev
	}

	return index
}

// Count returns the total number of revisions in the sequence.
func (r *Revision) Count() int {
	count := r.Index()

	curr := r
	for curr.next != nil {
		count++
		curr = curr.next
	}

	return count + 1
}

// Append adds a new revision after this one, returning it. Any existing
// next revision is replaced.
func (r *Revision) Append(name, content string) *Revision {
	rev := &Revision{prev: r, name: name, content: content}
	r.next = rev

	return rev
}

// Prepend adds a new revision before this one, returning it. Any existing
// previous revision is replaced.
func (r *Revision) Prepend(name, content string) *Revision {
	rev := &Revision{next: r, name: name, content: content}
	r.prev = rev

	return rev
}
