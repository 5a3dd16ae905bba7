package highlight

// spanBuilder is the coalescing state machine from §4.4/§9: startSpan(at,
// cls) emits the currently-open span iff its class differs from cls and is
// non-empty, then opens a new span at at with class cls. flush closes
// whatever is open at the end of a call.
type spanBuilder struct {
	at    int
	class string
	emit  EmitFunc
}

func newSpanBuilder(from int, emit EmitFunc) *spanBuilder {
	return &spanBuilder{at: from, emit: emit}
}

// startSpan closes the open span (if its class is non-empty and differs
// from cls) at position at, then opens a new one with class cls at at.
func (b *spanBuilder) startSpan(at int, class string) {
	if class != b.class {
		if b.class != "" && at > b.at {
			b.emit(b.at, at, b.class)
		}

		b.at = at
		b.class = class
	}
}

// flush closes any open span at to.
func (b *spanBuilder) flush(to int) {
	b.startSpan(to, "")
}
