package tag

import "fmt"

// InvalidParentError is panicked by [Define] when asked to parent a new tag
// to an already-modified tag. Tag definition is a design-time activity (done
// once, when a language or style is configured), so this is a panic rather
// than an error return: callers are expected to fix the call site, not
// recover from it at runtime.
type InvalidParentError struct {
	Parent *Tag
}

func (e *InvalidParentError) Error() string {
	return fmt.Sprintf("tag: invalid parent %q: modified tags cannot be parented", e.Parent.Name())
}
