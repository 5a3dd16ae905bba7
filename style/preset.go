package style

import "go.jacobcolvin.com/synhi/tag"

// Preset builds the class-style preset described in §6: every public
// vocabulary tag maps to "cmt-<tagname>", except the composite overrides
// below. local(X) resolves to "cmt-X cmt-local" (the fallback appends one
// "cmt-<modifierName>" per modifier after the base class), not just
// "cmt-local".
func Preset() *Style {
	entries := []Entry{
		{Tags: []*tag.Tag{tag.RegExp, tag.Escape, tag.Special(tag.String)}, Class: "cmt-string2"},
	}

	return Define(entries, Options{Fallback: mechanicalClass})
}

// mechanicalClass synthesizes "cmt-<tagname>" for a plain tag, and
// "cmt-<baseName> cmt-<modifierName>..." for a modified one.
func mechanicalClass(t *tag.Tag) string {
	if t.Base == nil {
		return "cmt-" + t.Name()
	}

	class := "cmt-" + t.Base.Name()
	for _, m := range t.Modified {
		class += " cmt-" + m.Name()
	}

	return class
}
