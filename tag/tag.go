// Package tag implements the highlighting tag algebra: a closed vocabulary of
// categories related by parent/child inheritance, plus orthogonal modifiers
// that combine with a base tag to produce new, canonical tags.
//
// Tag identity is reference identity: two tags are the same tag iff they are
// the same *Tag pointer. The [Tag.Set] field is the fallback chain used by
// style resolution; it is precomputed once, at definition time, so matching
// never has to walk a class hierarchy at traversal time.
package tag

import "sort"

// Tag is a highlighting category. Tags are created with [Define] (a plain
// tag) or by applying a [Modifier] to an existing tag (a modified tag).
//
// Do not compare tags with anything but ==; two tags with the same name are
// never equal unless they are literally the same value.
type Tag struct {
	// name is used only for debugging and for synthesizing preset class
	// names; it plays no role in matching.
	name string

	// Set is the fallback chain: this tag first, then progressively more
	// general ancestors, ending at the most general tag in the chain.
	// Specificity decreases along the slice.
	Set []*Tag

	// Base is the unmodified tag this one was derived from, or nil if this
	// tag was created directly with [Define].
	Base *Tag

	// Modified is the canonical (id-ascending) set of modifiers applied to
	// Base to produce this tag. Empty for tags created with [Define].
	Modified []*Modifier

	id int
}

// Name returns the name this tag was given at definition time, or the
// synthesized name of a modified tag (the base name wrapped in each
// modifier's name, e.g. "special(myTag)") if it was produced by applying
// modifiers.
func (t *Tag) Name() string {
	if t.name != "" {
		return t.name
	}

	name := t.Base.Name()
	for _, m := range t.Modified {
		name = m.Name() + "(" + name + ")"
	}

	return name
}

// ID returns a small dense integer unique to this tag within the process,
// suitable for use as a map key in style caches.
func (t *Tag) ID() int { return t.id }

var nextTagID int

func newTag(name string) *Tag {
	nextTagID++

	return &Tag{name: name, id: nextTagID}
}

// Define allocates a new top-level tag, or a child of parent when parent is
// non-nil.
//
// Define panics with an [InvalidParentError] if
// parent is itself a modified tag (parent.Base != nil): modified tags cannot
// be further parented, matching the algebra's "modified tags are leaves of
// the parent relation" invariant.
func Define(name string, parent *Tag) *Tag {
	if parent != nil && parent.Base != nil {
		panic(&InvalidParentError{Parent: parent})
	}

	t := newTag(name)

	if parent == nil {
		t.Set = []*Tag{t}

		return t
	}

	t.Set = make([]*Tag, 0, len(parent.Set)+1)
	t.Set = append(t.Set, t)
	t.Set = append(t.Set, parent.Set...)

	return t
}

// Modifier is an orthogonal, idempotent, commutative attribute that can be
// applied to a tag to produce a new, canonical tag. Use [DefineModifier] to
// allocate one, then call the returned function to apply it.
type Modifier struct {
	name string
	id   int

	// instances interns every tag this modifier has ever taken part in
	// producing, keyed by the full canonical modifier set (including other
	// modifiers) applied to each distinct base. This lets Get find an
	// existing tag for (base, mods) in O(len(instances)) without a second
	// index, which is fine: in practice the instance count per modifier is
	// small (bounded by distinct bases it's ever combined with).
	instances []*Tag
}

// Name returns the name this modifier was given at definition time.
func (m *Modifier) Name() string { return m.name }

var nextModifierID int

// DefineModifier allocates a new modifier and returns a function that
// applies it to a tag, returning the unique canonical tag for that
// (base, modifier) pair.
//
// The returned function is idempotent (applying it twice returns the same
// tag as applying it once) and commutes with every other modifier function:
// applying M1 then M2 yields the same tag, by reference, as M2 then M1.
func DefineModifier(name string) func(*Tag) *Tag {
	nextModifierID++

	m := &Modifier{name: name, id: nextModifierID}

	return func(t *Tag) *Tag {
		return apply(m, t)
	}
}

// apply returns the canonical tag for t with m added to its modifier set.
// If t is already modified, m is folded into t's existing modifier set
// (producing the tag for base with mods ∪ {m}); applying an already-present
// modifier is a no-op by canonicalization.
func apply(m *Modifier, t *Tag) *Tag {
	base := t
	mods := []*Modifier{m}

	if t.Base != nil {
		base = t.Base
		mods = unionModifiers(t.Modified, m)
	}

	return get(base, mods)
}

// get returns the canonical tag for (base, mods), interning on first
// request. mods must already be canonicalized (ascending id, deduplicated).
func get(base *Tag, mods []*Modifier) *Tag {
	if len(mods) == 0 {
		return base
	}

	for _, m := range mods {
		for _, cand := range m.instances {
			if cand.Base == base && modSetEqual(cand.Modified, mods) {
				return cand
			}
		}
	}

	t := newTag("")
	t.Base = base
	t.Modified = mods

	for _, m := range mods {
		m.instances = append(m.instances, t)
	}

	t.Set = buildModifiedSet(base, mods)

	return t
}

// buildModifiedSet computes the Set for a tag formed by applying mods to
// base, per the canonical-subset algorithm: for each ancestor p of base
// (from most specific to least), enumerate every non-empty subset of mods,
// largest subset first, and append get(p, subset) for each; finally append
// base itself.
//
// For a base with k ancestors (len(base.Set) == k) and n modifiers, the
// resulting Set has length k*(2^n-1) + 1.
func buildModifiedSet(base *Tag, mods []*Modifier) []*Tag {
	subsets := nonEmptySubsets(mods)

	set := make([]*Tag, 0, len(base.Set)*len(subsets)+1)

	for _, p := range base.Set {
		for _, s := range subsets {
			set = append(set, get(p, s))
		}
	}

	set = append(set, base)

	return set
}

// nonEmptySubsets returns every non-empty subset of mods, largest subset
// first; subsets of equal size preserve the relative order of mods.
func nonEmptySubsets(mods []*Modifier) [][]*Modifier {
	n := len(mods)
	all := make([][]*Modifier, 0, (1<<n)-1)

	for mask := 1; mask < (1 << n); mask++ {
		var subset []*Modifier

		for i := range n {
			if mask&(1<<i) != 0 {
				subset = append(subset, mods[i])
			}
		}

		all = append(all, subset)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return len(all[i]) > len(all[j])
	})

	return all
}

func unionModifiers(existing []*Modifier, m *Modifier) []*Modifier {
	for _, e := range existing {
		if e == m {
			return existing
		}
	}

	out := make([]*Modifier, 0, len(existing)+1)
	out = append(out, existing...)
	out = append(out, m)
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

func modSetEqual(a, b []*Modifier) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
