// Package selector compiles the compact path language described in the
// engine's §4.2 ("A/B/C", "*", trailing "/..." or "!", quoted names) into
// [Rule] chains keyed by innermost node name, and attaches them to node
// types via [RuleProp].
package selector

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.jacobcolvin.com/synhi/syntree"
	"go.jacobcolvin.com/synhi/tag"
)

// Mode is how a [Rule]'s tags apply to the matched node and its descendants.
type Mode int

const (
	// Normal applies the rule's tags to the matched node only.
	Normal Mode = iota
	// Inherit applies the rule's tags to the matched node and propagates
	// them to every descendant (until blocked by an Opaque ancestor).
	Inherit
	// Opaque applies the rule's tags to the matched node and suppresses
	// all deeper styling within it.
	Opaque
)

// Rule is a compiled selector path: one or more tags, a mode, an optional
// ancestor context, and a link to the next alternative rule for the same
// innermost node name.
type Rule struct {
	Tags    []*tag.Tag
	Mode    Mode
	Context []string // "" denotes a wildcard step; nearest ancestor first.
	Next    *Rule
}

// Depth is the rule's context length, used to order alternatives so more
// specific rules are tried first.
func (r *Rule) Depth() int { return len(r.Context) }

// RuleProp is the [syntree.NodeProp] this package uses to attach a compiled
// rule chain to a node type, per §6's "this core defines one such key for
// the compiled Rule chain."
//
//nolint:gochecknoglobals // Process-lifetime singleton key, not mutable state.
var RuleProp = syntree.NewNodeProp[*Rule]("synhi.rules")

// InvalidPathError is the value [Compile] panics with when a selector path
// fails the grammar:
// an empty innermost name, a stray "!" or "/...", or an unterminated quote.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("selector: invalid path %q: %s", e.Path, e.Reason)
}

// stepPattern implements the step regex from §4.2:
// ^"(?:[^"\\]|\\.)*"|[^/!]+
//
//nolint:gochecknoglobals // Compiled once; stateless.
var stepPattern = regexp.MustCompile(`^(?:"(?:[^"\\]|\\.)*"|[^/!]+)`)

// Spec is one entry of a call to [Compile]: a selector string (possibly
// several space-separated paths) and the tag(s) each matching path applies.
type Spec struct {
	Selector string
	Tags     []*tag.Tag
}

// Compile parses every path in every spec and returns, for each distinct
// innermost node name, the head of its [Rule] chain (sorted by descending
// [Rule.Depth], with later-registered rules preceding earlier ones on a
// depth tie — see DESIGN.md's "Open Question decisions").
//
// Compile panics on a malformed path ([InvalidPathError]); like [tag.Define],
// selector compilation is a design-time activity.
func Compile(specs ...Spec) map[string]*Rule {
	chains := map[string][]*Rule{}

	for _, spec := range specs {
		for path := range strings.SplitSeq(spec.Selector, " ") {
			if path == "" {
				continue
			}

			name, rule := compilePath(path, spec.Tags)
			// Prepend: later-inserted rules precede earlier ones overall;
			// the final stable sort by depth preserves that relative order
			// among same-depth rules.
			chains[name] = append([]*Rule{rule}, chains[name]...)
		}
	}

	out := make(map[string]*Rule, len(chains))

	for name, rules := range chains {
		stableSortByDepthDesc(rules)
		out[name] = link(rules)
	}

	return out
}

func compilePath(path string, tags []*tag.Tag) (innermost string, rule *Rule) {
	mode := Normal

	switch {
	case strings.HasSuffix(path, "/..."):
		mode = Inherit
		path = strings.TrimSuffix(path, "/...")
	case strings.HasSuffix(path, "!"):
		mode = Opaque
		path = strings.TrimSuffix(path, "!")
	}

	var steps []string

	rest := path

	for rest != "" {
		if rest[0] == '/' {
			rest = rest[1:]
			if rest == "" {
				panic(&InvalidPathError{Path: path, Reason: "empty innermost name"})
			}

			continue
		}

		m := stepPattern.FindString(rest)
		if m == "" {
			panic(&InvalidPathError{Path: path, Reason: "malformed step"})
		}

		if m == "..." {
			panic(&InvalidPathError{Path: path, Reason: `stray "/..."`})
		}

		steps = append(steps, decodeStep(path, m))
		rest = rest[len(m):]
	}

	if len(steps) == 0 {
		panic(&InvalidPathError{Path: path, Reason: "empty innermost name"})
	}

	last := steps[len(steps)-1]
	if last == "" {
		panic(&InvalidPathError{Path: path, Reason: "empty innermost name"})
	}

	context := make([]string, len(steps)-1)
	for i := range context {
		// Nearest parent first: the step just before the innermost one is
		// index 0 of context.
		context[i] = steps[len(steps)-2-i]
	}

	return last, &Rule{Tags: tags, Mode: mode, Context: context}
}

func decodeStep(path, step string) string {
	if step == "*" {
		return "" // Wildcard.
	}

	if step[0] == '"' {
		var s string
		if err := json.Unmarshal([]byte(step), &s); err != nil {
			panic(&InvalidPathError{Path: path, Reason: "unterminated or invalid quoted step"})
		}

		return s
	}

	return step
}

// stableSortByDepthDesc sorts by descending Depth, preserving relative
// order (the slice arrives already newer-first per-path; a stable sort
// keeps that order for depth ties).
func stableSortByDepthDesc(rules []*Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Depth() > rules[j].Depth()
	})
}

func link(rules []*Rule) *Rule {
	for i := 0; i < len(rules)-1; i++ {
		rules[i].Next = rules[i+1]
	}

	if len(rules) == 0 {
		return nil
	}

	return rules[0]
}

// MatchContext reports whether ctx (nearest-ancestor-first, "" = wildcard)
// matches the live ancestor stack, per §4.5: a context of length L requires
// at least L ancestors, and each non-wildcard step must equal the
// corresponding stack entry walking upward from the immediate parent.
//
// stack is indexed by depth (stack[i] is the node name at depth i); depth is
// the current node's depth, so its parent is at depth-1.
func MatchContext(ctx []string, stack []string, depth int) bool {
	if len(ctx) > depth {
		return false
	}

	for i, step := range ctx {
		d := depth - 1 - i
		if step != "" && stack[d] != step {
			return false
		}
	}

	return true
}
