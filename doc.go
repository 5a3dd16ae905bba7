// Package synhi implements a syntax-directed highlighting engine: given a
// parsed tree whose node types carry compiled selector rules, it resolves
// each node to a style class and emits coalesced, non-overlapping spans over
// a source range.
//
// The engine itself has no opinion on parsing, rendering, or terminals —
// those are the concerns of the packages it's built from:
//
//   - [go.jacobcolvin.com/synhi/syntree] defines the tree contract the
//     engine walks.
//   - [go.jacobcolvin.com/synhi/selector] compiles per-node-type tag rules
//     from scope-aware selectors.
//   - [go.jacobcolvin.com/synhi/tag] is the closed vocabulary of semantic
//     tags (and tag modifiers) a rule can attach to a node.
//   - [go.jacobcolvin.com/synhi/style] resolves a tag to a class string, the
//     engine's actual output.
//   - [go.jacobcolvin.com/synhi/highlight] is the traversal that ties the
//     above together and emits spans.
//   - [go.jacobcolvin.com/synhi/difftags] classifies a line-level diff into
//     a highlighting tag per changed line, for revision comparisons.
//   - [go.jacobcolvin.com/synhi/termstyle] and its `theme` subpackage render
//     resolved class strings to terminal colors, for consumers that want a
//     complete rendering pipeline rather than just class strings.
//   - [go.jacobcolvin.com/synhi/toylang] is a small example grammar used to
//     exercise the whole pipeline end to end, and backs `cmd/synhicat`, the
//     terminal demo in this module.
//
// [Revision] is a small, content-agnostic doubly-linked history of named
// string revisions, usable by any consumer that wants to navigate or diff a
// document's history without committing to a particular source tree.
package synhi
