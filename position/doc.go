// Package position converts between a document's flat byte offsets — the
// coordinate space [go.jacobcolvin.com/synhi/internal/styletree] and
// [go.jacobcolvin.com/synhi/highlight] both index spans in — and the
// 0-indexed line/column a terminal click or cursor position reports, so a
// viewer can translate one into the other without leaking the byte-offset
// math of [strings.Split] into callers that only care about "line 5, column
// 10".
//
// [FromOffset] and [Position.Offset] are exact inverses of each other over
// the same content string; a viewer typically calls [Position.Offset] to
// resolve a click to a style lookup, and [FromOffset] to report back a
// human-readable "line:col" (via [Position.String]) for whatever it found.
package position
