// Package filepaths turns synhicat's command-line arguments into the
// concrete revisions it loads: "<file-or-pattern...>" arguments are expanded
// against the file system, and --exclude patterns are filtered back out,
// both via [github.com/bmatcuk/doublestar], which supports `**` for
// recursive directory matching unlike [path/filepath.Glob].
//
// # Expanding arguments
//
// [Expand] turns a mix of literal paths and glob patterns into a sorted file
// list; [Exclude] then drops any path matching one of the user's --exclude
// patterns.
//
// # Validated patterns
//
// Use [Pattern] (via [NewPattern] or [MustPattern]) when a pattern needs to
// be checked once and matched repeatedly; doublestar syntax applies
// throughout:
//
//	**/*.lock      # Matches lockfiles in any directory.
//	*.lock         # Matches lockfiles in the root only.
//	**/vendor/**   # Matches anything under a vendor directory.
package filepaths
