// Package theme provides a curated set of named [termstyle.Styles] palettes,
// plus a registry so a consumer can add its own at runtime.
package theme

import (
	"sync"

	"go.jacobcolvin.com/synhi/termstyle"
)

// entry pairs a named style generator with the [termstyle.Mode] it targets.
type entry struct {
	Styles func() termstyle.Styles
	Name   string
	Mode   termstyle.Mode
}

var (
	mu       sync.RWMutex
	registry = map[string]entry{}
)

func init() {
	Register("nord", Nord, termstyle.Dark)
	Register("github-dark", GithubDark, termstyle.Dark)
	Register("dracula", Dracula, termstyle.Dark)
	Register("catppuccin-frappe", CatppuccinFrappe, termstyle.Dark)
	Register("solarized-light", SolarizedLight, termstyle.Light)
}

// Register adds or replaces a named theme. Safe for concurrent use.
func Register(name string, fn func() termstyle.Styles, mode termstyle.Mode) {
	mu.Lock()
	defer mu.Unlock()

	registry[name] = entry{Styles: fn, Name: name, Mode: mode}
}

// List returns registered theme names matching the given [termstyle.Mode].
func List(m termstyle.Mode) []string {
	mu.RLock()
	defer mu.RUnlock()

	var names []string

	for _, e := range registry {
		if e.Mode == m {
			names = append(names, e.Name)
		}
	}

	return names
}

// Styles returns the [termstyle.Styles] for the given theme name.
func Styles(name string) (termstyle.Styles, bool) {
	mu.RLock()
	e, ok := registry[name]
	mu.RUnlock()

	if !ok {
		return termstyle.Styles{}, false
	}

	return e.Styles(), true
}
