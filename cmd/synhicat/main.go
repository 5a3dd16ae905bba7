// Package main provides synhicat, a terminal viewer that renders the toy
// grammar the rest of the module highlights.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/synhi/fangs"
	"go.jacobcolvin.com/synhi/internal/filepaths"
	"go.jacobcolvin.com/synhi/termstyle"
	"go.jacobcolvin.com/synhi/termstyle/theme"
)

const defaultTheme = "nord"

// applyStyleOverrides parses each "class=pygments-string" entry in raw and
// sets it on styles in place, letting --style punch through a theme's
// default for one class without requiring a whole new theme.
func applyStyleOverrides(styles termstyle.Styles, raw []string) error {
	for _, entry := range raw {
		class, spec, ok := strings.Cut(entry, "=")
		if !ok {
			return fmt.Errorf("--style %q: expected class=value", entry)
		}

		parsed, err := termstyle.Parse(spec)
		if err != nil {
			return fmt.Errorf("--style %s: %w", class, err)
		}

		styles[class] = parsed
	}

	return nil
}

func main() {
	var (
		lineNumbers    bool
		search         string
		themeName      string
		exclude        []string
		styleOverrides []string
	)

	cmd := &cobra.Command{
		Use:   "synhicat <file-or-pattern...>",
		Short: "A terminal viewer with syntax highlighting for the toy grammar",
		Long: "synhicat renders one or more files through the highlighter.\n" +
			"A single file is shown as plain highlighted source; two or more\n" +
			"are loaded as revisions, and every revision after the first is\n" +
			"shown as a diff against its predecessor.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			paths, err := filepaths.Expand(args...)
			if err != nil {
				return err
			}

			for _, pattern := range exclude {
				if _, err := filepaths.NewPattern(pattern); err != nil {
					return fmt.Errorf("--exclude %q: %w", pattern, err)
				}
			}

			paths = filepaths.Exclude(paths, exclude)
			if len(paths) == 0 {
				return fmt.Errorf("no files left after applying --exclude")
			}

			files := make([]fileEntry, 0, len(paths))

			for _, path := range paths {
				content, err := os.ReadFile(path) //nolint:gosec // User-provided file paths are intentional.
				if err != nil {
					return fmt.Errorf("read file %s: %w", path, err)
				}

				files = append(files, fileEntry{name: filepath.Base(path), content: string(content)})
			}

			styles, ok := theme.Styles(themeName)
			if !ok {
				return fmt.Errorf("unknown theme %q", themeName)
			}

			if err := applyStyleOverrides(styles, styleOverrides); err != nil {
				return err
			}

			m := newModel(modelOptions{
				files:       files,
				lineNumbers: lineNumbers,
				search:      search,
				themeName:   themeName,
				styles:      styles,
			})

			p := tea.NewProgram(m)

			_, err = p.Run()
			if err != nil {
				return fmt.Errorf("run program: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&lineNumbers, "line-numbers", "n", true, "show line numbers")
	cmd.Flags().StringVarP(&search, "search", "s", "", "initial search term")
	cmd.Flags().StringVarP(&themeName, "theme", "t", defaultTheme, "color theme")
	cmd.Flags().StringSliceVarP(&exclude, "exclude", "x", nil, "glob pattern to exclude from the expanded file list (repeatable)")
	cmd.Flags().StringArrayVarP(&styleOverrides, "style", "S", nil,
		`override one style class, as class=pygments-string (e.g. --style cmt-string="#ff0000 bold"), repeatable`)

	styles, _ := theme.Styles(defaultTheme)

	err := fang.Execute(context.Background(), cmd,
		fang.WithColorSchemeFunc(fangs.ColorSchemeFunc(styles)),
		fang.WithErrorHandler(fangs.ErrorHandler),
	)
	if err != nil {
		os.Exit(1)
	}
}
