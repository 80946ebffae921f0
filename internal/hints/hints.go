// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2epub/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-md2epub) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2epub") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputNotFound returns hints for a missing Markdown input.
func ForInputNotFound() string {
	return format("pass a .md or .markdown file, or a directory of them")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidStyle returns hints for stylesheets that do not parse.
func ForInvalidStyle() string {
	return format("check for unbalanced braces in the stylesheet")
}

// ForCoverImage returns hints for cover image errors.
func ForCoverImage() string {
	return format("supported formats: JPG, PNG, GIF, SVG, WebP; use a file path or URL")
}

// ForLanguage returns hints for invalid language tags.
func ForLanguage() string {
	return format("use a BCP 47 tag such as ko, en or ja-JP")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
