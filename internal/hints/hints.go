// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// appDir is the per-user config directory name.
const appDir = "go-md2post"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/"+appDir+"/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInvalidLocale lists the accepted locale keys.
func ForInvalidLocale(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMissingReceiveID explains how to address an envelope.
func ForMissingReceiveID() string {
	return format("pass --receive-id or set message.receiveId in the config file")
}

// ForFrontMatter explains the accepted front matter shape.
func ForFrontMatter() string {
	return format("front matter must be a YAML mapping between --- lines; drop --front-matter to keep it as text")
}

// ForNoInput lists the accepted input forms.
func ForNoInput() string {
	return format("pass a Markdown file, a directory, or - to read stdin")
}

// ForExtension suggests alternatives to a non-Markdown input file.
func ForExtension() string {
	return format("rename the file to .md, or pipe it with: md2post convert - < file")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
