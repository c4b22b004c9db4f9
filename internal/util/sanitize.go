package util

import (
	"regexp"
	"strings"
)

// filenameUnsafe matches every character not allowed in a stored filename.
var filenameUnsafe = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SanitizeFilename reduces an untrusted filename to a flat, safe name:
// path separators and special characters collapse to underscores, leading
// dots are stripped, and an empty result stays empty. The output never
// escapes the directory it is joined to.
func SanitizeFilename(name string) string {
	// Keep only the last path element regardless of separator style.
	if idx := strings.LastIndexAny(name, `/\`); idx != -1 {
		name = name[idx+1:]
	}
	name = filenameUnsafe.ReplaceAllString(name, "_")
	return strings.TrimLeft(name, "._")
}
