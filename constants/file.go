package constants

import "strings"

// SourceFormats holds the allowed source formats for extraction runs.
var SourceFormats = []string{"PDF", "TXT"}

// AllowedExtensions holds the default allowed file extensions for datasheet
// ingestion. Plain-text sources cover pre-flattened debug dumps.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether the extension is accepted for ingestion.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// MapExtToFormat maps a file extension to the run store's format label.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "PDF"
	case "txt":
		return "TXT"
	}
	return ""
}
