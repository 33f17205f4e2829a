package doc

import "strings"

var textExts = map[string]bool{
	".txt":  true,
	".md":   true,
	".log":  true,
	".go":   true,
	".py":   true,
	".js":   true,
	".ts":   true,
	".c":    true,
	".h":    true,
	".rs":   true,
	".sh":   true,
	".json": true,
	".yaml": true,
	".yml":  true,
	".toml": true,
	".csv":  true,
	".xml":  true,
	".html": true,
	".css":  true,
}

// IsSupportedExt returns true if the extension is a readable text format.
// Extensionless files are accepted too; binary content is caught at load.
func IsSupportedExt(ext string) bool {
	return ext == "" || textExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of common supported formats.
func SupportedExtsList() string {
	return ".txt, .md, .log, .go, .json, .yaml, and other plain-text files"
}
