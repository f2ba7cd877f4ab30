package constants

import "strings"

// Business plans are accepted as PDF only; the model consumes the document
// bytes directly (no OCR stage).
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// MaxDocumentBytes caps what we will fetch from object storage for one run.
const MaxDocumentBytes = 32 * 1024 * 1024

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
