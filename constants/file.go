package constants

import "strings"

// Format tags for the two transcript formats we can extract text from.
const (
	FormatDOCX = "DOCX"
	FormatPDF  = "PDF"
)

// AllowedExtensions holds the file extensions accepted for transcript upload.
var AllowedExtensions = map[string]struct{}{
	"docx": {},
	"pdf":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// MapExtToFormat maps a file extension to its format tag, or "" when the
// extension is not supported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "docx":
		return FormatDOCX
	case "pdf":
		return FormatPDF
	default:
		return ""
	}
}
