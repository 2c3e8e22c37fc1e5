package util

import (
	"regexp"
	"strings"
)

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9\-]+`)

// AttachmentFileName turns a display name into a safe lowercase file name
// with the given extension, e.g. "Customer Journey Mapping" -> "customer-journey-mapping.pdf".
func AttachmentFileName(name, ext string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = unsafeFileChars.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "document"
	}
	return s + "." + strings.TrimPrefix(ext, ".")
}
