package rendering

import (
	"html/template"
	"regexp"
	"strings"
)

var (
	dangerousScheme = regexp.MustCompile(`(?i)^(javascript|data|vbscript|file|about):`)
	safeScheme      = regexp.MustCompile(`(?i)^(https?|mailto|tel|sms|ftp):`)
	bareHost        = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9.-]+\.[a-z]{2,}$`)
	anyScheme       = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*:`)
)

// SafeURL vets a link taken from the document for use in an href.
// Script-capable and unknown schemes yield ""; "www." prefixes and bare host
// names get https://; relative links pass through trimmed.
func SafeURL(raw string) template.URL {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return ""
	case dangerousScheme.MatchString(trimmed):
		return ""
	case safeScheme.MatchString(trimmed):
		return template.URL(trimmed) //nolint:gosec // scheme checked above
	case strings.HasPrefix(trimmed, "/"), strings.HasPrefix(trimmed, "."):
		return template.URL(trimmed) //nolint:gosec // relative link
	case strings.HasPrefix(strings.ToLower(trimmed), "www."), bareHost.MatchString(trimmed):
		return template.URL("https://" + trimmed) //nolint:gosec // scheme added
	case anyScheme.MatchString(trimmed):
		return ""
	default:
		return template.URL(trimmed) //nolint:gosec // relative link
	}
}

// DisplayURL strips the scheme and a trailing slash for link text
func DisplayURL(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	return strings.TrimSuffix(s, "/")
}
