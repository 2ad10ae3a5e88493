package format

import "strings"

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML replaces the five markup-significant characters with
// character references. The result is safe inside element text and
// quoted attribute values.
func EscapeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlReplacer.Replace(s)
}

// OrNA returns s, or "N/A" when s is empty. Whitespace is kept as is.
func OrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
