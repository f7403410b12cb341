package lookup

import (
	"html"
	"regexp"
	"strings"
)

var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	bulletPattern = regexp.MustCompile(`(?m)^[*-] `)
)

// FormatNarrative converts the small markdown subset narrators emit into inline HTML.
// Only bold markers, leading bullet markers and newlines are handled; the text is
// HTML-escaped first so provider output cannot inject markup.
func FormatNarrative(text string) string {
	out := html.EscapeString(strings.TrimSpace(text))
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = bulletPattern.ReplaceAllString(out, "• ")
	return strings.ReplaceAll(out, "\n", "<br>")
}
