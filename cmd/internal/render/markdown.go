package render

import (
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*\n]+)\*`)
)

// ToHTML converts the bold/italic markers of the generated markdown into
// tags and newlines into <br>. Text without markers passes through
// untouched, which makes the conversion idempotent on plain text.
func ToHTML(md string) string {
	out := boldRe.ReplaceAllString(md, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	return strings.ReplaceAll(out, "\n", "<br>")
}

// ToPlain strips the bold/italic markers, leaving everything else intact.
func ToPlain(md string) string {
	out := boldRe.ReplaceAllString(md, "$1")
	return italicRe.ReplaceAllString(out, "$1")
}
