// Package htmlsanitize cleans user-entered HTML before it reaches a
// template. Used for the contact form and the free-text fields on the
// admin screens.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "sub", "sup", "mark")
	p.AllowAttrs("class", "style").OnElements("table", "thead", "tbody", "tr", "th", "td")
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	return p
}

// Sanitize strips unsafe markup and returns the cleaned HTML string.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	return policy.Sanitize(input)
}

// SanitizeToHTML sanitizes and wraps the result as template.HTML for
// direct use in templates.
func SanitizeToHTML(input string) template.HTML {
	return template.HTML(Sanitize(input))
}

// IsPlainText reports whether the input looks like plain text rather
// than markup. A string counts as HTML only when it has both < and >.
func IsPlainText(input string) bool {
	return !strings.Contains(input, "<") || !strings.Contains(input, ">")
}

// PlainTextToHTML escapes plain text and converts newlines to <br>,
// wrapping the whole thing in a paragraph.
func PlainTextToHTML(input string) string {
	if input == "" {
		return ""
	}
	escaped := html.EscapeString(input)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return "<p>" + escaped + "</p>"
}

// PrepareForDisplay handles both cases: plain text gets escaped and
// paragraph-wrapped, HTML gets sanitized.
func PrepareForDisplay(input string) template.HTML {
	if input == "" {
		return ""
	}
	if IsPlainText(input) {
		return template.HTML(PlainTextToHTML(input))
	}
	return SanitizeToHTML(input)
}
