package richtext

import (
	"strings"

	"golang.org/x/net/html"
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\n", "<br>",
)

// EscapeHTML escapes element text: ampersands and angle brackets become
// entities and newlines become line breaks. It is not idempotent.
func EscapeHTML(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr escapes a value placed inside a double quoted attribute.
func escapeAttr(s string) string {
	return html.EscapeString(s)
}
