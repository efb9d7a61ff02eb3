package sanitize

import "strings"

// htmlEscaper replaces the five HTML special characters with their named
// entities. Replacer substitutes in a single pass, so the ampersands
// introduced for &lt; &gt; &quot; &#039; are never re-escaped.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// HTML escapes s so it is safe to embed in an HTML email body.
func HTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Nl2br converts newlines to HTML line breaks. Call after HTML so the
// inserted tags survive escaping.
func Nl2br(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	return strings.ReplaceAll(s, "\n", "<br>")
}
