package definition

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTag        = regexp.MustCompile(`<[^>]+>`)
	textWhitespace = regexp.MustCompile(`\s+`)

	// Editor boilerplate that survey builders leave in question text.
	boilerplate = []*regexp.Regexp{
		regexp.MustCompile(`(?i)click to write the question text`),
		regexp.MustCompile(`(?i)click to write choice \d+`),
		regexp.MustCompile(`(?i)click to write statement \d+`),
		regexp.MustCompile(`(?i)click to write scale point \d+`),
	}
)

// CleanText turns a definition-file rich-text fragment into plain text:
// entities unescaped, HTML tags stripped, editor boilerplate removed,
// whitespace collapsed. Unescaping runs first so doubly-encoded markup
// ("&lt;b&gt;") is stripped like any other tag.
func CleanText(text string) string {
	t := html.UnescapeString(text)
	t = htmlTag.ReplaceAllString(t, " ")
	for _, re := range boilerplate {
		t = re.ReplaceAllString(t, "")
	}
	return strings.TrimSpace(textWhitespace.ReplaceAllString(t, " "))
}
