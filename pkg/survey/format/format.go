// Package format classifies single cell values and renders them as
// escaped HTML fragments. Classification is heuristic and degrades to
// plain text; it never rejects a value.
package format

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// HTML renders a detected value as an escaped HTML fragment. The
// fragment is safe to embed directly in a report document.
func HTML(v Value) string {
	switch v.Class {
	case ClassURL:
		return renderURL(v.Raw)
	case ClassFile:
		return renderFile(v.Raw)
	case ClassJSON:
		return renderJSON(v.Raw)
	case ClassDate:
		return `<span class="date-value">` + html.EscapeString(v.Raw) + `</span>`
	case ClassCoordinate:
		return renderCoordinate(v.Raw)
	default:
		return renderPlain(v.Raw)
	}
}

// Cell is the single entry point used by renderers: detect then wrap.
func Cell(raw string) string {
	return HTML(Detect(raw))
}

// Escape is the escaping primitive shared by every renderer. Exposed so
// block renderers escape labels with the same discipline as values.
func Escape(s string) string {
	return html.EscapeString(s)
}

func renderURL(val string) string {
	href := val
	if !strings.HasPrefix(strings.ToLower(val), "http://") &&
		!strings.HasPrefix(strings.ToLower(val), "https://") {
		href = "https://" + val
	}
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener" class="url-link">%s</a>`,
		html.EscapeString(href), html.EscapeString(val))
}

func renderFile(val string) string {
	if isURL(val) {
		name := val
		if idx := strings.LastIndex(val, "/"); idx >= 0 && idx < len(val)-1 {
			name = val[idx+1:]
		}
		return fmt.Sprintf(`<span class="file-ref"><a href="%s" target="_blank" rel="noopener">%s</a></span>`,
			html.EscapeString(val), html.EscapeString(name))
	}
	return `<span class="file-ref">` + html.EscapeString(val) + `</span>`
}

func renderJSON(val string) string {
	var buf strings.Builder
	var pretty json.RawMessage
	if err := json.Unmarshal([]byte(val), &pretty); err == nil {
		indented, err := json.MarshalIndent(pretty, "", "  ")
		if err == nil {
			buf.WriteString(`<pre class="json-data">`)
			buf.WriteString(html.EscapeString(string(indented)))
			buf.WriteString(`</pre>`)
			return buf.String()
		}
	}
	return `<pre class="json-data">` + html.EscapeString(val) + `</pre>`
}

func renderCoordinate(val string) string {
	if m := coordinatePair.FindStringSubmatch(val); m != nil {
		return fmt.Sprintf(`<span class="coordinate">X: %s, Y: %s</span>`, m[1], m[2])
	}
	return `<span class="coordinate">` + html.EscapeString(val) + `</span>`
}

func renderPlain(val string) string {
	escaped := strings.ReplaceAll(html.EscapeString(val), "\n", "<br>")
	if len(val) > LongTextThreshold {
		return `<div class="long-text">` + escaped + `</div>`
	}
	return escaped
}

// Empty renders the shared no-answer indicator.
func Empty() string {
	return `<span class="no-response">No response</span>`
}
