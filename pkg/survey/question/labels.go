package question

import (
	"regexp"
	"strings"
)

// Survey exports encode matrix cell information in the header text as
// "Question Text - Row Label - Column Label". SplitHeaderText recovers
// the pieces; row/col come back empty when the text has no separator.

var (
	dateRange     = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4})`)
	dashSeparator = regexp.MustCompile(`\s+-\s+`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

const dateRangeMarker = "\x00RANGE\x00"

// SplitHeaderText splits a header question text into base text, row
// label, and column label. Year ranges like "2024 - 2025" are protected
// from being treated as separators.
func SplitHeaderText(text string) (base, row, col string) {
	cleaned := CleanHeaderText(text)
	if cleaned == "" {
		return "", "", ""
	}

	protected := dateRange.ReplaceAllString(cleaned, "$1"+dateRangeMarker+"$2")
	parts := dashSeparator.Split(protected, -1)
	for i := range parts {
		parts[i] = strings.ReplaceAll(parts[i], dateRangeMarker, " - ")
	}

	switch {
	case len(parts) >= 3:
		return strings.Join(parts[:len(parts)-2], " - "), parts[len(parts)-2], parts[len(parts)-1]
	case len(parts) == 2:
		return parts[0], parts[1], ""
	default:
		return cleaned, "", ""
	}
}

// CleanHeaderText normalizes a header question text: stray leading and
// trailing dashes removed, whitespace collapsed.
func CleanHeaderText(text string) string {
	t := strings.TrimSpace(text)
	t = strings.TrimPrefix(t, "- ")
	t = strings.TrimSuffix(t, " -")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(t, " "))
}
