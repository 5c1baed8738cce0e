package format

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Class identifies the detected content class of a single cell value.
// The class only selects the HTML wrapping; the text itself is always
// escaped the same way regardless of class.
type Class string

const (
	ClassURL        Class = "url"
	ClassFile       Class = "file"
	ClassJSON       Class = "json"
	ClassDate       Class = "date"
	ClassCoordinate Class = "coordinate"
	ClassPlain      Class = "plain"
)

// Value pairs a raw cell value with its detected content class.
type Value struct {
	Raw   string
	Class Class
}

// LongTextThreshold is the character count past which plain text is
// rendered as a long-text block instead of inline.
const LongTextThreshold = 200

// fileExtensions marks values that reference an uploaded attachment.
var fileExtensions = []string{
	".pdf", ".doc", ".docx", ".xls", ".xlsx", ".jpg", ".jpeg",
	".png", ".gif", ".mp3", ".mp4", ".zip", ".csv", ".txt",
}

var urlPrefixes = []string{"http://", "https://", "www.", "ftp://"}

// isoDatePattern matches ISO-like dates with an optional time component,
// e.g. "2024-03-15" or "2024-03-15 09:30:00".
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([ T]\d{2}:\d{2}(:\d{2})?)?$`)

// coordinatePatterns match click-map style numeric pairs.
var coordinatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.?\d*\s*,\s*\d+\.?\d*$`),
	regexp.MustCompile(`^\(\d+\.?\d*\s*,\s*\d+\.?\d*\)$`),
	regexp.MustCompile(`^\d+\.?\d*\s*:\s*\d+\.?\d*$`),
	regexp.MustCompile(`(?i)^x:\s*\d+\.?\d*\s*,?\s*y:\s*\d+\.?\d*$`),
}

var coordinatePair = regexp.MustCompile(`(\d+\.?\d*)\s*[,:]\s*(\d+\.?\d*)`)

// Detect classifies a single cell value. Detection is ordered:
// URL, file, JSON, date, coordinate, then plain text. Anything
// ambiguous falls through to plain; Detect never fails.
func Detect(raw string) Value {
	val := strings.TrimSpace(raw)

	switch {
	case isURL(val):
		if isFilePath(val) {
			return Value{Raw: val, Class: ClassFile}
		}
		return Value{Raw: val, Class: ClassURL}
	case isFilePath(val):
		return Value{Raw: val, Class: ClassFile}
	case isJSON(val):
		return Value{Raw: val, Class: ClassJSON}
	case isoDatePattern.MatchString(val):
		return Value{Raw: val, Class: ClassDate}
	case isCoordinate(val):
		return Value{Raw: val, Class: ClassCoordinate}
	}

	return Value{Raw: val, Class: ClassPlain}
}

func isURL(val string) bool {
	lower := strings.ToLower(val)
	for _, p := range urlPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func isFilePath(val string) bool {
	lower := strings.ToLower(val)
	for _, ext := range fileExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func isJSON(val string) bool {
	wrapped := (strings.HasPrefix(val, "{") && strings.HasSuffix(val, "}")) ||
		(strings.HasPrefix(val, "[") && strings.HasSuffix(val, "]"))
	return wrapped && json.Valid([]byte(val))
}

func isCoordinate(val string) bool {
	for _, p := range coordinatePatterns {
		if p.MatchString(val) {
			return true
		}
	}
	return false
}
