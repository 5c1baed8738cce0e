package table

import (
	"strconv"
	"strings"
)

// systemColumns are export bookkeeping fields that never carry survey
// answers. Matching is exact on the raw header.
var systemColumns = map[string]bool{
	"StartDate":             true,
	"EndDate":               true,
	"Status":                true,
	"IPAddress":             true,
	"Progress":              true,
	"Duration (in seconds)": true,
	"Finished":              true,
	"RecordedDate":          true,
	"ResponseId":            true,
	"RecipientLastName":     true,
	"RecipientFirstName":    true,
	"RecipientEmail":        true,
	"ExternalReference":     true,
	"LocationLatitude":      true,
	"LocationLongitude":     true,
	"DistributionChannel":   true,
	"UserLanguage":          true,
}

// timingSuffixes mark per-page timing instrumentation columns.
var timingSuffixes = []string{
	"_First Click",
	"_Last Click",
	"_Page Submit",
	"_Click Count",
}

// IsSystemColumn reports whether a header is export bookkeeping rather
// than a question column.
func IsSystemColumn(header string) bool {
	return systemColumns[header]
}

// IsTimingColumn reports whether a header is a page-timing column.
func IsTimingColumn(header string) bool {
	for _, suf := range timingSuffixes {
		if strings.HasSuffix(header, suf) {
			return true
		}
	}
	return false
}

// resolveIdentity picks the display name for a respondent row: real
// name first, then email, then external reference, then the response
// id, then an anonymous ordinal.
func resolveIdentity(r *Row) {
	first := strings.TrimSpace(r.Values["RecipientFirstName"])
	last := strings.TrimSpace(r.Values["RecipientLastName"])
	switch {
	case first != "" && last != "":
		r.Name = first + " " + last
	case first != "":
		r.Name = first
	case last != "":
		r.Name = last
	}
	if r.Name == "" {
		r.Name = strings.TrimSpace(r.Values["RecipientEmail"])
	}
	if r.Name == "" {
		r.Name = strings.TrimSpace(r.Values["ExternalReference"])
	}
	if r.Name == "" {
		r.Name = r.ResponseID
	}
	if r.Name == "" {
		r.Name = anonymousName(r.Ordinal)
	}
}

func anonymousName(ordinal int) string {
	return "Anonymous " + strconv.Itoa(ordinal)
}
