// Package table loads a survey response export into a uniform in-memory
// table. Input may be CSV or XLSX, optionally zstd- or gzip-compressed;
// the loader consumes export header rows, pads or truncates malformed
// data rows, and resolves a display identity per respondent.
package table

import (
	"fmt"
	"strings"
)

// Row is one respondent's answers, keyed by raw column header.
type Row struct {
	// Ordinal is the 1-based position of the row among data rows, used
	// for anonymous respondent numbering.
	Ordinal int

	ResponseID string
	Name       string

	Values map[string]string
}

// Table is a loaded response export.
type Table struct {
	Path string

	// Fingerprint is the xxh3 hash of the raw input bytes, before any
	// decompression. Shown in the debug panel and logged to the audit
	// trail so a report can be matched back to its exact input.
	Fingerprint string

	// Columns preserves header encounter order. Texts maps a column key
	// to its human-readable question text when the export carried a
	// text header row.
	Columns []string
	Texts   map[string]string

	Rows []Row

	// Warnings collects non-fatal load anomalies (padded rows, unknown
	// compression hints, missing identity columns).
	Warnings []string
}

func (t *Table) warnf(format string, args ...any) {
	t.Warnings = append(t.Warnings, fmt.Sprintf(format, args...))
}

// QuestionColumns returns the columns left after filtering out system
// metadata and timing columns, in header order.
func (t *Table) QuestionColumns() []string {
	var out []string
	for _, c := range t.Columns {
		if IsSystemColumn(c) || IsTimingColumn(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Values returns every non-blank value stored under a column, across
// all rows. This is the sampler the question classifier consumes.
func (t *Table) Values(column string) []string {
	var out []string
	for _, r := range t.Rows {
		if v := strings.TrimSpace(r.Values[column]); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// HeaderText returns the question text the export attached to a column
// header, or "" when no text row was present.
func (t *Table) HeaderText(column string) string {
	return t.Texts[column]
}

// HasAnyValue reports whether any row holds a non-blank value in any of
// the given columns. Groups with no data at all are suppressed from the
// report.
func (t *Table) HasAnyValue(columns []string) bool {
	for _, r := range t.Rows {
		for _, c := range columns {
			if strings.TrimSpace(r.Values[c]) != "" {
				return true
			}
		}
	}
	return false
}
