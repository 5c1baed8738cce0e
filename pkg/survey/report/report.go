// Package report renders a loaded response table and its classified
// question groups into one standalone HTML document.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/queuebridge/surveyview/pkg/survey/definition"
	"github.com/queuebridge/surveyview/pkg/survey/format"
	"github.com/queuebridge/surveyview/pkg/survey/question"
	"github.com/queuebridge/surveyview/pkg/survey/table"
)

// Options controls one render.
type Options struct {
	Title       string
	Debug       bool
	GeneratedAt time.Time
	SourceName  string
	Fingerprint string
}

// Summary is what the render produced, for the CLI's closing printout
// and the audit trail.
type Summary struct {
	Respondents int
	Questions   int
	Suppressed  int
	Archetypes  map[question.Archetype]int
}

// Render produces the complete HTML document. All input reading and
// classification happens before this call; Render itself is pure and
// deterministic for identical inputs (the timestamp comes from
// Options).
func Render(tbl *table.Table, groups []*question.Group, def *definition.Survey, opts Options) (string, Summary) {
	if def == nil {
		def = definition.Empty()
	}
	title := opts.Title
	if title == "" {
		title = "Survey Report"
	}

	sum := Summary{
		Respondents: len(tbl.Rows),
		Archetypes:  map[question.Archetype]int{},
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>`)
	b.WriteString(format.Escape(title))
	b.WriteString(`</title>
<style>`)
	b.WriteString(pageCSS)
	b.WriteString(`</style>
</head>
<body>
<div class="container">
`)

	writeHeaderCard(&b, title, tbl, opts)

	// Question blocks, in column encounter order. Groups with no data
	// at all and definition-declared display blocks are suppressed.
	var blocks strings.Builder
	for _, g := range groups {
		if def.IsDisplayOnly(g.Base) {
			sum.Suppressed++
			continue
		}
		if !tbl.HasAnyValue(rawKeys(g)) {
			sum.Suppressed++
			continue
		}
		sum.Questions++
		sum.Archetypes[g.Archetype]++
		writeQuestionCard(&blocks, tbl, g, def, opts.Debug)
	}

	writeSummaryBar(&b, sum)
	b.WriteString(blocks.String())

	b.WriteString(`<div class="footer">Generated `)
	b.WriteString(format.Escape(opts.GeneratedAt.Format(time.RFC3339)))
	b.WriteString(`</div>
</div></body></html>`)
	return b.String(), sum
}

func writeHeaderCard(b *strings.Builder, title string, tbl *table.Table, opts Options) {
	b.WriteString(`<div class="header-card">`)
	b.WriteString(`<div class="report-title">`)
	b.WriteString(format.Escape(title))
	b.WriteString(`</div>`)
	b.WriteString(`<div class="meta-grid">`)
	writeMetaItem(b, "Source File", opts.SourceName)
	writeMetaItem(b, "Generated", opts.GeneratedAt.Format(time.RFC3339))
	if opts.Debug {
		writeMetaItem(b, "Input Fingerprint", opts.Fingerprint)
		for _, w := range tbl.Warnings {
			writeMetaItem(b, "Warning", w)
		}
	}
	b.WriteString(`</div></div>`)
}

func writeSummaryBar(b *strings.Builder, sum Summary) {
	b.WriteString(`<div class="summary-bar">`)
	fmt.Fprintf(b, `<span><strong>%d</strong> respondents</span>`, sum.Respondents)
	fmt.Fprintf(b, `<span><strong>%d</strong> questions</span>`, sum.Questions)
	for _, a := range []question.Archetype{
		question.ArchetypeSingle,
		question.ArchetypeForm,
		question.ArchetypeMatrix,
		question.ArchetypeMultiSelect,
		question.ArchetypeDrillDown,
	} {
		if n := sum.Archetypes[a]; n > 0 {
			fmt.Fprintf(b, `<span><strong>%d</strong> %s</span>`, n, a)
		}
	}
	if sum.Suppressed > 0 {
		fmt.Fprintf(b, `<span><strong>%d</strong> empty blocks hidden</span>`, sum.Suppressed)
	}
	b.WriteString(`</div>`)
}

func writeMetaItem(b *strings.Builder, label, value string) {
	b.WriteString(`<div class="meta-item">`)
	b.WriteString(`<span class="meta-label">` + format.Escape(label) + `</span>`)
	b.WriteString(`<span class="meta-value">` + format.Escape(value) + `</span>`)
	b.WriteString(`</div>`)
}

func rawKeys(g *question.Group) []string {
	out := make([]string, len(g.Keys))
	for i, k := range g.Keys {
		out[i] = k.Raw
	}
	return out
}
