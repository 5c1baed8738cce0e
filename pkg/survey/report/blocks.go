package report

import (
	"strings"

	"github.com/queuebridge/surveyview/pkg/survey/definition"
	"github.com/queuebridge/surveyview/pkg/survey/format"
	"github.com/queuebridge/surveyview/pkg/survey/question"
	"github.com/queuebridge/surveyview/pkg/survey/table"
)

// writeQuestionCard renders one question group: header with resolved
// question text, then one respondent section per row that answered.
func writeQuestionCard(b *strings.Builder, tbl *table.Table, g *question.Group, def *definition.Survey, debug bool) {
	b.WriteString(`<div class="question-card">`)
	b.WriteString(`<div class="question-header">`)
	b.WriteString(`<span class="question-text">` + format.Escape(questionText(tbl, g, def)) + `</span>`)
	b.WriteString(`<span class="question-id">` + format.Escape(g.Base) + `</span>`)
	if debug {
		b.WriteString(`<span class="archetype-tag">` + format.Escape(string(g.Archetype)) + `</span>`)
	}
	b.WriteString(`</div>`)

	if debug {
		b.WriteString(`<div class="debug-info">columns: `)
		b.WriteString(format.Escape(strings.Join(rawKeys(g), ", ")))
		b.WriteString(`</div>`)
	}

	for i := range tbl.Rows {
		row := &tbl.Rows[i]
		if !rowAnswered(row, g) {
			continue
		}
		b.WriteString(`<div class="respondent">`)
		b.WriteString(`<div class="respondent-name">` + format.Escape(row.Name))
		if row.ResponseID != "" {
			b.WriteString(`<span class="respondent-meta">Response: ` + format.Escape(row.ResponseID) + `</span>`)
		}
		b.WriteString(`</div>`)

		switch g.Archetype {
		case question.ArchetypeMatrix:
			writeMatrixAnswer(b, tbl, row, g, def)
		case question.ArchetypeForm:
			writeFormAnswer(b, tbl, row, g, def)
		case question.ArchetypeMultiSelect:
			writeListAnswer(b, row, g)
		case question.ArchetypeDrillDown:
			writeDrillAnswer(b, row, g)
		default:
			writeSingleAnswer(b, row, g)
		}

		writeOtherTexts(b, row, g)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
}

func writeSingleAnswer(b *strings.Builder, row *table.Row, g *question.Group) {
	b.WriteString(`<div class="answer">`)
	if v := answerValue(row, g); v != "" {
		b.WriteString(format.Cell(v))
	} else {
		b.WriteString(format.Empty())
	}
	b.WriteString(`</div>`)
}

// writeFormAnswer renders one row per form item. Items follow the
// sorted sub-key order; keys without index structure fall back to
// encounter order.
func writeFormAnswer(b *strings.Builder, tbl *table.Table, row *table.Row, g *question.Group, def *definition.Survey) {
	keys := formKeys(g)
	b.WriteString(`<table class="form-table">`)
	for _, k := range keys {
		v := strings.TrimSpace(row.Values[k.Raw])
		b.WriteString(`<tr><td class="form-label">`)
		b.WriteString(format.Escape(itemLabel(tbl, g, def, k)))
		b.WriteString(`</td><td>`)
		if v != "" {
			b.WriteString(format.Cell(v))
		} else {
			b.WriteString(format.Empty())
		}
		b.WriteString(`</td></tr>`)
	}
	b.WriteString(`</table>`)
}

// writeMatrixAnswer renders the full rectangle for one respondent.
// Every declared row and column appears even when the cell column is
// missing from the export or the respondent left it blank.
func writeMatrixAnswer(b *strings.Builder, tbl *table.Table, row *table.Row, g *question.Group, def *definition.Survey) {
	b.WriteString(`<div class="matrix-wrapper"><table class="matrix-table"><thead><tr><th></th>`)
	for _, c := range g.ColKeys {
		b.WriteString(`<th>` + format.Escape(colLabel(tbl, g, def, c)) + `</th>`)
	}
	b.WriteString(`</tr></thead><tbody>`)

	for _, r := range g.RowKeys {
		b.WriteString(`<tr><td class="row-label">` + format.Escape(rowLabel(tbl, g, def, r)) + `</td>`)
		for _, c := range g.ColKeys {
			b.WriteString(`<td>`)
			if k, ok := g.MatrixCell(r, c); ok {
				if v := strings.TrimSpace(row.Values[k.Raw]); v != "" {
					b.WriteString(format.Cell(v))
				} else {
					b.WriteString(format.Empty())
				}
			} else {
				b.WriteString(format.Empty())
			}
			b.WriteString(`</td>`)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table></div>`)
}

func writeListAnswer(b *strings.Builder, row *table.Row, g *question.Group) {
	v := answerValue(row, g)
	parts := question.SplitValues(v, question.ArchetypeMultiSelect)
	if len(parts) == 0 {
		b.WriteString(`<div class="answer">` + format.Empty() + `</div>`)
		return
	}
	b.WriteString(`<ul class="choice-list">`)
	for _, p := range parts {
		b.WriteString(`<li>` + format.Cell(p) + `</li>`)
	}
	b.WriteString(`</ul>`)
}

func writeDrillAnswer(b *strings.Builder, row *table.Row, g *question.Group) {
	v := answerValue(row, g)
	parts := question.SplitValues(v, question.ArchetypeDrillDown)
	if len(parts) == 0 {
		b.WriteString(`<div class="answer">` + format.Empty() + `</div>`)
		return
	}
	b.WriteString(`<div class="drill-path">`)
	for i, p := range parts {
		if i > 0 {
			b.WriteString(`<span class="drill-arrow">&rsaquo;</span>`)
		}
		b.WriteString(`<span class="drill-segment">` + format.Escape(p) + `</span>`)
	}
	b.WriteString(`</div>`)
}

// writeOtherTexts appends the free-text companions ("other, please
// specify") a respondent filled in.
func writeOtherTexts(b *strings.Builder, row *table.Row, g *question.Group) {
	for _, k := range g.TextKeys() {
		if v := strings.TrimSpace(row.Values[k.Raw]); v != "" {
			b.WriteString(`<div class="other-text">Other: ` + format.Cell(v) + `</div>`)
		}
	}
}

// rowAnswered reports whether the respondent left anything in the
// group, including its free-text companions.
func rowAnswered(row *table.Row, g *question.Group) bool {
	for _, k := range g.Keys {
		if strings.TrimSpace(row.Values[k.Raw]) != "" {
			return true
		}
	}
	return false
}

// answerValue returns the first non-blank answer value for
// single-column archetypes.
func answerValue(row *table.Row, g *question.Group) string {
	for _, k := range g.AnswerKeys() {
		if v := strings.TrimSpace(row.Values[k.Raw]); v != "" {
			return v
		}
	}
	return ""
}

// formKeys orders a form's answer columns: indexed items in sorted
// sub-key order first, then unindexed keys in encounter order.
func formKeys(g *question.Group) []question.ColumnKey {
	var out []question.ColumnKey
	for _, item := range g.ItemKeys {
		if k, ok := g.ItemKey(item); ok {
			out = append(out, k)
		}
	}
	for _, k := range g.AnswerKeys() {
		if len(k.Sub) != 1 {
			out = append(out, k)
		}
	}
	return out
}
