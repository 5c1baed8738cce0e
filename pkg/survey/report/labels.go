package report

import (
	"strings"

	"github.com/queuebridge/surveyview/pkg/survey/definition"
	"github.com/queuebridge/surveyview/pkg/survey/question"
	"github.com/queuebridge/surveyview/pkg/survey/table"
)

// Label resolution order everywhere: definition file first, then
// recovery from the export's text header row, then a generated
// placeholder. The report never fails for want of a label.

func questionText(tbl *table.Table, g *question.Group, def *definition.Survey) string {
	if q := def.Question(g.Base); q != nil && q.Text != "" {
		return q.Text
	}
	for _, k := range g.Keys {
		if txt := tbl.HeaderText(k.Raw); txt != "" {
			base, _, _ := question.SplitHeaderText(txt)
			if base != "" {
				return base
			}
		}
	}
	return g.Base
}

func rowLabel(tbl *table.Table, g *question.Group, def *definition.Survey, row string) string {
	if q := def.Question(g.Base); q != nil {
		if l, ok := q.ChoiceLabel(row); ok {
			return l
		}
	}
	// Any cell in the row carries the label in its header text.
	for _, c := range g.ColKeys {
		if k, ok := g.MatrixCell(row, c); ok {
			if _, r, _ := question.SplitHeaderText(tbl.HeaderText(k.Raw)); r != "" {
				return r
			}
		}
	}
	return "Row " + row
}

func colLabel(tbl *table.Table, g *question.Group, def *definition.Survey, col string) string {
	if q := def.Question(g.Base); q != nil {
		if l, ok := q.AnswerLabel(col); ok {
			return l
		}
	}
	for _, r := range g.RowKeys {
		if k, ok := g.MatrixCell(r, col); ok {
			if _, _, c := question.SplitHeaderText(tbl.HeaderText(k.Raw)); c != "" {
				return c
			}
		}
	}
	return "Column " + col
}

func itemLabel(tbl *table.Table, g *question.Group, def *definition.Survey, k question.ColumnKey) string {
	if len(k.Sub) == 1 {
		if q := def.Question(g.Base); q != nil {
			if l, ok := q.ChoiceLabel(k.Sub[0]); ok {
				return l
			}
		}
	}
	if txt := tbl.HeaderText(k.Raw); txt != "" {
		if _, r, c := question.SplitHeaderText(txt); c != "" {
			return strings.TrimSpace(r + " " + c)
		} else if r != "" {
			return r
		}
	}
	if len(k.Sub) > 0 {
		return "Item " + strings.Join(k.Sub, ".")
	}
	return k.Raw
}
