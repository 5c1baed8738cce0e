// Package definition parses the optional survey-definition file: a JSON
// document carrying authoritative question text, declared types, and
// choice/answer labels keyed by export tag. A missing or unreadable
// definition is a valid state; callers degrade to heuristic inference.
package definition

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/queuebridge/surveyview/pkg/survey/question"
)

// Question is the declared metadata for one base question id.
type Question struct {
	QID       string
	ExportTag string
	Text      string

	// Raw type triple from the definition document.
	Type        string
	Selector    string
	SubSelector string

	// Archetype resolved through the type map; empty when the triple is
	// unknown. Display marks informational blocks that carry no answers.
	Archetype question.Archetype
	Display   bool

	// Choices label matrix rows and choice items; Answers label matrix
	// columns. The order slices preserve the declared display order and
	// drive positional lookup.
	Choices     map[string]string
	ChoiceOrder []string
	Answers     map[string]string
	AnswerOrder []string
}

// Survey is the parsed definition: declared questions by export tag.
type Survey struct {
	Questions map[string]*Question
}

// Empty returns a definition with no declared questions. Lookups on it
// all miss, which pushes every call site onto its generated fallback.
func Empty() *Survey {
	return &Survey{Questions: map[string]*Question{}}
}

// Load reads and parses a definition file. The caller treats any error
// as MetadataUnavailable: warn and continue with Empty().
func Load(path string) (*Survey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	return Parse(data)
}

// document mirrors just the slice of the definition schema this tool
// consumes.
type document struct {
	SurveyElements []struct {
		Element          string  `json:"Element"`
		PrimaryAttribute string  `json:"PrimaryAttribute"`
		Payload          payload `json:"Payload"`
	} `json:"SurveyElements"`
}

type payload struct {
	DataExportTag string          `json:"DataExportTag"`
	QuestionType  string          `json:"QuestionType"`
	Selector      string          `json:"Selector"`
	SubSelector   string          `json:"SubSelector"`
	QuestionText  string          `json:"QuestionText"`
	Choices       json.RawMessage `json:"Choices"`
	ChoiceOrder   []json.Number   `json:"ChoiceOrder"`
	Answers       json.RawMessage `json:"Answers"`
	AnswerOrder   []json.Number   `json:"AnswerOrder"`
	ColumnLabels  json.RawMessage `json:"ColumnLabels"`
}

// Parse decodes a definition document. Elements without an export tag
// are internal questions and are skipped.
func Parse(data []byte) (*Survey, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}

	s := Empty()
	for _, el := range doc.SurveyElements {
		if el.Element != "SQ" {
			continue
		}
		p := el.Payload
		if p.DataExportTag == "" {
			continue
		}

		q := &Question{
			QID:         el.PrimaryAttribute,
			ExportTag:   p.DataExportTag,
			Text:        CleanText(p.QuestionText),
			Type:        p.QuestionType,
			Selector:    p.Selector,
			SubSelector: p.SubSelector,
		}
		q.Archetype, q.Display = resolveType(p.QuestionType, p.Selector, p.SubSelector)

		q.Choices, q.ChoiceOrder = decodeLabels(p.Choices, p.ChoiceOrder)
		q.Answers, q.AnswerOrder = decodeLabels(p.Answers, p.AnswerOrder)
		if len(q.Answers) == 0 && len(p.ColumnLabels) > 0 {
			q.Answers, q.AnswerOrder = decodeLabels(p.ColumnLabels, nil)
		}

		s.Questions[p.DataExportTag] = q
	}
	return s, nil
}

// Question returns the declared metadata for a base id, or nil.
func (s *Survey) Question(base string) *Question {
	if s == nil {
		return nil
	}
	return s.Questions[base]
}

// DeclaredArchetype is the classifier hook: it reports an explicit type
// for a base id when the definition declares one.
func (s *Survey) DeclaredArchetype(base string) (question.Archetype, bool) {
	q := s.Question(base)
	if q == nil || q.Archetype == "" {
		return "", false
	}
	return q.Archetype, true
}

// IsDisplayOnly reports whether the base id is an informational block
// with no answer columns worth rendering.
func (s *Survey) IsDisplayOnly(base string) bool {
	q := s.Question(base)
	return q != nil && q.Display
}

// ChoiceLabel resolves a row/item sub-index to its declared label. A
// direct id hit wins; otherwise the index is treated as a 1-based
// position in the declared order. The boolean is false when the
// definition has nothing to offer and the caller must generate a
// placeholder.
func (q *Question) ChoiceLabel(idx string) (string, bool) {
	return lookupLabel(q.Choices, q.ChoiceOrder, idx)
}

// AnswerLabel resolves a column sub-index to its declared label.
func (q *Question) AnswerLabel(idx string) (string, bool) {
	return lookupLabel(q.Answers, q.AnswerOrder, idx)
}

func lookupLabel(labels map[string]string, order []string, idx string) (string, bool) {
	if labels == nil {
		return "", false
	}
	if l, ok := labels[idx]; ok {
		return l, true
	}
	var pos int
	if _, err := fmt.Sscanf(idx, "%d", &pos); err == nil && pos >= 1 && pos <= len(order) {
		if l, ok := labels[order[pos-1]]; ok {
			return l, true
		}
	}
	return "", false
}
