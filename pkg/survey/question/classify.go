package question

import (
	"regexp"
	"strings"
)

// Archetype is the inferred rendering category of a question group.
type Archetype string

const (
	ArchetypeSingle      Archetype = "single"
	ArchetypeForm        Archetype = "form"
	ArchetypeMatrix      Archetype = "matrix"
	ArchetypeMultiSelect Archetype = "multiselect"
	ArchetypeDrillDown   Archetype = "drilldown"
)

// RuleContext is the input a classification rule sees: the group's
// shape, the declared type from the definition file (when present), and
// a sampler over the group's cell values.
type RuleContext struct {
	Group *Group

	// Declared reports an explicit question type for a base id, from
	// the survey definition. May be nil.
	Declared func(base string) (Archetype, bool)

	// Values returns every non-empty cell value stored under a column
	// key, across all respondents. May be nil when no data is loaded.
	Values func(column string) []string
}

// Rule is one ordered classification rule: the first rule that matches
// decides the archetype.
type Rule struct {
	Name  string
	Apply func(rc RuleContext) (Archetype, bool)
}

// Rules is the classifier's decision policy, evaluated top to bottom.
// The order encodes the tie-breaks: declared types beat inference,
// structural shape beats content sniffing, and matrix beats form when
// both could apply. Sub-indexed groups are always forms regardless of
// size or of how values repeat across respondents, so even a lone
// "Q9_1" column keeps its item label in the report.
var Rules = []Rule{
	{Name: "declared", Apply: ruleDeclared},
	{Name: "matrix", Apply: ruleMatrix},
	{Name: "form", Apply: ruleForm},
	{Name: "drilldown", Apply: ruleDrillDown},
	{Name: "multiselect", Apply: ruleMultiSelect},
	{Name: "single", Apply: ruleSingle},
}

// Classify assigns an archetype to every group. Deterministic for
// identical headers and metadata: rules inspect ordered slices only,
// never map iteration order.
func Classify(groups []*Group, declared func(string) (Archetype, bool), values func(string) []string) {
	for _, g := range groups {
		rc := RuleContext{Group: g, Declared: declared, Values: values}
		g.Archetype = ArchetypeSingle
		for _, r := range Rules {
			if a, ok := r.Apply(rc); ok {
				g.Archetype = a
				break
			}
		}
	}
}

func ruleDeclared(rc RuleContext) (Archetype, bool) {
	if rc.Declared == nil {
		return "", false
	}
	return rc.Declared(rc.Group.Base)
}

// ruleMatrix requires two-level sub-indices with at least two distinct
// values in each dimension. A two-level group with a degenerate
// dimension (e.g. one column of text entries per row) falls through to
// the form rule.
func ruleMatrix(rc RuleContext) (Archetype, bool) {
	g := rc.Group
	if len(g.RowKeys) >= 2 && len(g.ColKeys) >= 2 {
		return ArchetypeMatrix, true
	}
	return "", false
}

// ruleForm matches any group whose keys carry index structure the
// matrix rule declined: one-level items, or two-level keys with a
// degenerate dimension. Group size is irrelevant; a single sub-indexed
// column is a one-item form, not a bare single answer.
func ruleForm(rc RuleContext) (Archetype, bool) {
	g := rc.Group
	if len(g.ItemKeys) > 0 || len(g.RowKeys) > 0 {
		return ArchetypeForm, true
	}
	return "", false
}

var drillSeparators = []string{" >> ", " → ", " > "}

func ruleDrillDown(rc RuleContext) (Archetype, bool) {
	if !isSingleColumn(rc.Group) {
		return "", false
	}
	for _, v := range sampleValues(rc) {
		for _, sep := range drillSeparators {
			if strings.Contains(v, sep) {
				return ArchetypeDrillDown, true
			}
		}
	}
	return "", false
}

func ruleMultiSelect(rc RuleContext) (Archetype, bool) {
	if !isSingleColumn(rc.Group) {
		return "", false
	}
	for _, v := range sampleValues(rc) {
		if isCommaList(v) {
			return ArchetypeMultiSelect, true
		}
	}
	return "", false
}

func ruleSingle(rc RuleContext) (Archetype, bool) {
	if isSingleColumn(rc.Group) {
		return ArchetypeSingle, true
	}
	// Several columns but no index structure at all; render as a form
	// of raw headers rather than losing columns.
	return ArchetypeForm, true
}

func isSingleColumn(g *Group) bool {
	return len(g.AnswerKeys()) == 1
}

func sampleValues(rc RuleContext) []string {
	if rc.Values == nil {
		return nil
	}
	keys := rc.Group.AnswerKeys()
	if len(keys) == 0 {
		return nil
	}
	return rc.Values(keys[0].Raw)
}

var coordinateLike = regexp.MustCompile(`^\(?\d+\.?\d*\s*,\s*\d+\.?\d*\)?$`)

// isCommaList distinguishes a genuine multi-value answer from a
// coordinate pair or a string of numeric selection codes.
func isCommaList(val string) bool {
	if !strings.Contains(val, ",") || coordinateLike.MatchString(strings.TrimSpace(val)) {
		return false
	}
	parts := strings.Split(val, ",")
	significant := 0
	allCodes := true
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		significant++
		if !isDigits(p) || len(p) > 3 {
			allCodes = false
		}
	}
	return significant >= 2 && !allCodes
}

// SplitValues splits a multi-select or drill-down value into its
// ordered segments. Order is preserved; empty segments are dropped.
func SplitValues(val string, archetype Archetype) []string {
	sep := ","
	if archetype == ArchetypeDrillDown {
		sep = " > "
		for _, s := range drillSeparators {
			if strings.Contains(val, s) {
				sep = s
				break
			}
		}
	}
	var out []string
	for _, p := range strings.Split(val, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
