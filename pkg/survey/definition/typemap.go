package definition

import (
	"encoding/json"

	"github.com/queuebridge/surveyview/pkg/survey/question"
)

// typeKey is the (QuestionType, Selector, SubSelector) triple a
// definition file declares per question.
type typeKey struct {
	Type        string
	Selector    string
	SubSelector string
}

type typeInfo struct {
	Archetype question.Archetype
	Display   bool
}

// typeMap covers the declared triples seen in real exports. Lookup
// falls back to a wildcard SubSelector, then to the bare type.
var typeMap = map[typeKey]typeInfo{
	{"MC", "SAVR", ""}:          {Archetype: question.ArchetypeSingle},
	{"MC", "SAHR", ""}:          {Archetype: question.ArchetypeSingle},
	{"MC", "DL", ""}:            {Archetype: question.ArchetypeSingle},
	{"MC", "SB", ""}:            {Archetype: question.ArchetypeSingle},
	{"MC", "MAVR", ""}:          {Archetype: question.ArchetypeMultiSelect},
	{"MC", "MAHR", ""}:          {Archetype: question.ArchetypeMultiSelect},
	{"MC", "MACOL", ""}:         {Archetype: question.ArchetypeMultiSelect},
	{"TE", "SL", ""}:            {Archetype: question.ArchetypeSingle},
	{"TE", "ML", ""}:            {Archetype: question.ArchetypeSingle},
	{"TE", "ESTB", ""}:          {Archetype: question.ArchetypeSingle},
	{"TE", "FORM", ""}:          {Archetype: question.ArchetypeForm},
	{"Matrix", "Likert", ""}:    {Archetype: question.ArchetypeMatrix},
	{"Matrix", "TE", ""}:        {Archetype: question.ArchetypeMatrix},
	{"Matrix", "Bipolar", ""}:   {Archetype: question.ArchetypeMatrix},
	{"Matrix", "RO", ""}:        {Archetype: question.ArchetypeMatrix},
	{"Matrix", "Profile", ""}:   {Archetype: question.ArchetypeMatrix},
	{"Matrix", "CS", ""}:        {Archetype: question.ArchetypeMatrix},
	{"Slider", "HSLIDER", ""}:   {Archetype: question.ArchetypeForm},
	{"Slider", "HBAR", ""}:      {Archetype: question.ArchetypeForm},
	{"Slider", "STAR", ""}:      {Archetype: question.ArchetypeForm},
	{"CS", "HSLIDER", ""}:       {Archetype: question.ArchetypeForm},
	{"RO", "DND", ""}:           {Archetype: question.ArchetypeForm},
	{"RO", "DL", ""}:            {Archetype: question.ArchetypeForm},
	{"RO", "SBS", ""}:           {Archetype: question.ArchetypeForm},
	{"DD", "DL", ""}:            {Archetype: question.ArchetypeDrillDown},
	{"PGR", "DragAndDrop", ""}:  {Archetype: question.ArchetypeForm},
	{"HotSpot", "OnOff", ""}:    {Archetype: question.ArchetypeForm},
	{"HeatMap", "HeatMap", ""}:  {Archetype: question.ArchetypeSingle},
	{"FileUpload", "FILE", ""}:  {Archetype: question.ArchetypeSingle},
	{"Meta", "Browser", ""}:     {Archetype: question.ArchetypeForm},
	{"SS", "TA", ""}:            {Archetype: question.ArchetypeForm},
	{"DB", "TB", ""}:            {Display: true},
	{"DB", "GRB", ""}:           {Display: true},
	{"Timing", "PageTimer", ""}: {Display: true},
	{"Captcha", "V2", ""}:       {Display: true},
}

// bareTypeMap catches triples whose selector the map does not know.
var bareTypeMap = map[string]typeInfo{
	"MC":     {Archetype: question.ArchetypeSingle},
	"TE":     {Archetype: question.ArchetypeSingle},
	"Matrix": {Archetype: question.ArchetypeMatrix},
	"DD":     {Archetype: question.ArchetypeDrillDown},
	"RO":     {Archetype: question.ArchetypeForm},
	"Slider": {Archetype: question.ArchetypeForm},
	"DB":     {Display: true},
	"Timing": {Display: true},
}

// resolveType maps a declared type triple to an archetype. Exact triple
// first, then the triple with SubSelector dropped, then the bare type.
// An unknown type yields no declaration and leaves the group to the
// structural classifier.
func resolveType(qtype, selector, subSelector string) (question.Archetype, bool) {
	if info, ok := typeMap[typeKey{qtype, selector, subSelector}]; ok {
		return info.Archetype, info.Display
	}
	if info, ok := typeMap[typeKey{qtype, selector, ""}]; ok {
		return info.Archetype, info.Display
	}
	if info, ok := bareTypeMap[qtype]; ok {
		return info.Archetype, info.Display
	}
	return "", false
}

// decodeLabels flattens the definition's choice/answer structures into
// id -> display label. Entries appear either as plain strings or as
// objects with a Display field; both forms occur in the wild, sometimes
// in the same document.
func decodeLabels(raw json.RawMessage, order []json.Number) (map[string]string, []string) {
	if len(raw) == 0 {
		return nil, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil || len(entries) == 0 {
		return nil, nil
	}

	labels := make(map[string]string, len(entries))
	for id, entry := range entries {
		var display struct {
			Display string `json:"Display"`
		}
		if err := json.Unmarshal(entry, &display); err == nil && display.Display != "" {
			labels[id] = CleanText(display.Display)
			continue
		}
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			labels[id] = CleanText(s)
		}
	}

	ordered := make([]string, 0, len(order))
	for _, n := range order {
		ordered = append(ordered, n.String())
	}
	return labels, ordered
}
