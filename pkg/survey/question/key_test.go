package question

import (
	"reflect"
	"testing"
)

func TestParseColumnKey(t *testing.T) {
	tests := []struct {
		header string
		base   string
		sub    []string
		text   bool
	}{
		{"Q1", "Q1", nil, false},
		{"Q2_3", "Q2", []string{"3"}, false},
		{"Q4_1_2", "Q4", []string{"1", "2"}, false},
		{"Q5_TEXT", "Q5", nil, true},
		{"Q6_2_TEXT", "Q6", []string{"2"}, true},
		{"Q7_1_4_TEXT", "Q7", []string{"1", "4"}, true},
		{"StartDate", "StartDate", nil, false},
		{"Q10_a", "Q10_a", nil, false},             // non-numeric segment stays in base
		{"Q11_1_2_3", "Q11_1", []string{"2", "3"}, false}, // at most two levels peel off
		{"", "", nil, false},
	}
	for _, tt := range tests {
		got := ParseColumnKey(tt.header)
		if got.Base != tt.base || !reflect.DeepEqual(got.Sub, tt.sub) || got.TextField != tt.text {
			t.Errorf("ParseColumnKey(%q) = {base:%q sub:%v text:%v}, want {base:%q sub:%v text:%v}",
				tt.header, got.Base, got.Sub, got.TextField, tt.base, tt.sub, tt.text)
		}
		if got.Raw != tt.header {
			t.Errorf("ParseColumnKey(%q).Raw = %q", tt.header, got.Raw)
		}
	}
}

func TestSortSubKeys(t *testing.T) {
	keys := []string{"10", "b", "2", "A", "1"}
	SortSubKeys(keys)
	want := []string{"1", "2", "10", "A", "b"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("SortSubKeys = %v, want %v", keys, want)
	}
}

func TestGroupColumns(t *testing.T) {
	headers := []string{"Q1", "Q2_1", "Q2_2", "Q3_1_1", "Q3_1_2", "Q3_2_1", "Q3_2_2", "Q2_2_TEXT", "StartDate"}
	groups := GroupColumns(headers)

	if len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(groups))
	}
	// Encounter order across groups.
	wantBases := []string{"Q1", "Q2", "Q3", "StartDate"}
	for i, g := range groups {
		if g.Base != wantBases[i] {
			t.Errorf("group[%d].Base = %q, want %q", i, g.Base, wantBases[i])
		}
	}

	q2 := groups[1]
	if len(q2.Keys) != 3 {
		t.Errorf("Q2 keys = %d, want 3 (incl. _TEXT)", len(q2.Keys))
	}
	if len(q2.AnswerKeys()) != 2 || len(q2.TextKeys()) != 1 {
		t.Errorf("Q2 answer/text split = %d/%d", len(q2.AnswerKeys()), len(q2.TextKeys()))
	}
	if !reflect.DeepEqual(q2.ItemKeys, []string{"1", "2"}) {
		t.Errorf("Q2.ItemKeys = %v", q2.ItemKeys)
	}

	q3 := groups[2]
	if !reflect.DeepEqual(q3.RowKeys, []string{"1", "2"}) || !reflect.DeepEqual(q3.ColKeys, []string{"1", "2"}) {
		t.Errorf("Q3 dims = rows %v cols %v", q3.RowKeys, q3.ColKeys)
	}
	if k, ok := q3.MatrixCell("2", "1"); !ok || k.Raw != "Q3_2_1" {
		t.Errorf("MatrixCell(2,1) = %v, %v", k, ok)
	}
	if _, ok := q3.MatrixCell("3", "1"); ok {
		t.Error("MatrixCell(3,1) should be absent")
	}
}

func TestGroupColumnsNothingDropped(t *testing.T) {
	headers := []string{"weird header!", "Q1_x_y", "__", "Q1_x_y"}
	groups := GroupColumns(headers)
	total := 0
	for _, g := range groups {
		total += len(g.Keys)
	}
	if total != len(headers) {
		t.Errorf("grouped %d keys from %d headers", total, len(headers))
	}
}
