package table

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `ResponseId,RecipientFirstName,RecipientLastName,RecipientEmail,ExternalReference,Q1,Q2_1,Q1_First Click
Response ID,First Name,Last Name,Email,External Reference,How satisfied are you?,Rate us - Speed,Timing
"{""ImportId"":""_recordId""}","{""ImportId"":""firstName""}","{""ImportId"":""lastName""}","{""ImportId"":""email""}","{""ImportId"":""ref""}","{""ImportId"":""QID1""}","{""ImportId"":""QID2_1""}","{""ImportId"":""t""}"
R_abc123,Alice,Smith,alice@example.com,,Very satisfied,5,1.2
R_def456,,,bob@example.com,,Not satisfied,3,0.8
R_ghi789,,,,EXT-77,Neutral,4,2.0
R_jkl012,,,,,,2,0.5
`

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	tbl, err := Load(writeTemp(t, "responses.csv", []byte(sampleCSV)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(tbl.Rows) != 4 {
		t.Fatalf("rows = %d, want 4 (text and import-id rows consumed)", len(tbl.Rows))
	}
	if tbl.Fingerprint == "" {
		t.Error("fingerprint not set")
	}
	if got := tbl.HeaderText("Q1"); got != "How satisfied are you?" {
		t.Errorf("HeaderText(Q1) = %q", got)
	}

	// Identity priority: name, then email, then reference, then id.
	wantNames := []string{"Alice Smith", "bob@example.com", "EXT-77", "R_jkl012"}
	for i, want := range wantNames {
		if tbl.Rows[i].Name != want {
			t.Errorf("row %d name = %q, want %q", i, tbl.Rows[i].Name, want)
		}
	}
}

func TestLoadBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("ResponseId,Q1\nR_1,yes\n")...)
	tbl, err := Load(writeTemp(t, "bom.csv", data))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tbl.Columns[0] != "ResponseId" {
		t.Errorf("first column = %q, BOM not stripped", tbl.Columns[0])
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0].Values["Q1"] != "yes" {
		t.Errorf("rows = %+v", tbl.Rows)
	}
}

func TestLoadRaggedRows(t *testing.T) {
	csvData := "ResponseId,Q1,Q2\nR_1,a,b,extra\nR_2,c\n"
	tbl, err := Load(writeTemp(t, "ragged.csv", []byte(csvData)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
	if tbl.Rows[0].Values["Q2"] != "b" {
		t.Errorf("truncated row Q2 = %q", tbl.Rows[0].Values["Q2"])
	}
	if tbl.Rows[1].Values["Q2"] != "" {
		t.Errorf("padded row Q2 = %q, want empty", tbl.Rows[1].Values["Q2"])
	}
	if len(tbl.Warnings) != 2 {
		t.Errorf("warnings = %v, want 2 entries", tbl.Warnings)
	}
}

func TestLoadGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte("ResponseId,Q1\nR_1,hello\n"))
	zw.Close()

	tbl, err := Load(writeTemp(t, "responses.csv.gz", buf.Bytes()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0].Values["Q1"] != "hello" {
		t.Errorf("rows = %+v", tbl.Rows)
	}
}

func TestLoadZstd(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	zw.Write([]byte("ResponseId,Q1\nR_1,world\n"))
	zw.Close()

	tbl, err := Load(writeTemp(t, "responses.csv.zst", buf.Bytes()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0].Values["Q1"] != "world" {
		t.Errorf("rows = %+v", tbl.Rows)
	}
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetSheetRow(sheet, "A1", &[]any{"ResponseId", "Q1"})
	f.SetSheetRow(sheet, "A2", &[]any{"R_1", "fine"})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	tbl, err := Load(writeTemp(t, "responses.xlsx", buf.Bytes()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0].Values["Q1"] != "fine" {
		t.Errorf("rows = %+v", tbl.Rows)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	if _, err := Load(writeTemp(t, "empty.csv", nil)); err == nil {
		t.Error("expected error for empty file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestQuestionColumns(t *testing.T) {
	tbl, err := Load(writeTemp(t, "responses.csv", []byte(sampleCSV)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got := tbl.QuestionColumns()
	want := []string{"Q1", "Q2_1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("QuestionColumns() = %v, want %v", got, want)
	}
}

func TestValues(t *testing.T) {
	tbl, err := Load(writeTemp(t, "responses.csv", []byte(sampleCSV)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got := tbl.Values("Q1")
	want := []string{"Very satisfied", "Not satisfied", "Neutral"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Values(Q1) = %v, want %v", got, want)
	}
	if !tbl.HasAnyValue([]string{"Q1"}) {
		t.Error("HasAnyValue(Q1) = false")
	}
	if tbl.HasAnyValue([]string{"Missing"}) {
		t.Error("HasAnyValue(Missing) = true")
	}
}

func TestSystemAndTimingColumns(t *testing.T) {
	if !IsSystemColumn("ResponseId") || !IsSystemColumn("Duration (in seconds)") {
		t.Error("system columns not recognized")
	}
	if IsSystemColumn("Q1") {
		t.Error("Q1 flagged as system column")
	}
	if !IsTimingColumn("Q3_Page Submit") || !IsTimingColumn("Q3_First Click") {
		t.Error("timing columns not recognized")
	}
	if IsTimingColumn("Q3_1") {
		t.Error("Q3_1 flagged as timing column")
	}
}
