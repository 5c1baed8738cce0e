package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/queuebridge/surveyview/pkg/audit"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `ResponseId,RecipientFirstName,RecipientLastName,Q1,Q2_1,Q2_2
Response ID,First Name,Last Name,How satisfied are you?,Rate us - Speed,Rate us - Quality
R_1,Alice,Smith,Very satisfied,5,4
R_2,,,Not satisfied,2,1
`

func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "responses.csv")
	output := filepath.Join(dir, "responses_report.html")
	if err := os.WriteFile(input, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	err := GenerateReport(context.Background(), audit.NewNullLogger(), ReportOptions{
		InputFile:  input,
		OutputFile: output,
		Title:      "Smoke Test",
	})
	if err != nil {
		t.Fatalf("GenerateReport() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	for _, want := range []string{"Smoke Test", "Alice Smith", "Very satisfied", "How satisfied are you?"} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestGenerateReportMissingInput(t *testing.T) {
	err := GenerateReport(context.Background(), audit.NewNullLogger(), ReportOptions{
		InputFile:  filepath.Join(t.TempDir(), "missing.csv"),
		OutputFile: filepath.Join(t.TempDir(), "out.html"),
	})
	if err == nil {
		t.Error("expected error for missing input")
	}
}

func TestGenerateReportWithAudit(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "responses.csv")
	output := filepath.Join(dir, "report.html")
	logPath := filepath.Join(dir, "audit.log")
	if err := os.WriteFile(input, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	appender, err := audit.NewFileAppender(audit.FileAppenderConfig{
		FilePath:   logPath,
		Level:      audit.LevelStandard,
		FormatJSON: true,
	})
	if err != nil {
		t.Fatalf("file appender: %v", err)
	}
	logger := audit.NewLogger(audit.LoggerConfig{}, appender)

	if err := GenerateReport(context.Background(), logger, ReportOptions{
		InputFile:  input,
		OutputFile: output,
	}); err != nil {
		t.Fatalf("GenerateReport() error = %v", err)
	}
	logger.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read audit log: %v", err)
	}
	content := string(data)
	for _, op := range []string{`"operation":"load"`, `"operation":"classify"`, `"operation":"render"`, `"operation":"write"`} {
		if !strings.Contains(content, op) {
			t.Errorf("audit log missing %s", op)
		}
	}
}

func TestConvertResponsesToXLSX(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "responses.csv")
	output := filepath.Join(dir, "responses.xlsx")
	if err := os.WriteFile(input, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	err := ConvertResponsesToXLSX(context.Background(), audit.NewNullLogger(), XLSXOptions{
		InputFile:  input,
		OutputFile: output,
		SheetName:  "Responses",
	})
	if err != nil {
		t.Fatalf("ConvertResponsesToXLSX() error = %v", err)
	}

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Responses")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	// Header plus two data rows; export header rows were consumed.
	if len(rows) != 3 {
		t.Fatalf("sheet rows = %d, want 3", len(rows))
	}
	if rows[0][0] != "ResponseId" {
		t.Errorf("header = %q", rows[0][0])
	}
	if rows[1][3] != "Very satisfied" {
		t.Errorf("first data row Q1 = %q", rows[1][3])
	}
}
