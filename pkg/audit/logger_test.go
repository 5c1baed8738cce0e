package audit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEntry_Builder(t *testing.T) {
	entry := NewEntry(OpRender, StatusSuccess).
		WithSource("responses.csv").
		WithOutput("responses_report.html").
		WithFingerprint("deadbeef").
		WithRecords(42).
		WithQuestions(7).
		WithDuration(500 * time.Millisecond).
		WithMetadata("key", "value")

	if entry.Source != "responses.csv" {
		t.Errorf("Expected source 'responses.csv', got '%s'", entry.Source)
	}
	if entry.Records != 42 || entry.Questions != 7 {
		t.Errorf("Expected 42/7, got %d/%d", entry.Records, entry.Questions)
	}
	if entry.Metadata["key"] != "value" {
		t.Error("Expected metadata key to be 'value'")
	}
}

func TestEntry_WithError(t *testing.T) {
	entry := NewEntry(OpLoad, StatusSuccess).WithError(errors.New("boom"))
	if entry.Status != StatusFailure {
		t.Errorf("Expected failure status, got %s", entry.Status)
	}
	if entry.ErrorMessage != "boom" {
		t.Errorf("Expected error message 'boom', got '%s'", entry.ErrorMessage)
	}
}

func TestEntry_FilterByLevel(t *testing.T) {
	entry := NewEntry(OpRender, StatusSuccess).
		WithSource("responses.csv").
		WithFingerprint("deadbeef").
		WithRecords(10).
		WithMetadata("rules", "matrix")

	minimal := entry.FilterByLevel(LevelMinimal)
	if minimal.Source != "" || minimal.Fingerprint != "" || minimal.Records != 0 {
		t.Error("Minimal level should drop source, fingerprint and counters")
	}
	if minimal.Operation != OpRender {
		t.Error("Minimal level should keep the operation")
	}

	standard := entry.FilterByLevel(LevelStandard)
	if standard.Metadata != nil {
		t.Error("Standard level should not include metadata")
	}
	if standard.Fingerprint == "" {
		t.Error("Standard level should include the fingerprint")
	}

	full := entry.FilterByLevel(LevelFull)
	if full.Metadata == nil {
		t.Error("Full level should include metadata")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"minimal", LevelMinimal},
		{"standard", LevelStandard},
		{"full", LevelFull},
		{"bogus", LevelStandard},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFileAppender_Write(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "audit.log")

	appender, err := NewFileAppender(FileAppenderConfig{
		FilePath:   filePath,
		MaxSize:    1,
		MaxBackups: 3,
		Level:      LevelStandard,
		FormatJSON: true,
	})
	if err != nil {
		t.Fatalf("Failed to create file appender: %v", err)
	}
	defer appender.Close()

	entry := NewEntry(OpLoad, StatusSuccess).
		WithSource("responses.csv").
		WithRecords(5)
	if err := appender.Append(context.Background(), entry); err != nil {
		t.Fatalf("Failed to append entry: %v", err)
	}
	appender.Flush()

	data, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}
	if !strings.Contains(string(data), `"operation":"load"`) {
		t.Errorf("Audit log missing operation: %s", data)
	}
	if !strings.Contains(string(data), "responses.csv") {
		t.Errorf("Audit log missing source: %s", data)
	}
}

func TestLogger_WritesToAppenders(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "audit.log")
	appender, err := NewFileAppender(FileAppenderConfig{
		FilePath: filePath,
		Level:    LevelFull,
	})
	if err != nil {
		t.Fatalf("Failed to create file appender: %v", err)
	}

	logger := NewLogger(LoggerConfig{}, appender)
	logger.LogSuccess(context.Background(), OpLoad)
	logger.LogFailure(context.Background(), OpRender, errors.New("render failed"))
	if err := logger.Close(); err != nil {
		t.Fatalf("Failed to close logger: %v", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "load") || !strings.Contains(content, "render failed") {
		t.Errorf("Audit log missing entries: %s", content)
	}
}

func TestLogger_NilEntry(t *testing.T) {
	logger := NewLogger(LoggerConfig{}, NewNullAppender())
	defer logger.Close()
	if err := logger.Log(context.Background(), nil); err == nil {
		t.Error("Expected error for nil entry")
	}
}

func TestSQLiteAppender(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")

	appender, err := NewSQLiteAppender(dbPath, LevelStandard)
	if err != nil {
		t.Fatalf("Failed to create sqlite appender: %v", err)
	}

	entry := NewEntry(OpWrite, StatusSuccess).
		WithSource("responses.csv").
		WithOutput("responses_report.html").
		WithFingerprint("cafebabe").
		WithRecords(12)
	if err := appender.Append(context.Background(), entry); err != nil {
		t.Fatalf("Failed to append entry: %v", err)
	}
	if err := appender.Close(); err != nil {
		t.Fatalf("Failed to close appender: %v", err)
	}

	// Reopen and verify the row landed.
	appender2, err := NewSQLiteAppender(dbPath, LevelStandard)
	if err != nil {
		t.Fatalf("Failed to reopen sqlite appender: %v", err)
	}
	defer appender2.Close()

	var count int
	row := appender2.db.QueryRow("SELECT COUNT(*) FROM audit_log WHERE fingerprint = ?", "cafebabe")
	if err := row.Scan(&count); err != nil {
		t.Fatalf("Failed to query audit table: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 audit row, got %d", count)
	}
}

func TestMultiAppender(t *testing.T) {
	path1 := filepath.Join(t.TempDir(), "a.log")
	path2 := filepath.Join(t.TempDir(), "b.log")

	a1, err := NewFileAppender(FileAppenderConfig{FilePath: path1, Level: LevelStandard})
	if err != nil {
		t.Fatalf("appender 1: %v", err)
	}
	a2, err := NewFileAppender(FileAppenderConfig{FilePath: path2, Level: LevelStandard})
	if err != nil {
		t.Fatalf("appender 2: %v", err)
	}

	multi := NewMultiAppender(a1, a2)
	if err := multi.Append(context.Background(), NewEntry(OpConvert, StatusSuccess)); err != nil {
		t.Fatalf("multi append: %v", err)
	}
	multi.Close()

	for _, p := range []string{path1, path2} {
		data, err := os.ReadFile(p)
		if err != nil || len(data) == 0 {
			t.Errorf("appender file %s empty or unreadable: %v", p, err)
		}
	}
}
