// Package audit records what the report generator did with which
// input: every pipeline stage appends one entry carrying the input
// fingerprint, so a generated report can be traced back to the exact
// bytes it was built from.
package audit

import (
	"encoding/json"
	"fmt"
	"time"
)

// Level controls how much detail an appender keeps.
type Level int

const (
	// LevelMinimal keeps operation, status and timing only.
	LevelMinimal Level = iota

	// LevelStandard adds source, output and counters.
	LevelStandard

	// LevelFull keeps everything including metadata.
	LevelFull
)

func (l Level) String() string {
	switch l {
	case LevelMinimal:
		return "minimal"
	case LevelStandard:
		return "standard"
	case LevelFull:
		return "full"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}

// ParseLevel maps a config string to a Level. Unknown values fall back
// to standard.
func ParseLevel(s string) Level {
	switch s {
	case "minimal":
		return LevelMinimal
	case "full":
		return LevelFull
	default:
		return LevelStandard
	}
}

// Operation names one pipeline stage.
type Operation string

const (
	OpLoad            Operation = "load"
	OpParseDefinition Operation = "parse-definition"
	OpClassify        Operation = "classify"
	OpRender          Operation = "render"
	OpWrite           Operation = "write"
	OpConvert         Operation = "convert"
)

// Status is the outcome of a stage.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusPartial Status = "partial"
)

// Entry is one audit record.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operation Operation `json:"operation"`
	Status    Status    `json:"status"`

	// Source is the input file; Output the produced file, when the
	// stage writes one.
	Source string `json:"source,omitempty"`
	Output string `json:"output,omitempty"`

	// Fingerprint is the xxh3 hash of the raw input bytes.
	Fingerprint string `json:"fingerprint,omitempty"`

	// Records counts respondents, Questions rendered question blocks.
	Records   int `json:"records,omitempty"`
	Questions int `json:"questions,omitempty"`

	Duration     time.Duration  `json:"duration,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// NewEntry creates an entry stamped with the current time.
func NewEntry(operation Operation, status Status) *Entry {
	return &Entry{
		ID:        generateID(),
		Timestamp: time.Now(),
		Operation: operation,
		Status:    status,
	}
}

func (e *Entry) WithSource(source string) *Entry {
	e.Source = source
	return e
}

func (e *Entry) WithOutput(output string) *Entry {
	e.Output = output
	return e
}

func (e *Entry) WithFingerprint(fp string) *Entry {
	e.Fingerprint = fp
	return e
}

func (e *Entry) WithRecords(n int) *Entry {
	e.Records = n
	return e
}

func (e *Entry) WithQuestions(n int) *Entry {
	e.Questions = n
	return e
}

func (e *Entry) WithDuration(d time.Duration) *Entry {
	e.Duration = d
	return e
}

// WithError records the error and flips the status to failure.
func (e *Entry) WithError(err error) *Entry {
	if err != nil {
		e.ErrorMessage = err.Error()
		e.Status = StatusFailure
	}
	return e
}

func (e *Entry) WithMetadata(key string, value any) *Entry {
	if e.Metadata == nil {
		e.Metadata = make(map[string]any)
	}
	e.Metadata[key] = value
	return e
}

func (e *Entry) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func (e *Entry) String() string {
	return fmt.Sprintf("[%s] %s %s (source=%s, records=%d, duration=%v)",
		e.Timestamp.Format(time.RFC3339),
		e.Operation,
		e.Status,
		e.Source,
		e.Records,
		e.Duration,
	)
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	clone := *e
	if e.Metadata != nil {
		clone.Metadata = make(map[string]any, len(e.Metadata))
		for k, v := range e.Metadata {
			clone.Metadata[k] = v
		}
	}
	return &clone
}

// FilterByLevel strips fields the configured level does not keep.
func (e *Entry) FilterByLevel(level Level) *Entry {
	filtered := e.Clone()
	switch level {
	case LevelMinimal:
		filtered.Source = ""
		filtered.Output = ""
		filtered.Fingerprint = ""
		filtered.Records = 0
		filtered.Questions = 0
		filtered.Metadata = nil
	case LevelStandard:
		filtered.Metadata = nil
	}
	return filtered
}

func generateID() string {
	return fmt.Sprintf("audit-%d-%d",
		time.Now().UnixNano(),
		time.Now().Unix()%1000,
	)
}
