package audit

import (
	"context"
	"fmt"
	"time"
)

// Logger is the interface the pipeline logs through.
type Logger interface {
	Log(ctx context.Context, entry *Entry) error
	LogSuccess(ctx context.Context, operation Operation) *Entry
	LogFailure(ctx context.Context, operation Operation, err error) *Entry
	Close() error
}

// AuditLogger writes synchronously to its appenders. The generator is
// a short-lived batch run with a handful of entries per invocation, so
// there is nothing to buffer.
type AuditLogger struct {
	appenders []Appender
	onError   func(error)
}

// LoggerConfig configures an AuditLogger.
type LoggerConfig struct {
	// OnError is called when an appender fails. Logging failures never
	// abort the run.
	OnError func(error)
}

func NewLogger(config LoggerConfig, appenders ...Appender) *AuditLogger {
	return &AuditLogger{
		appenders: appenders,
		onError:   config.OnError,
	}
}

// Log writes the entry to every appender. The first appender error is
// returned after all appenders have been tried.
func (l *AuditLogger) Log(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("entry is nil")
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.ID == "" {
		entry.ID = generateID()
	}

	var firstErr error
	for _, appender := range l.appenders {
		if err := appender.Append(ctx, entry); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			l.handleError(fmt.Errorf("appender failed: %w", err))
		}
	}
	return firstErr
}

func (l *AuditLogger) LogSuccess(ctx context.Context, operation Operation) *Entry {
	entry := NewEntry(operation, StatusSuccess)
	if err := l.Log(ctx, entry); err != nil {
		l.handleError(err)
	}
	return entry
}

func (l *AuditLogger) LogFailure(ctx context.Context, operation Operation, err error) *Entry {
	entry := NewEntry(operation, StatusFailure).WithError(err)
	if logErr := l.Log(ctx, entry); logErr != nil {
		l.handleError(logErr)
	}
	return entry
}

func (l *AuditLogger) Close() error {
	var firstErr error
	for _, appender := range l.appenders {
		if err := appender.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (l *AuditLogger) AddAppender(appender Appender) {
	l.appenders = append(l.appenders, appender)
}

func (l *AuditLogger) handleError(err error) {
	if l.onError != nil {
		l.onError(err)
	}
}

// NullLogger discards everything. The CLI uses it when --log is off.
type NullLogger struct{}

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (nl *NullLogger) Log(ctx context.Context, entry *Entry) error {
	return nil
}

func (nl *NullLogger) LogSuccess(ctx context.Context, operation Operation) *Entry {
	return NewEntry(operation, StatusSuccess)
}

func (nl *NullLogger) LogFailure(ctx context.Context, operation Operation, err error) *Entry {
	return NewEntry(operation, StatusFailure).WithError(err)
}

func (nl *NullLogger) Close() error {
	return nil
}
