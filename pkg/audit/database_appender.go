package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// DatabaseAppender writes entries to a SQL table, so audit history from
// many runs can be queried in one place.
type DatabaseAppender struct {
	db         *sql.DB
	tableName  string
	level      Level
	insertStmt *sql.Stmt
	ownsDB     bool
}

// DatabaseAppenderConfig configures a DatabaseAppender.
type DatabaseAppenderConfig struct {
	DB        *sql.DB
	TableName string
	Level     Level

	// AutoCreateTable creates the audit table when it does not exist.
	AutoCreateTable bool
}

// NewSQLiteAppender opens (or creates) a SQLite database file and
// builds an appender on it. The appender owns the connection and
// closes it on Close.
func NewSQLiteAppender(path string, level Level) (*DatabaseAppender, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}
	da, err := NewDatabaseAppender(DatabaseAppenderConfig{
		DB:              db,
		Level:           level,
		AutoCreateTable: true,
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	da.ownsDB = true
	return da, nil
}

func NewDatabaseAppender(config DatabaseAppenderConfig) (*DatabaseAppender, error) {
	if config.DB == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	if config.TableName == "" {
		config.TableName = "audit_log"
	}

	da := &DatabaseAppender{
		db:        config.DB,
		tableName: config.TableName,
		level:     config.Level,
	}

	if config.AutoCreateTable {
		if err := da.createTable(); err != nil {
			return nil, fmt.Errorf("failed to create audit table: %w", err)
		}
	}
	if err := da.prepareInsert(); err != nil {
		return nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	return da, nil
}

func (da *DatabaseAppender) createTable() error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			timestamp TIMESTAMP NOT NULL,
			operation TEXT NOT NULL,
			status TEXT NOT NULL,
			source TEXT,
			output TEXT,
			fingerprint TEXT,
			records INTEGER DEFAULT 0,
			questions INTEGER DEFAULT 0,
			duration_ms INTEGER DEFAULT 0,
			error_message TEXT,
			metadata TEXT
		)
	`, da.tableName)

	if _, err := da.db.Exec(query); err != nil {
		return err
	}

	indexes := []string{
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_timestamp ON %s(timestamp)", da.tableName, da.tableName),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_fingerprint ON %s(fingerprint)", da.tableName, da.tableName),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_operation ON %s(operation)", da.tableName, da.tableName),
	}
	for _, indexQuery := range indexes {
		if _, err := da.db.Exec(indexQuery); err != nil {
			continue
		}
	}
	return nil
}

func (da *DatabaseAppender) prepareInsert() error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, timestamp, operation, status, source, output,
			fingerprint, records, questions, duration_ms, error_message, metadata
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, da.tableName)

	stmt, err := da.db.Prepare(query)
	if err != nil {
		return err
	}
	da.insertStmt = stmt
	return nil
}

func (da *DatabaseAppender) Append(ctx context.Context, entry *Entry) error {
	filtered := entry.FilterByLevel(da.level)

	var metadata string
	if filtered.Metadata != nil {
		data, err := json.Marshal(filtered.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadata = string(data)
	}

	_, err := da.insertStmt.ExecContext(ctx,
		filtered.ID,
		filtered.Timestamp,
		string(filtered.Operation),
		string(filtered.Status),
		filtered.Source,
		filtered.Output,
		filtered.Fingerprint,
		filtered.Records,
		filtered.Questions,
		filtered.Duration.Milliseconds(),
		filtered.ErrorMessage,
		metadata,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

func (da *DatabaseAppender) Close() error {
	if da.insertStmt != nil {
		da.insertStmt.Close()
	}
	if da.ownsDB {
		return da.db.Close()
	}
	return nil
}
