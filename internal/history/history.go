package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "devtools.db"

// DB provides SQLite-based storage for operation history and per-tool
// preferences. A single file holds both tables so that backup and
// restore stay a one-file affair.
type DB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures DB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. Recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the history database under dataDir.
// If CreateIfNotExists is false and the database doesn't exist, an
// error is returned.
func Open(dataDir string, opts Options) (*DB, error) {
	dbPath := filepath.Join(dataDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dataDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &DB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *DB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *DB) createTables() error {
	schema := `
	-- Operations form an append-only log of tool runs
	CREATE TABLE IF NOT EXISTS operations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tool TEXT NOT NULL,
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_operations_tool ON operations(tool);
	CREATE INDEX IF NOT EXISTS idx_operations_created ON operations(created_at);

	-- Preferences store the last-used settings of each tool as JSON
	CREATE TABLE IF NOT EXISTS preferences (
		tool TEXT PRIMARY KEY,
		settings TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// Operation represents one recorded tool run.
type Operation struct {
	ID        int64
	Tool      string
	Input     string
	Output    string
	CreatedAt time.Time
}

// RecordOperation appends one tool run to the log.
func (hdb *DB) RecordOperation(ctx context.Context, op *Operation) (int64, error) {
	query := `
	INSERT INTO operations (tool, input, output)
	VALUES (?, ?, ?)
	`

	result, err := hdb.db.ExecContext(ctx, query, op.Tool, op.Input, op.Output)
	if err != nil {
		return 0, fmt.Errorf("failed to record operation: %w", err)
	}

	return result.LastInsertId()
}

// ListOperations returns the most recent operations, newest first.
// An empty tool matches all tools; limit <= 0 means no limit.
func (hdb *DB) ListOperations(ctx context.Context, tool string, limit int) ([]Operation, error) {
	query := `
	SELECT id, tool, input, output, created_at
	FROM operations
	WHERE 1=1
	`
	args := make([]any, 0, 2)

	if tool != "" {
		query += " AND tool = ?"
		args = append(args, tool)
	}

	query += " ORDER BY id DESC"

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	defer rows.Close()

	var results []Operation
	for rows.Next() {
		var op Operation
		var createdAt string

		if err := rows.Scan(&op.ID, &op.Tool, &op.Input, &op.Output, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}

		op.CreatedAt = parseTimestamp(createdAt)
		results = append(results, op)
	}

	return results, rows.Err()
}

// ClearOperations deletes recorded operations and returns the number of
// rows removed. An empty tool clears all tools.
func (hdb *DB) ClearOperations(ctx context.Context, tool string) (int64, error) {
	query := "DELETE FROM operations"
	args := make([]any, 0, 1)

	if tool != "" {
		query += " WHERE tool = ?"
		args = append(args, tool)
	}

	result, err := hdb.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to clear operations: %w", err)
	}

	return result.RowsAffected()
}

// SavePreferences stores the settings of a tool, replacing any previous
// value. Settings are serialized as JSON so each tool keeps its own
// shape without schema migrations.
func (hdb *DB) SavePreferences(ctx context.Context, tool string, settings any) error {
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize preferences: %w", err)
	}

	query := `
	INSERT INTO preferences (tool, settings)
	VALUES (?, ?)
	ON CONFLICT(tool) DO UPDATE SET
		settings = excluded.settings,
		updated_at = CURRENT_TIMESTAMP
	`

	if _, err := hdb.db.ExecContext(ctx, query, tool, string(settingsJSON)); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	return nil
}

// LoadPreferences restores the settings of a tool into dst. It returns
// false with no error when the tool has no stored preferences.
func (hdb *DB) LoadPreferences(ctx context.Context, tool string, dst any) (bool, error) {
	query := `
	SELECT settings FROM preferences
	WHERE tool = ?
	`

	var settingsJSON string
	err := hdb.db.QueryRowContext(ctx, query, tool).Scan(&settingsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load preferences: %w", err)
	}

	if err := json.Unmarshal([]byte(settingsJSON), dst); err != nil {
		return false, fmt.Errorf("failed to parse preferences: %w", err)
	}

	return true, nil
}

// timestampFormats contains the timestamp formats that SQLite may
// return. The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple
// formats. SQLite may return timestamps in different formats depending
// on configuration. If parsing fails with all formats, returns zero
// time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
