package baseline

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Store persists one baseline snapshot per instrument in a single SQLite
// database file.
type Store struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the baseline store at the specified directory.
// If CreateIfNotExists is false and the database doesn't exist, an error is
// returned instead of creating a new file.
func Open(dbDir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dbDir, "booklet.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("baseline database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw refuses to create a new
	// file, mode=rwc allows it.
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

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	store := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := store.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the path of the underlying database file.
func (s *Store) Path() string {
	return s.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- One row per published image identifier per instrument
	CREATE TABLE IF NOT EXISTS baselines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		instrument TEXT NOT NULL,
		identifier TEXT NOT NULL,
		recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(instrument, identifier)
	);

	CREATE INDEX IF NOT EXISTS idx_baselines_instrument ON baselines(instrument);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Load returns the recorded snapshot for an instrument, or nil when no
// baseline has been recorded for it.
func (s *Store) Load(ctx context.Context, instrument string) (*Snapshot, error) {
	query := `
	SELECT identifier FROM baselines
	WHERE instrument = ?
	ORDER BY identifier
	`

	rows, err := s.db.QueryContext(ctx, query, instrument)
	if err != nil {
		return nil, fmt.Errorf("failed to load baseline for %s: %w", instrument, err)
	}
	defer rows.Close()

	var identifiers []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan identifier: %w", err)
		}
		identifiers = append(identifiers, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load baseline for %s: %w", instrument, err)
	}

	if len(identifiers) == 0 {
		return nil, nil
	}
	return NewSnapshot(identifiers...), nil
}

// Replace records the given identifiers as the instrument's baseline,
// discarding any previously recorded snapshot. The swap is transactional;
// a failed replace leaves the old snapshot intact.
func (s *Store) Replace(ctx context.Context, instrument string, identifiers []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM baselines WHERE instrument = ?", instrument); err != nil {
		return fmt.Errorf("failed to clear baseline for %s: %w", instrument, err)
	}

	insert := "INSERT INTO baselines (instrument, identifier) VALUES (?, ?)"
	for _, id := range identifiers {
		if _, err := tx.ExecContext(ctx, insert, instrument, id); err != nil {
			return fmt.Errorf("failed to record identifier %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit baseline for %s: %w", instrument, err)
	}
	return nil
}

// Instruments returns the instruments that have a recorded baseline, sorted
// by key.
func (s *Store) Instruments(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT instrument FROM baselines
	ORDER BY instrument
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	defer rows.Close()

	var instruments []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan instrument: %w", err)
		}
		instruments = append(instruments, key)
	}
	return instruments, rows.Err()
}
