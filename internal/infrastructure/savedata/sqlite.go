package savedata

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps level records in a SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens the database at dbPath, creating parent
// directories and the schema as needed. A leading ~ expands to the home
// directory.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("savedata: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("savedata: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("savedata: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("savedata: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("savedata: migration failed: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS level_scores (
			level TEXT PRIMARY KEY,
			best_time REAL,
			best_stars INTEGER NOT NULL DEFAULT 0,
			total_stars INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Get(level string) (Record, error) {
	return s.get(s.db, level)
}

type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
}

func (s *SQLiteStore) get(q queryer, level string) (Record, error) {
	var (
		r    Record
		best sql.NullFloat64
	)
	err := q.QueryRow(
		"SELECT best_time, best_stars, total_stars FROM level_scores WHERE level = ?",
		level,
	).Scan(&best, &r.BestStars, &r.TotalStars)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("savedata: cannot read %s: %w", level, err)
	}
	if best.Valid {
		t := best.Float64
		r.BestTime = &t
	}
	return r, nil
}

// Update reads and merges the record inside one transaction
func (s *SQLiteStore) Update(level string, seconds float64, stars, total int) (Record, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return Record{}, fmt.Errorf("savedata: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := s.get(tx, level)
	if err != nil {
		return Record{}, err
	}
	r := Merge(current, seconds, stars, total)

	_, err = tx.Exec(`
		INSERT INTO level_scores (level, best_time, best_stars, total_stars, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(level) DO UPDATE SET
			best_time = excluded.best_time,
			best_stars = excluded.best_stars,
			total_stars = excluded.total_stars,
			updated_at = excluded.updated_at`,
		level, *r.BestTime, r.BestStars, r.TotalStars,
	)
	if err != nil {
		return Record{}, fmt.Errorf("savedata: cannot save %s: %w", level, err)
	}

	if err := tx.Commit(); err != nil {
		return Record{}, fmt.Errorf("savedata: cannot commit: %w", err)
	}
	return r, nil
}
