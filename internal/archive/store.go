// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps a SQLite history of conversion results so earlier
// outputs and their total scores can be listed and exported.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/xml2json/pkg/types"
)

// DefaultPath is the archive database the history command reads when no
// --archive flag is given.
const DefaultPath = "xml2json.db"

// Store manages the archive database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive at path, creating parent directories and
// the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			digest TEXT NOT NULL,
			root_tag TEXT NOT NULL,
			total_score TEXT NOT NULL,
			json TEXT NOT NULL,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_digest ON conversions(digest)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_source ON conversions(source)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores rec and returns its row ID.
func (s *Store) Save(ctx context.Context, rec types.ConversionRecord) (int64, error) {
	if rec.ConvertedAt.IsZero() {
		rec.ConvertedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (source, digest, root_tag, total_score, json, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Source, rec.Digest, rec.RootTag, rec.TotalScore, rec.JSON,
		rec.ConvertedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting conversion: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading conversion id: %w", err)
	}
	return id, nil
}

// QueryOptions filters List.
type QueryOptions struct {
	// Source restricts results to one input name.
	Source string

	// Digest restricts results to one input hash.
	Digest string

	// Limit caps the number of records (default 20).
	Limit int
}

// List returns archived conversions, newest first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.ConversionRecord, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, source, digest, root_tag, total_score, json, converted_at FROM conversions WHERE 1=1`
	var args []any
	if opts.Source != "" {
		query += ` AND source = ?`
		args = append(args, opts.Source)
	}
	if opts.Digest != "" {
		query += ` AND digest = ?`
		args = append(args, opts.Digest)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var out []types.ConversionRecord
	for rows.Next() {
		var (
			rec types.ConversionRecord
			ts  string
		)
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Digest, &rec.RootTag, &rec.TotalScore, &rec.JSON, &ts); err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		rec.ConvertedAt, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
