// seehuhn.de/go/badge - a procedural progress badge renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the SQLite database at the given path, creating the parent
// directory if needed.  If path is ":memory:", an in-memory database is
// used.  The schema is created automatically.
func OpenDB(path string) (*sqlx.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		// every new connection would see a fresh, empty database
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS checklist (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL CHECK(value IN ('0','1')),
		updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

func migrate(db *sqlx.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// SQLiteStore is a [Store] backed by a SQLite table.  Checked items are
// stored with the value "1", unchecked items with "0".
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore returns a store using the given database, which must
// have been opened with [OpenDB].
func NewSQLiteStore(db *sqlx.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get implements the [Store] interface.
func (s *SQLiteStore) Get(ctx context.Context, k Key) (bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM checklist WHERE key = ?`, k.String())
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("reading %s: %w", k, err)
	}
	return value == "1", nil
}

// Set implements the [Store] interface.
func (s *SQLiteStore) Set(ctx context.Context, k Key, checked bool) error {
	value := "0"
	if checked {
		value = "1"
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO checklist (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		k.String(), value)
	if err != nil {
		return fmt.Errorf("writing %s: %w", k, err)
	}
	return nil
}

// Clear implements the [Store] interface.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM checklist`); err != nil {
		return fmt.Errorf("clearing checklist: %w", err)
	}
	return nil
}
