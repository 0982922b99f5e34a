// Package sqlitestorage imports converted entries into the dictionary
// application's SQLite database: one wordform row per entry, plus an
// import_runs row recording the batch.
package sqlitestorage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/altlab/munge"
	"github.com/altlab/munge/service"
	_ "github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

func Open(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	storage := &Storage{db: db}
	if err := storage.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	return storage, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) createTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS wordforms (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			pos TEXT NOT NULL,
			stem TEXT,
			raw_analysis TEXT,
			paradigm TEXT,
			ok BOOLEAN NOT NULL,
			senses TEXT NOT NULL,
			run_id TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS import_runs (
			id TEXT PRIMARY KEY,
			imported_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			ok_count INTEGER NOT NULL,
			not_ok_count INTEGER NOT NULL,
			skipped_count INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = s.db.Exec("CREATE INDEX IF NOT EXISTS idx_wordforms_text ON wordforms (text)")

	return err
}

// ImportRun writes one conversion run in a single transaction. Re-importing
// a slug replaces the previous row.
func (s *Storage) ImportRun(ctx context.Context, stats service.Stats, entries []munge.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO import_runs (id, ok_count, not_ok_count, skipped_count)
		VALUES (?, ?, ?, ?)
	`, stats.RunID, stats.OK, stats.NotOK, stats.Skipped)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO wordforms (text, slug, pos, stem, raw_analysis, paradigm, ok, senses, run_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range entries {
		entry := &entries[i]

		var rawAnalysis, paradigm sql.NullString
		if entry.Analysis != nil {
			data, err := json.Marshal(entry.Analysis)
			if err != nil {
				return fmt.Errorf("entry %s: %w", entry.Slug, err)
			}
			rawAnalysis = sql.NullString{String: string(data), Valid: true}
		}
		if entry.Paradigm != nil {
			paradigm = sql.NullString{String: string(*entry.Paradigm), Valid: true}
		}

		senses, err := json.Marshal(entry.Senses)
		if err != nil {
			return fmt.Errorf("entry %s: %w", entry.Slug, err)
		}

		_, err = stmt.ExecContext(ctx,
			entry.Head, entry.Slug, entry.LinguistInfo.POS, entry.LinguistInfo.Stem,
			rawAnalysis, paradigm, entry.OK, string(senses), stats.RunID,
		)
		if err != nil {
			return fmt.Errorf("entry %s: %w", entry.Slug, err)
		}
	}

	return tx.Commit()
}

func (s *Storage) EntryCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM wordforms").Scan(&count)

	return count, err
}

// FindSlug reads one wordform row back, mainly for verification after an
// import.
func (s *Storage) FindSlug(ctx context.Context, slug string) (*munge.Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT text, slug, pos, stem, raw_analysis, paradigm, ok, senses
		FROM wordforms WHERE slug = ?
	`, slug)

	entry := munge.Entry{}
	var stem, rawAnalysis, paradigm sql.NullString
	var senses string

	err := row.Scan(&entry.Head, &entry.Slug, &entry.LinguistInfo.POS, &stem,
		&rawAnalysis, &paradigm, &entry.OK, &senses)
	if err == sql.ErrNoRows {
		return nil, munge.ErrEntryNotFound
	} else if err != nil {
		return nil, err
	}

	entry.LinguistInfo.Stem = stem.String
	if rawAnalysis.Valid {
		analysis := munge.Analysis{}
		if err := json.Unmarshal([]byte(rawAnalysis.String), &analysis); err != nil {
			return nil, err
		}

		entry.Analysis = &analysis
		entry.LinguistInfo.Analysis = analysis.Smush()
	}
	if paradigm.Valid {
		p := munge.Paradigm(paradigm.String)
		entry.Paradigm = &p
	}
	if err := json.Unmarshal([]byte(senses), &entry.Senses); err != nil {
		return nil, err
	}

	return &entry, nil
}
