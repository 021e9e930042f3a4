package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/cycletrack/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	path    string
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore prepares a SQLite database handle for path. The file is not
// created until the first Save.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return &SQLiteStore{
		path:    dbPath,
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS cycles (
		id         TEXT PRIMARY KEY,
		start_date TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS symptoms (
		id       TEXT PRIMARY KEY,
		log_date TEXT NOT NULL UNIQUE,
		flow     TEXT NOT NULL DEFAULT '',
		mood     TEXT NOT NULL DEFAULT '',
		tags     TEXT NOT NULL DEFAULT '[]',
		notes    TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO meta (key, value) VALUES ('format_version', ?)`, FormatVersion)
	return err
}

func (s *SQLiteStore) Load(ctx context.Context) (*Snapshot, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoData
		}
		return nil, &ReadError{Path: s.path, Err: err}
	}
	snap, err := s.load(ctx)
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	return snap, nil
}

func (s *SQLiteStore) load(ctx context.Context) (*Snapshot, error) {
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var version int
	if err := s.db.QueryRowContext(ctx,
		`SELECT CAST(value AS INTEGER) FROM meta WHERE key = 'format_version'`).Scan(&version); err != nil {
		return nil, fmt.Errorf("read format version: %w", err)
	}
	if version > FormatVersion {
		return nil, fmt.Errorf("unsupported format version %d (max %d)", version, FormatVersion)
	}

	snap := &Snapshot{
		Cycles:   []model.Date{},
		Symptoms: map[model.Date]model.SymptomRecord{},
	}

	rows, err := s.db.QueryContext(ctx, `SELECT start_date FROM cycles ORDER BY start_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		d, err := model.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("cycle start: %w", err)
		}
		snap.Cycles = append(snap.Cycles, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// ISO dates sort lexically, but re-sort in case rows were edited by hand.
	slices.SortFunc(snap.Cycles, model.Date.Compare)

	srows, err := s.db.QueryContext(ctx, `SELECT log_date, flow, mood, tags, notes FROM symptoms`)
	if err != nil {
		return nil, err
	}
	defer srows.Close()
	for srows.Next() {
		d, rec, err := scanRecord(srows)
		if err != nil {
			return nil, err
		}
		snap.Symptoms[d] = rec
	}
	return snap, srows.Err()
}

// Save replaces every row in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, snap *Snapshot) error {
	if err := s.save(ctx, snap); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLiteStore) save(ctx context.Context, snap *Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	if err := s.migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cycles`); err != nil {
		return fmt.Errorf("clear cycles: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM symptoms`); err != nil {
		return fmt.Errorf("clear symptoms: %w", err)
	}

	if snap != nil {
		for _, d := range snap.Cycles {
			_, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO cycles (id, start_date) VALUES (?, ?)`, s.newID(), d.String())
			if err != nil {
				return fmt.Errorf("insert cycle: %w", err)
			}
		}
		for d, rec := range snap.Symptoms {
			tags := rec.Symptoms
			if tags == nil {
				tags = []string{}
			}
			tagsJSON, err := json.Marshal(tags)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO symptoms (id, log_date, flow, mood, tags, notes) VALUES (?, ?, ?, ?, ?, ?)`,
				s.newID(), d.String(), rec.Flow, rec.Mood, string(tagsJSON), rec.Notes)
			if err != nil {
				return fmt.Errorf("insert symptoms: %w", err)
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (model.Date, model.SymptomRecord, error) {
	var rec model.SymptomRecord
	var rawDate, tagsJSON string

	if err := row.Scan(&rawDate, &rec.Flow, &rec.Mood, &tagsJSON, &rec.Notes); err != nil {
		return model.Date{}, rec, err
	}
	d, err := model.ParseDate(rawDate)
	if err != nil {
		return model.Date{}, rec, fmt.Errorf("symptom date: %w", err)
	}
	if err := json.Unmarshal([]byte(tagsJSON), &rec.Symptoms); err != nil {
		return model.Date{}, rec, fmt.Errorf("symptom tags for %s: %w", rawDate, err)
	}
	if rec.Symptoms == nil {
		rec.Symptoms = []string{}
	}
	return d, rec, nil
}
