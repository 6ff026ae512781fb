//go:build sqlite

package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"mendel/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore archives runs in a SQLite database file. Payloads are stored
// as versioned JSON blobs; the run table carries the columns run listings
// query directly.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run model.RunRecord) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeRun(run)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (run_id, created_at_utc, problem, best_fitness, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			created_at_utc = excluded.created_at_utc,
			problem = excluded.problem,
			best_fitness = excluded.best_fitness,
			payload = excluded.payload
	`, run.RunID, run.CreatedAtUTC, run.Problem, run.BestFitness, payload)
	return err
}

func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (model.RunRecord, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return model.RunRecord{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM runs WHERE run_id = ?`, runID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RunRecord{}, false, nil
		}
		return model.RunRecord{}, false, err
	}

	run, err := DecodeRun(payload)
	if err != nil {
		return model.RunRecord{}, false, fmt.Errorf("decode run %s: %w", runID, err)
	}
	return run, true, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	query := `SELECT payload FROM runs ORDER BY created_at_utc DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RunRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		run, err := DecodeRun(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) LatestRunID(ctx context.Context) (string, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return "", false, err
	}

	var runID string
	err = db.QueryRowContext(ctx, `SELECT run_id FROM runs ORDER BY created_at_utc DESC, rowid DESC LIMIT 1`).Scan(&runID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return runID, true, nil
}

func (s *SQLiteStore) SaveFitnessHistory(ctx context.Context, runID string, history []float64) error {
	payload, err := EncodeFitnessHistory(history)
	if err != nil {
		return err
	}
	return s.savePayload(ctx, "fitness_history", runID, payload)
}

func (s *SQLiteStore) GetFitnessHistory(ctx context.Context, runID string) ([]float64, bool, error) {
	payload, ok, err := s.getPayload(ctx, "fitness_history", runID)
	if err != nil || !ok {
		return nil, ok, err
	}
	history, err := DecodeFitnessHistory(payload)
	if err != nil {
		return nil, false, fmt.Errorf("decode fitness history %s: %w", runID, err)
	}
	return history, true, nil
}

func (s *SQLiteStore) SaveDiagnostics(ctx context.Context, runID string, diagnostics []model.GenerationDiagnostics) error {
	payload, err := EncodeDiagnostics(diagnostics)
	if err != nil {
		return err
	}
	return s.savePayload(ctx, "diagnostics", runID, payload)
}

func (s *SQLiteStore) GetDiagnostics(ctx context.Context, runID string) ([]model.GenerationDiagnostics, bool, error) {
	payload, ok, err := s.getPayload(ctx, "diagnostics", runID)
	if err != nil || !ok {
		return nil, ok, err
	}
	diagnostics, err := DecodeDiagnostics(payload)
	if err != nil {
		return nil, false, fmt.Errorf("decode diagnostics %s: %w", runID, err)
	}
	return diagnostics, true, nil
}

func (s *SQLiteStore) SaveHallOfFame(ctx context.Context, runID string, entries []model.HallOfFameEntry) error {
	payload, err := EncodeHallOfFame(entries)
	if err != nil {
		return err
	}
	return s.savePayload(ctx, "hall_of_fame", runID, payload)
}

func (s *SQLiteStore) GetHallOfFame(ctx context.Context, runID string) ([]model.HallOfFameEntry, bool, error) {
	payload, ok, err := s.getPayload(ctx, "hall_of_fame", runID)
	if err != nil || !ok {
		return nil, ok, err
	}
	entries, err := DecodeHallOfFame(payload)
	if err != nil {
		return nil, false, fmt.Errorf("decode hall of fame %s: %w", runID, err)
	}
	return entries, true, nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) savePayload(ctx context.Context, kind, runID string, payload []byte) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO run_artifacts (run_id, kind, payload)
		VALUES (?, ?, ?)
		ON CONFLICT(run_id, kind) DO UPDATE SET payload = excluded.payload
	`, runID, kind, payload)
	return err
}

func (s *SQLiteStore) getPayload(ctx context.Context, kind, runID string) ([]byte, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, false, err
	}
	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM run_artifacts WHERE run_id = ? AND kind = ?`, runID, kind).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			created_at_utc TEXT NOT NULL,
			problem TEXT NOT NULL,
			best_fitness REAL NOT NULL,
			payload BLOB NOT NULL
		);
		CREATE TABLE IF NOT EXISTS run_artifacts (
			run_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			payload BLOB NOT NULL,
			PRIMARY KEY (run_id, kind)
		);
	`)
	return err
}
