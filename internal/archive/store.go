// Package archive persists the results of completed evolutionary runs so
// they can be listed, inspected, and exported later. A run itself is an
// in-memory process; only its finished log ever reaches a store.
package archive

import (
	"context"

	"mendel/internal/model"
)

// Store defines persistence operations for archived run results.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run model.RunRecord) error
	GetRun(ctx context.Context, runID string) (model.RunRecord, bool, error)
	ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error)
	LatestRunID(ctx context.Context) (string, bool, error)
	SaveFitnessHistory(ctx context.Context, runID string, history []float64) error
	GetFitnessHistory(ctx context.Context, runID string) ([]float64, bool, error)
	SaveDiagnostics(ctx context.Context, runID string, diagnostics []model.GenerationDiagnostics) error
	GetDiagnostics(ctx context.Context, runID string) ([]model.GenerationDiagnostics, bool, error)
	SaveHallOfFame(ctx context.Context, runID string, entries []model.HallOfFameEntry) error
	GetHallOfFame(ctx context.Context, runID string) ([]model.HallOfFameEntry, bool, error)
}
