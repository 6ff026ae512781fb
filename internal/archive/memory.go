package archive

import (
	"context"
	"sync"

	"mendel/internal/model"
)

// MemoryStore keeps archived runs in process memory. It is the default
// backend and the reference implementation for Store semantics.
type MemoryStore struct {
	mu          sync.RWMutex
	runs        map[string]model.RunRecord
	order       []string
	history     map[string][]float64
	diagnostics map[string][]model.GenerationDiagnostics
	hallOfFame  map[string][]model.HallOfFameEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = make(map[string]model.RunRecord)
	s.order = nil
	s.history = make(map[string][]float64)
	s.diagnostics = make(map[string][]model.GenerationDiagnostics)
	s.hallOfFame = make(map[string][]model.HallOfFameEntry)
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, run model.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[run.RunID]; !exists {
		s.order = append(s.order, run.RunID)
	}
	s.runs[run.RunID] = run
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, runID string) (model.RunRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[runID]
	return run, ok, nil
}

func (s *MemoryStore) ListRuns(_ context.Context, limit int) ([]model.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Newest first; insertion order tracks creation time.
	out := make([]model.RunRecord, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.runs[s.order[i]])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) LatestRunID(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return "", false, nil
	}
	return s.order[len(s.order)-1], true, nil
}

func (s *MemoryStore) SaveFitnessHistory(_ context.Context, runID string, history []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history[runID] = append([]float64(nil), history...)
	return nil
}

func (s *MemoryStore) GetFitnessHistory(_ context.Context, runID string) ([]float64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.history[runID]
	if !ok {
		return nil, false, nil
	}
	return append([]float64(nil), history...), true, nil
}

func (s *MemoryStore) SaveDiagnostics(_ context.Context, runID string, diagnostics []model.GenerationDiagnostics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]model.GenerationDiagnostics, len(diagnostics))
	copy(copied, diagnostics)
	s.diagnostics[runID] = copied
	return nil
}

func (s *MemoryStore) GetDiagnostics(_ context.Context, runID string) ([]model.GenerationDiagnostics, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	diagnostics, ok := s.diagnostics[runID]
	if !ok {
		return nil, false, nil
	}
	copied := make([]model.GenerationDiagnostics, len(diagnostics))
	copy(copied, diagnostics)
	return copied, true, nil
}

func (s *MemoryStore) SaveHallOfFame(_ context.Context, runID string, entries []model.HallOfFameEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]model.HallOfFameEntry, len(entries))
	copy(copied, entries)
	s.hallOfFame[runID] = copied
	return nil
}

func (s *MemoryStore) GetHallOfFame(_ context.Context, runID string) ([]model.HallOfFameEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.hallOfFame[runID]
	if !ok {
		return nil, false, nil
	}
	copied := make([]model.HallOfFameEntry, len(entries))
	copy(copied, entries)
	return copied, true, nil
}
