package evolve

import "fmt"

// Entry is an immutable snapshot of an individual recorded by a hall of
// fame: a cloned genome, its fitness, and the generation it was seen at.
// Later mutation of the live population never touches an entry.
type Entry[S Solution[S]] struct {
	Solution   S       `json:"solution"`
	Fitness    float64 `json:"fitness"`
	Generation int     `json:"generation"`
}

// HallOfFame observes each generation's evaluated population and maintains
// an archive of the best individuals seen across the whole run.
type HallOfFame[S Solution[S]] interface {
	// Observe records a generation. Every individual in pop must carry a
	// valid fitness.
	Observe(generation int, pop *Population[S])

	// Entries returns the archive ordered descending by fitness.
	Entries() []Entry[S]

	// Best returns the top entry, if any. Its fitness never decreases over
	// the course of a run; termination predicates rely on that.
	Best() (Entry[S], bool)
}

// BestN keeps the n fittest distinct snapshots seen across all observed
// generations. Once full, a candidate displaces the worst archived entry
// only if its fitness is strictly greater, so equal-fitness newcomers never
// churn the archive.
type BestN[S Solution[S]] struct {
	max     int
	entries []Entry[S]
}

// NewBestN validates the archive size at construction.
func NewBestN[S Solution[S]](max int) (*BestN[S], error) {
	if max < 1 {
		return nil, fmt.Errorf("hall of fame size must be >= 1, got %d", max)
	}
	return &BestN[S]{max: max, entries: make([]Entry[S], 0, max)}, nil
}

func (h *BestN[S]) Observe(generation int, pop *Population[S]) {
	for _, ind := range pop.Members() {
		fitness, _ := ind.Fitness()
		if len(h.entries) == h.max && fitness <= h.entries[len(h.entries)-1].Fitness {
			continue
		}
		entry := Entry[S]{
			Solution:   ind.Genome().Clone(),
			Fitness:    fitness,
			Generation: generation,
		}
		h.insert(entry)
		if len(h.entries) > h.max {
			h.entries = h.entries[:h.max]
		}
	}
}

// insert places the entry after any existing entries of equal fitness, so
// earlier recordings outrank later ones on ties.
func (h *BestN[S]) insert(entry Entry[S]) {
	at := len(h.entries)
	for i, existing := range h.entries {
		if entry.Fitness > existing.Fitness {
			at = i
			break
		}
	}
	h.entries = append(h.entries, Entry[S]{})
	copy(h.entries[at+1:], h.entries[at:])
	h.entries[at] = entry
}

func (h *BestN[S]) Entries() []Entry[S] {
	out := make([]Entry[S], len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *BestN[S]) Best() (Entry[S], bool) {
	if len(h.entries) == 0 {
		return Entry[S]{}, false
	}
	return h.entries[0], true
}
