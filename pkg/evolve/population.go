package evolve

import (
	"context"
	"sort"
	"sync"
)

// Population is an ordered collection of individuals. Order carries no
// meaning except where an algorithm defines elitism; sorting is stable so
// equal-fitness individuals keep their relative order across runs.
type Population[S Solution[S]] struct {
	members []*Individual[S]
}

// NewPopulation wraps the given individuals. The slice is owned by the
// population afterward.
func NewPopulation[S Solution[S]](members []*Individual[S]) *Population[S] {
	return &Population[S]{members: members}
}

// GeneratePopulation builds size fresh individuals. Each slot draws from its
// own stream derived from (seed, epoch, slot), so regeneration at a given
// epoch is deterministic.
func GeneratePopulation[S Solution[S]](generate Generator[S], size int, streams *Streams, epoch uint64) *Population[S] {
	members := make([]*Individual[S], size)
	for i := range members {
		rng := streams.Derive(streamGenerate, epoch, uint64(i))
		members[i] = NewIndividual(generate(rng))
	}
	return NewPopulation(members)
}

// Len returns the number of individuals.
func (p *Population[S]) Len() int {
	return len(p.members)
}

// At returns the individual at index i.
func (p *Population[S]) At(i int) *Individual[S] {
	return p.members[i]
}

// Replace swaps in a new individual at index i.
func (p *Population[S]) Replace(i int, ind *Individual[S]) {
	p.members[i] = ind
}

// Members returns the backing slice. Callers must not reorder it while a
// generation step is in flight.
func (p *Population[S]) Members() []*Individual[S] {
	return p.members
}

// EvaluateAll scores every individual whose fitness cache is invalid, using
// up to workers goroutines. Workers share no mutable state; each owns the
// slots it pulls from the job channel. After a nil return every individual
// carries a valid fitness, which is the precondition for selection and
// hall-of-fame observation.
func (p *Population[S]) EvaluateAll(ctx context.Context, workers int) error {
	pending := make([]int, 0, len(p.members))
	for i, member := range p.members {
		if !member.evaluated {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return ctx.Err()
	}

	if workers <= 0 {
		workers = 1
	}
	if workers > len(pending) {
		workers = len(pending)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					continue
				}
				p.members[idx].Evaluate()
			}
		}()
	}

	for _, idx := range pending {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return ctx.Err()
}

// SortByFitness orders individuals descending by fitness. The sort is
// stable: ties keep their original relative order. Every individual must
// carry a valid fitness; call EvaluateAll first.
func (p *Population[S]) SortByFitness() {
	sort.SliceStable(p.members, func(i, j int) bool {
		return p.members[i].fitness > p.members[j].fitness
	})
}

// Best returns the individual with the highest cached fitness, or nil for an
// empty population. Every individual must carry a valid fitness.
func (p *Population[S]) Best() *Individual[S] {
	if len(p.members) == 0 {
		return nil
	}
	best := p.members[0]
	for _, member := range p.members[1:] {
		if member.fitness > best.fitness {
			best = member
		}
	}
	return best
}

func (p *Population[S]) replaceMembers(members []*Individual[S]) {
	p.members = members
}
