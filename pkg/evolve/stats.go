package evolve

import "math"

// GenerationStats summarizes the fitness distribution of one evaluated
// generation.
type GenerationStats struct {
	BestFitness  float64 `json:"best_fitness"`
	MeanFitness  float64 `json:"mean_fitness"`
	MinFitness   float64 `json:"min_fitness"`
	StdevFitness float64 `json:"stdev_fitness"`
}

// Analyze computes per-generation statistics. Every individual must carry a
// valid fitness; call EvaluateAll first.
func Analyze[S Solution[S]](pop *Population[S]) GenerationStats {
	if pop.Len() == 0 {
		return GenerationStats{}
	}

	first, _ := pop.At(0).Fitness()
	best, min, total := first, first, 0.0
	for _, ind := range pop.Members() {
		fitness, _ := ind.Fitness()
		total += fitness
		if fitness > best {
			best = fitness
		}
		if fitness < min {
			min = fitness
		}
	}
	mean := total / float64(pop.Len())

	variance := 0.0
	for _, ind := range pop.Members() {
		fitness, _ := ind.Fitness()
		delta := fitness - mean
		variance += delta * delta
	}
	variance /= float64(pop.Len())

	return GenerationStats{
		BestFitness:  best,
		MeanFitness:  mean,
		MinFitness:   min,
		StdevFitness: math.Sqrt(variance),
	}
}
