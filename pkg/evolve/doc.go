// Package evolve drives generational evolutionary searches over a
// user-supplied candidate representation.
//
// A candidate type implements the Solution contract (clone, evaluate,
// crossover, mutate) and supplies a Generator that produces random
// candidates. An Evolution instance composes an Algorithm (for example
// MuPlusLambda), a HallOfFame archive, and a resolved Seed, and runs
// generations until a caller-supplied predicate says to stop.
//
// All randomness is drawn from streams derived deterministically from the
// run seed and a stable task identifier, never from a shared generator, so
// two runs with the same seed produce identical results regardless of how
// many workers evaluate fitness in parallel. The seed is resolved once per
// run: an explicit value, the MENDEL_SEED environment variable, or OS
// entropy as a reportable fallback.
package evolve
