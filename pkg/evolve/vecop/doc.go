// Package vecop provides common crossover and mutation operators for
// slice-backed genomes. All operations mutate their arguments in place and
// draw randomness only from the supplied *rand.Rand, so they compose with
// the deterministic streams of package evolve. Misuse (mismatched lengths,
// out-of-range parameters) panics; these are programmer errors, not runtime
// conditions.
package vecop
