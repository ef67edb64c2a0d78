// Package sample implements uniform random sampling without replacement
// from a fixed population.
package sample

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	ErrSampleTooLarge = errors.New("sample size exceeds population size")
	ErrNegativeSample = errors.New("sample size is negative")
)

// Source yields uniform integers in [0, n). *math/rand/v2.Rand satisfies
// it; tests can substitute a deterministic sequence.
type Source interface {
	IntN(n int) int
}

// NewSource returns a seeded PCG-backed source. The same seed always
// produces the same draw sequence.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// WithoutReplacement draws k elements from population uniformly at
// random, each population element chosen at most once. The population
// is never mutated. k > len(population) is a precondition violation and
// fails immediately.
func WithoutReplacement(src Source, population []float64, k int) ([]float64, error) {
	n := len(population)
	if k < 0 {
		return nil, fmt.Errorf("draw %d: %w", k, ErrNegativeSample)
	}
	if k > n {
		return nil, fmt.Errorf("draw %d from %d: %w", k, n, ErrSampleTooLarge)
	}

	// Partial Fisher-Yates over a scratch copy: after i swaps the
	// prefix scratch[:i] is a uniform k-subset in random order.
	scratch := make([]float64, n)
	copy(scratch, population)

	for i := 0; i < k; i += 1 {
		j := i + src.IntN(n-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}
	return scratch[:k:k], nil
}
