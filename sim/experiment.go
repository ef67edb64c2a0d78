// Package sim runs Monte Carlo resampling experiments: repeated
// fixed-size draws without replacement from a fixed population, each
// trial recording the arithmetic mean of its draw. The accumulated
// means approximate the sampling distribution of the mean estimator.
package sim

import (
	"errors"
	"fmt"

	"github.com/Jadson16/econometrics/sample"
)

var ErrEmptyPopulation = errors.New("population is empty")

// Experiment describes one Monte Carlo run. The population is treated
// as read-only for the lifetime of the run.
type Experiment struct {
	Population []float64
	SampleSize int // k, elements drawn per trial
	Trials     int // T, number of independent trials
	Seed       uint64
	Workers    int // <= 1 runs trials sequentially
}

// Validate checks the experiment parameters before any trial runs.
func (e *Experiment) Validate() error {
	if len(e.Population) == 0 {
		return ErrEmptyPopulation
	}
	if e.SampleSize < 1 {
		return fmt.Errorf("sample size %d must be at least 1", e.SampleSize)
	}
	if e.SampleSize > len(e.Population) {
		return fmt.Errorf("sample size %d, population %d: %w",
			e.SampleSize, len(e.Population), sample.ErrSampleTooLarge)
	}
	if e.Trials < 0 {
		return fmt.Errorf("trial count %d is negative", e.Trials)
	}
	return nil
}
