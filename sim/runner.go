package sim

import (
	"context"
	"sync"

	"github.com/Jadson16/econometrics/sample"
	"github.com/Jadson16/econometrics/stats"
)

// Run executes all trials and returns the accumulator. Parameters are
// validated before the first trial; a validation failure runs nothing.
// With Workers <= 1 trials run sequentially on the calling goroutine,
// otherwise they are spread over a worker pool. Either way the
// accumulator ends with exactly Trials entries, indexed by trial.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if e.Workers > 1 && e.Trials > 0 {
		return e.runPool(ctx)
	}
	return e.runSequential(ctx)
}

func (e *Experiment) runSequential(ctx context.Context) (*Result, error) {
	result := newResult(e.Trials)
	src := sample.NewSource(e.Seed)

	for trial := 0; trial < e.Trials; trial += 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		draw, err := sample.WithoutReplacement(src, e.Population, e.SampleSize)
		if err != nil {
			return nil, err
		}
		mean := stats.Mean(draw)
		result.Means[trial] = mean
		result.Stats.Add(mean)
	}
	return result, nil
}

// trialMean pairs a trial index with its sample mean so the collector
// can place it without caring about worker interleaving.
type trialMean struct {
	trial int
	mean  float64
}

// runPool fans the trials out over Workers goroutines. Each worker owns
// a source derived from the experiment seed and its worker id, keeping
// trials independent without sharing random state across goroutines.
func (e *Experiment) runPool(ctx context.Context) (*Result, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	trialQueue := make(chan int, e.Workers)
	meanQueue := make(chan trialMean, e.Workers)
	errOnce := make(chan error, 1)

	go func() {
		defer close(trialQueue)
		for trial := 0; trial < e.Trials; trial += 1 {
			select {
			case trialQueue <- trial:
			case <-runCtx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < e.Workers; w += 1 {
		wg.Add(1)
		src := sample.NewSource(e.Seed + uint64(w)*0x9e3779b97f4a7c15)
		go func() {
			defer wg.Done()
			for trial := range trialQueue {
				draw, err := sample.WithoutReplacement(src, e.Population, e.SampleSize)
				if err != nil {
					select {
					case errOnce <- err:
					default:
					}
					cancel()
					return
				}
				select {
				case meanQueue <- trialMean{trial: trial, mean: stats.Mean(draw)}:
				case <-runCtx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(meanQueue)
	}()

	result := newResult(e.Trials)
	collected := 0
	for tm := range meanQueue {
		result.Means[tm.trial] = tm.mean
		collected += 1
	}

	select {
	case err := <-errOnce:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if collected != e.Trials {
		// Only reachable through cancellation races; surface it rather
		// than returning a short accumulator.
		return nil, context.Canceled
	}

	for _, mean := range result.Means {
		result.Stats.Add(mean)
	}
	return result, nil
}
