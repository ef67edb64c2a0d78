package sim

import "github.com/Jadson16/econometrics/stats"

// Result holds the finished accumulator. Means has exactly one entry
// per trial; Stats carries the streaming mean/variance gathered while
// the trials ran.
type Result struct {
	Means []float64
	Stats *stats.Welford
}

func newResult(trials int) *Result {
	return &Result{
		Means: make([]float64, trials),
		Stats: stats.NewWelford(),
	}
}

// PopulationMean is the exact mean of the experiment's population, the
// value the accumulator mean converges toward as trials grow.
func (e *Experiment) PopulationMean() float64 {
	return stats.Mean(e.Population)
}
