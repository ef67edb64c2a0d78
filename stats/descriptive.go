package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of values, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Quantile returns the p-th quantile of values using linear
// interpolation between order statistics. p is clamped to [0, 1].
// The input is not modified; a copy is sorted internally.
func Quantile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Description is the summary of a finished accumulator.
type Description struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Q05    float64
	Median float64
	Q95    float64
}

// Describe computes the standard report over values. An empty slice
// yields the zero Description.
func Describe(values []float64) Description {
	n := len(values)
	if n == 0 {
		return Description{}
	}

	w := NewWelford()
	min := values[0]
	max := values[0]
	for _, v := range values {
		w.Add(v)
		min = math.Min(min, v)
		max = math.Max(max, v)
	}

	return Description{
		Count:  n,
		Mean:   w.Mean(),
		StdDev: w.StdDev(),
		Min:    min,
		Max:    max,
		Q05:    Quantile(values, 0.05),
		Median: Quantile(values, 0.5),
		Q95:    Quantile(values, 0.95),
	}
}
