// Package stats provides the summary statistics used by the Monte Carlo
// experiments: online mean/variance, quantiles, histograms, and normal
// confidence intervals.
package stats

import "math"

// Welford accumulates mean and variance online, one value at a time,
// without keeping the values around.
type Welford struct {
	count uint64
	mean  float64
	m2    float64
}

func NewWelford() *Welford {
	return &Welford{}
}

func (w *Welford) Add(value float64) {
	w.count++
	delta := value - w.mean
	w.mean += delta / float64(w.count)
	w.m2 += delta * (value - w.mean)
}

func (w *Welford) Count() uint64 {
	return w.count
}

func (w *Welford) Mean() float64 {
	return w.mean
}

// Variance is the population variance (divides by n).
func (w *Welford) Variance() float64 {
	if w.count < 2 {
		return 0
	}
	return w.m2 / float64(w.count)
}

// SampleVariance divides by n-1.
func (w *Welford) SampleVariance() float64 {
	if w.count < 2 {
		return 0
	}
	return w.m2 / float64(w.count-1)
}

func (w *Welford) StdDev() float64 {
	return math.Sqrt(w.SampleVariance())
}
