package stats

import "math"

// Bounds clamp a confidence interval to the hard range the estimate
// can take (e.g. min and max of the population).
type Bounds struct {
	Lower float64
	Upper float64
}

// Interval is a confidence interval around a mean estimate.
type Interval struct {
	Mean  float64
	Lower float64
	Upper float64
}

// ConfidenceInterval builds a normal-approximation interval around mean
// with the given variance, at confidenceLevel (e.g. 0.95). The interval
// is clamped to bounds. A degenerate z (level at 0 or 1) collapses to
// the bounds themselves.
func ConfidenceInterval(mean, variance, confidenceLevel float64, bounds Bounds) Interval {
	ci := Interval{Mean: mean}

	probability := (1 + confidenceLevel) / 2
	z := StdNormal.InvCDF(probability)

	if math.IsInf(z, 0) {
		ci.Lower = bounds.Lower
		ci.Upper = bounds.Upper
		return ci
	}

	sd := math.Sqrt(variance)
	ci.Lower = math.Max(mean-z*sd, bounds.Lower)
	ci.Upper = math.Min(mean+z*sd, bounds.Upper)
	return ci
}
