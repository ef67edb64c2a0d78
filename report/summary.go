// Package report turns a finished accumulator into human-readable
// output: a summary block, a text histogram with a reference marker,
// and a static HTML page.
package report

import (
	"github.com/Jadson16/econometrics/stats"
)

// Summary is the read-only report over an accumulator of sample means.
// Reference is the value the distribution is centered on (usually the
// population mean) and is marked in histogram output. Interval is the
// 95% confidence interval around the grand mean.
type Summary struct {
	Description stats.Description
	Histogram   *stats.Histogram
	Interval    stats.Interval
	Reference   float64
}

// Summarize computes the report over means. The accumulator is not
// modified; calling Summarize twice yields the same summary.
func Summarize(means []float64, reference float64, bins int) *Summary {
	d := stats.Describe(means)

	var interval stats.Interval
	if d.Count > 0 {
		// Variance of the grand mean shrinks with the trial count.
		seSquared := d.StdDev * d.StdDev / float64(d.Count)
		interval = stats.ConfidenceInterval(d.Mean, seSquared, 0.95,
			stats.Bounds{Lower: d.Min, Upper: d.Max})
	}

	return &Summary{
		Description: d,
		Histogram:   stats.NewHistogram(means, bins),
		Interval:    interval,
		Reference:   reference,
	}
}
