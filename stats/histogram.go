package stats

import "math"

// Histogram buckets values into equal-width bins over [Min, Max].
// Values outside the range are clamped into the edge bins, matching
// how the bins are built from observed min/max.
type Histogram struct {
	Min    float64
	Max    float64
	Width  float64
	Counts []int
}

// NewHistogram builds a histogram of values with the given number of
// bins. bins < 1 is treated as 1. An empty input yields a histogram
// with all-zero counts over [0, 0].
func NewHistogram(values []float64, bins int) *Histogram {
	if bins < 1 {
		bins = 1
	}
	h := &Histogram{
		Counts: make([]int, bins),
	}
	if len(values) == 0 {
		return h
	}

	h.Min = values[0]
	h.Max = values[0]
	for _, v := range values {
		h.Min = math.Min(h.Min, v)
		h.Max = math.Max(h.Max, v)
	}
	h.Width = (h.Max - h.Min) / float64(bins)

	for _, v := range values {
		h.Counts[h.Bin(v)]++
	}
	return h
}

// Bin returns the bin index holding x, clamped to [0, len(Counts)-1].
func (h *Histogram) Bin(x float64) int {
	if h.Width == 0 {
		return 0
	}
	bin := int((x - h.Min) / h.Width)
	if bin < 0 {
		bin = 0
	}
	if bin >= len(h.Counts) {
		bin = len(h.Counts) - 1
	}
	return bin
}

// Total is the number of bucketed values.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// BinLower returns the lower edge of bin i.
func (h *Histogram) BinLower(i int) float64 {
	return h.Min + float64(i)*h.Width
}
