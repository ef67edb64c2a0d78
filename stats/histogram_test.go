package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogram(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	h := NewHistogram(values, 5)

	assert.Equal(t, 0.0, h.Min)
	assert.Equal(t, 10.0, h.Max)
	assert.Equal(t, 2.0, h.Width)
	// Max lands in the last bin, not past it.
	assert.Equal(t, []int{2, 2, 2, 2, 3}, h.Counts)
	assert.Equal(t, len(values), h.Total())
}

func TestHistogram_Bin(t *testing.T) {
	h := NewHistogram([]float64{0, 10}, 4)

	assert.Equal(t, 0, h.Bin(-5))
	assert.Equal(t, 0, h.Bin(0))
	assert.Equal(t, 1, h.Bin(4.9))
	assert.Equal(t, 3, h.Bin(10))
	assert.Equal(t, 3, h.Bin(50))
}

func TestHistogram_BinLower(t *testing.T) {
	h := NewHistogram([]float64{0, 10}, 4)
	assert.Equal(t, 0.0, h.BinLower(0))
	assert.Equal(t, 2.5, h.BinLower(1))
	assert.Equal(t, 7.5, h.BinLower(3))
}

func TestHistogram_Constant(t *testing.T) {
	h := NewHistogram([]float64{3, 3, 3}, 4)
	assert.Equal(t, 0.0, h.Width)
	assert.Equal(t, 0, h.Bin(3))
	assert.Equal(t, 3, h.Total())
}

func TestHistogram_Empty(t *testing.T) {
	h := NewHistogram(nil, 3)
	assert.Equal(t, []int{0, 0, 0}, h.Counts)
	assert.Equal(t, 0, h.Total())
}

func TestHistogram_MinBins(t *testing.T) {
	h := NewHistogram([]float64{1, 2}, 0)
	assert.Equal(t, 1, len(h.Counts))
	assert.Equal(t, 2, h.Total())
}
