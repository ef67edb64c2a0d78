package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var heightsCm = []float64{175, 182, 150, 187, 165, 177, 200, 198, 157, 165}

func TestScale(t *testing.T) {
	out := Scale(heightsCm, 10)

	assert.Equal(t, len(heightsCm), len(out))
	for i := range heightsCm {
		assert.Equal(t, heightsCm[i]*10, out[i])
	}
}

func TestScale_DoesNotMutateSource(t *testing.T) {
	src := []float64{1, 2, 3}
	_ = Scale(src, 2.54)
	assert.Equal(t, []float64{1, 2, 3}, src)
}

func TestScale_Idempotent(t *testing.T) {
	first := Scale(heightsCm, 2.54)
	second := Scale(heightsCm, 2.54)
	assert.Equal(t, first, second)
}

func TestScale_Empty(t *testing.T) {
	out := Scale([]float64{}, 3)
	assert.Equal(t, 0, len(out))
}

func TestDivide(t *testing.T) {
	// cm to inches
	out := Divide(heightsCm, 2.54)

	assert.Equal(t, len(heightsCm), len(out))
	for i := range heightsCm {
		assert.Equal(t, heightsCm[i]/2.54, out[i])
	}
}

func TestMap(t *testing.T) {
	out := Map([]float64{1, 2, 3}, func(v float64) float64 {
		return v + 100
	})
	assert.Equal(t, []float64{101, 102, 103}, out)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 1756.0, Sum(heightsCm))
	assert.Equal(t, 0.0, Sum(nil))
}
