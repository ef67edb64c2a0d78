package sample

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

var population = []float64{175, 182, 150, 187, 165, 177, 200, 198, 157, 165}

func TestWithoutReplacement_Size(t *testing.T) {
	src := NewSource(1)
	for k := 0; k <= len(population); k += 1 {
		draw, err := WithoutReplacement(src, population, k)
		assert.NoError(t, err)
		assert.Equal(t, k, len(draw))
	}
}

func TestWithoutReplacement_TooLarge(t *testing.T) {
	src := NewSource(1)
	draw, err := WithoutReplacement(src, population, len(population)+1)
	assert.Nil(t, draw)
	assert.True(t, errors.Is(err, ErrSampleTooLarge))
}

func TestWithoutReplacement_Negative(t *testing.T) {
	src := NewSource(1)
	_, err := WithoutReplacement(src, population, -1)
	assert.True(t, errors.Is(err, ErrNegativeSample))
}

func TestWithoutReplacement_FullDrawIsPermutation(t *testing.T) {
	src := NewSource(42)
	draw, err := WithoutReplacement(src, population, len(population))
	assert.NoError(t, err)

	wantSorted := append([]float64(nil), population...)
	gotSorted := append([]float64(nil), draw...)
	sort.Float64s(wantSorted)
	sort.Float64s(gotSorted)
	assert.Equal(t, wantSorted, gotSorted)
}

func TestWithoutReplacement_NoRepeats(t *testing.T) {
	// Distinct population, so repeated values in a draw can only come
	// from drawing the same element twice.
	distinct := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	src := NewSource(7)

	for trial := 0; trial < 100; trial += 1 {
		draw, err := WithoutReplacement(src, distinct, 5)
		assert.NoError(t, err)

		seen := make(map[float64]bool)
		for _, v := range draw {
			assert.False(t, seen[v])
			seen[v] = true
		}
	}
}

func TestWithoutReplacement_PopulationUntouched(t *testing.T) {
	before := append([]float64(nil), population...)
	src := NewSource(3)
	_, err := WithoutReplacement(src, population, 5)
	assert.NoError(t, err)
	assert.Equal(t, before, population)
}

func TestWithoutReplacement_SeededIsDeterministic(t *testing.T) {
	first, err := WithoutReplacement(NewSource(99), population, 5)
	assert.NoError(t, err)
	second, err := WithoutReplacement(NewSource(99), population, 5)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
