// Package vector provides positional transforms over numeric sequences.
// Transforms never mutate their input; the output slice is freshly
// allocated and index-aligned with the source.
package vector

// Scale returns a new sequence where out[i] = src[i] * factor.
func Scale(src []float64, factor float64) []float64 {
	out := make([]float64, len(src))
	for i := 0; i < len(src); i += 1 {
		out[i] = src[i] * factor
	}
	return out
}

// Divide returns a new sequence where out[i] = src[i] / factor.
// Standard float64 division rules apply, factor == 0 included.
func Divide(src []float64, factor float64) []float64 {
	out := make([]float64, len(src))
	for i := 0; i < len(src); i += 1 {
		out[i] = src[i] / factor
	}
	return out
}

// Map returns a new sequence where out[i] = fn(src[i]).
func Map(src []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = fn(v)
	}
	return out
}

// Sum returns the total of all elements.
func Sum(src []float64) float64 {
	total := 0.0
	for _, v := range src {
		total += v
	}
	return total
}
