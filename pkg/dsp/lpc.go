package dsp

import "math"

// levinsonEpsilon replaces a zero prediction error so the recursion
// never divides by zero.
const levinsonEpsilon = 1e-12

// Autocorrelate returns the biased autocorrelation r[0..order] of x,
// r[l] = sum over n of x[n]*x[n+l].
func Autocorrelate(x []float64, order int) []float64 {
	r := make([]float64, order+1)
	for l := 0; l <= order && l < len(x); l++ {
		var sum float64
		for n := 0; n+l < len(x); n++ {
			sum += x[n] * x[n+l]
		}
		r[l] = sum
	}
	return r
}

// LevinsonDurbin solves the LPC normal equations for the autocorrelation
// r and returns the inverse-filter polynomial a[0..order] with a[0] = 1,
// so that A(z) = sum a[j] z^-j, together with the final prediction error.
//
// A zero prediction error is replaced by 1e-12 before dividing. If a
// reflection coefficient reaches magnitude 1 the recursion stops and the
// remaining coefficients stay zero.
func LevinsonDurbin(r []float64, order int) ([]float64, float64) {
	a := make([]float64, order+1)
	a[0] = 1
	if len(r) == 0 {
		return a, 0
	}
	if order > len(r)-1 {
		order = len(r) - 1
	}

	prev := make([]float64, order+1)
	e := r[0]
	for i := 1; i <= order; i++ {
		div := e
		if div == 0 {
			div = levinsonEpsilon
		}

		acc := r[i]
		for j := 1; j < i; j++ {
			acc += a[j] * r[i-j]
		}
		k := -acc / div
		if math.IsNaN(k) || math.Abs(k) >= 1 {
			break
		}

		copy(prev, a)
		for j := 1; j < i; j++ {
			a[j] = prev[j] + k*prev[i-j]
		}
		a[i] = k
		e = div * (1 - k*k)
	}
	return a, e
}

// LPC computes order+1 LPC coefficients of x and returns them zero-padded
// to length n, ready for FFT. A frame whose peak is zero yields all zeros.
func LPC(x []float64, order, n int) []float64 {
	out := make([]float64, n)
	norm, peak := Normalize(nil, x)
	if peak == 0 {
		return out
	}
	a, _ := LevinsonDurbin(Autocorrelate(norm, order), order)
	copy(out, a)
	return out
}
