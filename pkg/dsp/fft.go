package dsp

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrNotPowerOfTwo is returned when a transform length is not a power of two.
var ErrNotPowerOfTwo = errors.New("dsp: length is not a power of two")

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// FFT computes the in-place radix-2 Cooley-Tukey transform of data.
func FFT(data []complex128) error {
	n := len(data)
	if !IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	if n == 1 {
		return nil
	}

	// Bit-reverse ordering
	for i, j := 0, 0; i < n; i++ {
		if j > i {
			data[i], data[j] = data[j], data[i]
		}
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := -2 * math.Pi / float64(size)
		for j := 0; j < half; j++ {
			tw := cmplx.Rect(1, float64(j)*step)
			for i := 0; i < n; i += size {
				u := data[i+j]
				v := data[i+j+half] * tw
				data[i+j] = u + v
				data[i+j+half] = u - v
			}
		}
	}
	return nil
}

// Envelope evaluates the all-pole model described by the inverse-filter
// coefficients and returns 1/|A(k)| for every FFT bin. Bins where |A(k)|
// is zero are reported as 0. len(coeffs) must be a power of two.
func Envelope(coeffs []float64) ([]float64, error) {
	return EnvelopeInto(nil, nil, coeffs)
}

// EnvelopeInto is Envelope with caller-provided output and FFT scratch
// buffers, either of which may be nil or too short.
func EnvelopeInto(dst []float64, scratch []complex128, coeffs []float64) ([]float64, error) {
	n := len(coeffs)
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("envelope: %w: %d", ErrNotPowerOfTwo, n)
	}
	if len(scratch) < n {
		scratch = make([]complex128, n)
	}
	scratch = scratch[:n]
	for i, c := range coeffs {
		scratch[i] = complex(c, 0)
	}
	if err := FFT(scratch); err != nil {
		return nil, err
	}

	if len(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	for i, x := range scratch {
		mag := cmplx.Abs(x)
		if mag == 0 {
			dst[i] = 0
			continue
		}
		dst[i] = 1 / mag
	}
	return dst, nil
}
