package dsp

import "math"

// Window holds precomputed taper coefficients for a fixed frame length.
type Window []float64

// NewHamming returns a Hamming window of length n:
// w[i] = 0.54 - 0.46*cos(2*pi*i/(n-1)), with the first and last
// coefficient forced to zero.
func NewHamming(n int) Window {
	w := make(Window, n)
	if n < 2 {
		return w
	}
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	w[0] = 0
	w[n-1] = 0
	return w
}

// Apply multiplies src by the window elementwise into dst and returns dst.
// dst may alias src. len(src) must equal len(w).
func (w Window) Apply(dst, src []float64) []float64 {
	if len(dst) < len(w) {
		dst = make([]float64, len(w))
	}
	dst = dst[:len(w)]
	for i, c := range w {
		dst[i] = src[i] * c
	}
	return dst
}

// Hamming windows frame into a new slice.
func Hamming(frame []float64) []float64 {
	return NewHamming(len(frame)).Apply(nil, frame)
}

// Normalize divides src by its peak absolute value into dst. It returns
// the peak; a zero peak leaves dst all zeros.
func Normalize(dst, src []float64) ([]float64, float64) {
	if len(dst) < len(src) {
		dst = make([]float64, len(src))
	}
	dst = dst[:len(src)]

	var peak float64
	for _, s := range src {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		clear(dst)
		return dst, 0
	}
	for i, s := range src {
		dst[i] = s / peak
	}
	return dst, peak
}

// Energy returns the mean squared sample value.
func Energy(frame []float64) float64 {
	if len(frame) == 0 {
		return 0
	}
	var sum float64
	for _, s := range frame {
		sum += s * s
	}
	return sum / float64(len(frame))
}
