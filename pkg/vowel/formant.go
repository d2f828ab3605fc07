package vowel

import "slices"

// Formant search limits.
const (
	MinFormantHz = 150.0
	MaxFormantHz = 5000.0
	maxPeaks     = 5
)

// Formants holds the peaks picked from one spectral envelope.
type Formants struct {
	F1 float64
	F2 float64

	// Peaks lists up to five accepted peak frequencies, ascending.
	Peaks []float64
}

// ExtractFormants picks formant candidates from an FFT-length envelope.
// Strict local maxima below Nyquist are ranked by magnitude; the strongest
// five inside [MinFormantHz, MaxFormantHz] are kept and re-sorted by
// frequency. F1 and F2 are the two lowest, 0 when missing.
func ExtractFormants(env []float64, sampleRate int) Formants {
	n := len(env)
	if n < 3 || sampleRate <= 0 {
		return Formants{}
	}
	binHz := float64(sampleRate) / float64(n)

	var candidates []int
	for i := 1; i < n/2; i++ {
		if env[i] > env[i-1] && env[i] > env[i+1] {
			candidates = append(candidates, i)
		}
	}
	slices.SortStableFunc(candidates, func(a, b int) int {
		switch {
		case env[a] > env[b]:
			return -1
		case env[a] < env[b]:
			return 1
		}
		return 0
	})

	peaks := make([]float64, 0, maxPeaks)
	for _, idx := range candidates {
		f := float64(idx) * binHz
		if f < MinFormantHz || f > MaxFormantHz {
			continue
		}
		peaks = append(peaks, f)
		if len(peaks) == maxPeaks {
			break
		}
	}
	slices.Sort(peaks)

	out := Formants{Peaks: peaks}
	if len(peaks) > 0 {
		out.F1 = peaks[0]
	}
	if len(peaks) > 1 {
		out.F2 = peaks[1]
	}
	return out
}
