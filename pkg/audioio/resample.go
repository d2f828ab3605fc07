package audioio

// Resample converts mono audio from one sample rate to another using
// linear interpolation. Good enough for formant tracking, which only
// looks below 5kHz.
func Resample(samples []float64, fromRate, toRate int) []float64 {
	if fromRate == toRate || fromRate <= 0 || toRate <= 0 {
		return samples
	}
	if len(samples) == 0 {
		return samples
	}

	ratio := float64(fromRate) / float64(toRate)
	newLen := int(float64(len(samples)) / ratio)
	if newLen == 0 {
		return []float64{}
	}

	result := make([]float64, newLen)
	for i := range result {
		srcPos := float64(i) * ratio
		srcIdx := int(srcPos)
		frac := srcPos - float64(srcIdx)

		if srcIdx >= len(samples)-1 {
			result[i] = samples[len(samples)-1]
		} else {
			result[i] = samples[srcIdx] + frac*(samples[srcIdx+1]-samples[srcIdx])
		}
	}
	return result
}

// Resampler is a streaming linear resampler. It carries the fractional
// read position and the last input sample across calls, so feeding a
// stream in blocks gives the same output as one Resample over the whole.
type Resampler struct {
	fromRate int
	toRate   int
	step     float64

	pos     float64 // next output position, relative to prev
	prev    float64
	hasPrev bool
}

// NewResampler creates a resampler from fromRate to toRate.
func NewResampler(fromRate, toRate int) *Resampler {
	r := &Resampler{fromRate: fromRate, toRate: toRate}
	if fromRate > 0 && toRate > 0 {
		r.step = float64(fromRate) / float64(toRate)
	}
	return r
}

// Process resamples the next block of the stream. Equal or invalid rates
// pass samples through unchanged.
func (r *Resampler) Process(samples []float64) []float64 {
	if r.fromRate == r.toRate || r.step == 0 || len(samples) == 0 {
		return samples
	}

	// Input positions are indexed with prev at -1 once the stream has
	// started.
	at := func(i int) float64 {
		if i < 0 {
			return r.prev
		}
		return samples[i]
	}
	base := 0
	if r.hasPrev {
		base = -1
	}
	last := len(samples) - 1

	out := make([]float64, 0, int(float64(len(samples)-base)/r.step)+1)
	for {
		p := r.pos + float64(base)
		idx := int(p)
		if p < 0 {
			idx = -1
		}
		frac := p - float64(idx)
		if idx >= last {
			if idx == last && frac == 0 {
				out = append(out, samples[last])
				r.pos += r.step
			}
			break
		}
		a := at(idx)
		out = append(out, a+frac*(at(idx+1)-a))
		r.pos += r.step
	}

	// Rebase so that position 0 is the new prev (samples[last]).
	r.pos -= float64(last - base)
	r.prev = samples[last]
	r.hasPrev = true
	return out
}

// Reset forgets the stream position.
func (r *Resampler) Reset() {
	r.pos = 0
	r.prev = 0
	r.hasPrev = false
}
