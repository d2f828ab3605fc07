package audioio

import "time"

// Frame is one fixed-size block cut by a Framer.
type Frame struct {
	// Samples is only valid for the duration of the callback.
	Samples []float64

	// Offset is the index of the first sample since the stream start.
	Offset int64
}

// Framer buffers a sample stream and emits fixed-size frames every hop
// samples.
type Framer struct {
	size   int
	hop    int
	buf    []float64
	offset int64

	// emitted counts leading buffered samples already part of a frame.
	emitted int
}

// NewFramer returns a framer for frames of size samples advancing by hop.
// A hop outside [1, size] means no overlap.
func NewFramer(size, hop int) *Framer {
	if hop <= 0 || hop > size {
		hop = size
	}
	return &Framer{
		size: size,
		hop:  hop,
		buf:  make([]float64, 0, size*2),
	}
}

// Write appends samples and calls fn for every complete frame.
func (f *Framer) Write(samples []float64, fn func(Frame)) {
	f.buf = append(f.buf, samples...)
	for len(f.buf) >= f.size {
		fn(Frame{Samples: f.buf[:f.size], Offset: f.offset})
		n := copy(f.buf, f.buf[f.hop:])
		f.buf = f.buf[:n]
		f.offset += int64(f.hop)
		f.emitted = f.size - f.hop
	}
}

// Flush zero-pads any buffered remainder into a final frame. Nothing is
// emitted when every buffered sample already appeared in a frame.
func (f *Framer) Flush(fn func(Frame)) {
	if len(f.buf) <= f.emitted {
		f.buf = f.buf[:0]
		f.emitted = 0
		return
	}
	pad := make([]float64, f.size-len(f.buf))
	f.Write(pad, fn)
	f.buf = f.buf[:0]
	f.emitted = 0
}

// Pending returns the number of buffered samples not yet emitted.
func (f *Framer) Pending() int {
	return len(f.buf) - f.emitted
}

// Reset drops buffered samples and rewinds the offset.
func (f *Framer) Reset() {
	f.buf = f.buf[:0]
	f.offset = 0
	f.emitted = 0
}

// SampleTime converts a sample offset into a timestamp relative to start.
func SampleTime(start time.Time, offset int64, sampleRate int) time.Time {
	if sampleRate <= 0 {
		return start
	}
	return start.Add(time.Duration(offset) * time.Second / time.Duration(sampleRate))
}
