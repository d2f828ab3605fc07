package vowel

// History is a fixed-capacity ring of the most recent observations.
// It always holds exactly Len() entries; slots not yet written count as
// Unvoiced.
type History struct {
	buf    []Observation
	next   int
	voiced int
}

// NewHistory returns a ring of capacity w filled with Unvoiced.
func NewHistory(w int) *History {
	if w < 1 {
		w = 1
	}
	h := &History{buf: make([]Observation, w)}
	h.Reset()
	return h
}

// Reset refills the ring with Unvoiced.
func (h *History) Reset() {
	for i := range h.buf {
		h.buf[i] = Unvoiced
	}
	h.next = 0
	h.voiced = 0
}

// Push records obs, evicting the oldest entry.
func (h *History) Push(obs Observation) {
	if h.buf[h.next].Voiced() {
		h.voiced--
	}
	h.buf[h.next] = obs
	if obs.Voiced() {
		h.voiced++
	}
	h.next = (h.next + 1) % len(h.buf)
}

// Len returns the ring capacity.
func (h *History) Len() int {
	return len(h.buf)
}

// VoicedRatio returns the fraction of entries that passed the energy gate.
func (h *History) VoicedRatio() float64 {
	return float64(h.voiced) / float64(len(h.buf))
}

// Snapshot copies the entries oldest first.
func (h *History) Snapshot() []Observation {
	out := make([]Observation, 0, len(h.buf))
	out = append(out, h.buf[h.next:]...)
	return append(out, h.buf[:h.next]...)
}
