package vowel

import "time"

// Tracker smooths per-frame observations into vowel and speak events.
//
// The speaker is considered to be talking while the voiced ratio of the
// history window exceeds the threshold. Every such frame pushes the stop
// deadline out by the stop timeout; when the ratio stays low past the
// deadline a stop and a closing LabelClosed are emitted. While talking, a
// new label is emitted only if it differs from the last one and the vowel
// lock from the previous emission has expired.
type Tracker struct {
	history     *History
	threshold   float64
	stopTimeout time.Duration
	lock        time.Duration

	speaking  bool
	last      Label
	stopAt    time.Time
	lockUntil time.Time
}

// NewTracker creates a tracker over a window of w frames.
func NewTracker(w int, threshold float64, stopTimeout, lock time.Duration) *Tracker {
	return &Tracker{
		history:     NewHistory(w),
		threshold:   threshold,
		stopTimeout: stopTimeout,
		lock:        lock,
	}
}

// Reset returns to the silent state with an empty history.
func (t *Tracker) Reset() {
	t.history.Reset()
	t.speaking = false
	t.last = ""
	t.stopAt = time.Time{}
	t.lockUntil = time.Time{}
}

// Observe records one frame's observation at time now and appends any
// resulting events to dst.
func (t *Tracker) Observe(dst []Event, obs Observation, now time.Time) []Event {
	t.history.Push(obs)

	if t.history.VoicedRatio() > t.threshold {
		if !t.speaking {
			t.speaking = true
			dst = append(dst, speakEvent(SpeakStart, now))
		}
		t.stopAt = now.Add(t.stopTimeout)

		label := obs.Label()
		if label != t.last && !now.Before(t.lockUntil) {
			t.last = label
			t.lockUntil = now.Add(t.lock)
			dst = append(dst, vowelEvent(label, now))
		}
		return dst
	}

	if t.speaking && !now.Before(t.stopAt) {
		t.speaking = false
		t.last = LabelClosed
		t.lockUntil = time.Time{}
		dst = append(dst, speakEvent(SpeakStop, now), vowelEvent(LabelClosed, now))
	}
	return dst
}

// Speaking reports whether the tracker is in the speaking state.
func (t *Tracker) Speaking() bool {
	return t.speaking
}

// Last returns the most recently emitted label.
func (t *Tracker) Last() Label {
	return t.last
}

// VoicedRatio returns the voiced fraction of the history window.
func (t *Tracker) VoicedRatio() float64 {
	return t.history.VoicedRatio()
}

// History returns a copy of the observation window, oldest first.
func (t *Tracker) History() []Observation {
	return t.history.Snapshot()
}
