package vowel

import "time"

// Label is the mouth shape sent downstream.
type Label string

const (
	LabelA Label = "a"
	LabelI Label = "i"
	LabelU Label = "u"
	LabelE Label = "e"
	LabelO Label = "o"

	// LabelNone means speech is ongoing but no vowel was recognised.
	LabelNone Label = "n"

	// LabelClosed is the explicit mouth-close sent on speak stop.
	LabelClosed Label = "N"
)

// SpeakStatus is a speaking state transition.
type SpeakStatus string

const (
	SpeakStart SpeakStatus = "start"
	SpeakStop  SpeakStatus = "stop"
)

// Observation is the raw per-frame classification stored in the history.
// Values 0..4 index the cluster table.
type Observation int

const (
	// Unvoiced marks a frame rejected by the energy gate.
	Unvoiced Observation = -1

	// Unmatched marks a voiced frame that fell outside every cluster.
	Unmatched Observation = -2
)

// Voiced reports whether the frame passed the energy gate.
func (o Observation) Voiced() bool {
	return o != Unvoiced
}

// Label maps the observation to the label emitted while speaking.
func (o Observation) Label() Label {
	if o >= 0 && int(o) < len(clusters) {
		return clusters[o].Label
	}
	return LabelNone
}

func (o Observation) String() string {
	switch o {
	case Unvoiced:
		return "unvoiced"
	case Unmatched:
		return "unmatched"
	}
	return string(o.Label())
}

// EventKind distinguishes vowel events from speak status events.
type EventKind int

const (
	EventVowel EventKind = iota
	EventSpeakStatus
)

// Event is a single output of the tracker.
type Event struct {
	Kind   EventKind
	Vowel  Label
	Status SpeakStatus
	At     time.Time
}

func vowelEvent(l Label, at time.Time) Event {
	return Event{Kind: EventVowel, Vowel: l, At: at}
}

func speakEvent(s SpeakStatus, at time.Time) Event {
	return Event{Kind: EventSpeakStatus, Status: s, At: at}
}
