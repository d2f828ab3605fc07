package protocol

import (
	"fmt"
	"time"

	"github.com/teslashibe/go-lipsync/pkg/vowel"
)

// NewVowelMessage creates a vowel message
func NewVowelMessage(label vowel.Label, at time.Time) (*Message, error) {
	return NewMessageAt(TypeVowel, at, VowelData{Label: string(label)})
}

// NewSpeakMessage creates a speak status message
func NewSpeakMessage(status vowel.SpeakStatus, at time.Time) (*Message, error) {
	return NewMessageAt(TypeSpeak, at, SpeakData{Status: string(status)})
}

// NewFrameMessage creates a per-frame analysis message
func NewFrameMessage(res vowel.Result, offset int64, at time.Time) (*Message, error) {
	return NewMessageAt(TypeFrame, at, FrameData{
		Offset:      offset,
		Volume:      res.Volume,
		Voiced:      res.Voiced,
		F1:          res.Formants.F1,
		F2:          res.Formants.F2,
		Peaks:       res.Formants.Peaks,
		Observation: res.Observation.String(),
		VoicedRatio: res.VoicedRatio,
	})
}

// FromEvent converts an estimator event into a message tagged with session
func FromEvent(session string, ev vowel.Event) (*Message, error) {
	var (
		msg *Message
		err error
	)
	switch ev.Kind {
	case vowel.EventVowel:
		msg, err = NewVowelMessage(ev.Vowel, ev.At)
	case vowel.EventSpeakStatus:
		msg, err = NewSpeakMessage(ev.Status, ev.At)
	default:
		return nil, fmt.Errorf("unknown event kind %d", ev.Kind)
	}
	if err != nil {
		return nil, err
	}
	msg.Session = session
	return msg, nil
}

// GetVowelData extracts vowel data from a message
func (m *Message) GetVowelData() (*VowelData, error) {
	var data VowelData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetSpeakData extracts speak data from a message
func (m *Message) GetSpeakData() (*SpeakData, error) {
	var data SpeakData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetFrameData extracts frame data from a message
func (m *Message) GetFrameData() (*FrameData, error) {
	var data FrameData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}
