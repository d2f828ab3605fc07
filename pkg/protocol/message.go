// Package protocol defines the JSON messages for the lip-sync event stream.
// Each line of output is one Message; the command dispatcher on the robot
// side maps vowel and speak messages onto mouth commands.
package protocol

import (
	"encoding/json"
	"fmt"
	"time"
)

// MessageType identifies the type of message
type MessageType string

const (
	TypeVowel MessageType = "vowel" // Mouth shape change
	TypeSpeak MessageType = "speak" // Speaking started or stopped
	TypeFrame MessageType = "frame" // Per-frame analysis (debug)
)

// Message is the base wrapper for all messages
type Message struct {
	Type      MessageType     `json:"type"`
	Session   string          `json:"session,omitempty"`
	Timestamp int64           `json:"ts,omitempty"` // Unix milliseconds
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	return NewMessageAt(msgType, time.Now(), data)
}

// NewMessageAt creates a message stamped with at
func NewMessageAt(msgType MessageType, at time.Time, data interface{}) (*Message, error) {
	var rawData json.RawMessage
	if data != nil {
		var err error
		rawData, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message data: %w", err)
		}
	}

	return &Message{
		Type:      msgType,
		Timestamp: at.UnixMilli(),
		Data:      rawData,
	}, nil
}

// ParseData unmarshals the message data into the provided struct
func (m *Message) ParseData(v interface{}) error {
	if m.Data == nil {
		return nil
	}
	return json.Unmarshal(m.Data, v)
}

// Bytes returns the JSON-encoded message
func (m *Message) Bytes() ([]byte, error) {
	return json.Marshal(m)
}

// Time returns the message timestamp
func (m *Message) Time() time.Time {
	return time.UnixMilli(m.Timestamp)
}

// ParseMessage parses a JSON message from bytes
func ParseMessage(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return &msg, nil
}

// VowelData carries the mouth shape label
type VowelData struct {
	Label string `json:"label"` // "a", "i", "u", "e", "o", "n", "N"
}

// SpeakData carries a speaking state transition
type SpeakData struct {
	Status string `json:"status"` // "start", "stop"
}

// FrameData carries the analysis of one frame
type FrameData struct {
	Offset      int64     `json:"offset"` // Sample offset from stream start
	Volume      float64   `json:"volume"`
	Voiced      bool      `json:"voiced"`
	F1          float64   `json:"f1"`
	F2          float64   `json:"f2"`
	Peaks       []float64 `json:"peaks,omitempty"`
	Observation string    `json:"observation"`
	VoicedRatio float64   `json:"voiced_ratio"`
}
