package audioio

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestWAV_EncodeDecode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	samples := NewTone(440, 0.5, 16000).Next(1600)
	if err := EncodeWAV(f, samples, 16000); err != nil {
		t.Fatalf("EncodeWAV failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	clip, err := ReadWAV(path)
	if err != nil {
		t.Fatalf("ReadWAV failed: %v", err)
	}
	if clip.SampleRate != 16000 {
		t.Errorf("Expected sample rate 16000, got %d", clip.SampleRate)
	}
	if len(clip.Samples) != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), len(clip.Samples))
	}
	for i := range samples {
		if math.Abs(clip.Samples[i]-samples[i]) > 1e-3 {
			t.Fatalf("Sample %d: expected %v, got %v", i, samples[i], clip.Samples[i])
		}
	}
	if math.Abs(clip.Duration()-0.1) > 1e-9 {
		t.Errorf("Expected 0.1s, got %v", clip.Duration())
	}
}

func TestWAV_Invalid(t *testing.T) {
	_, err := DecodeWAV(bytes.NewReader([]byte("definitely not a wav file")))
	if !errors.Is(err, ErrInvalidWAV) {
		t.Errorf("Expected ErrInvalidWAV, got %v", err)
	}

	if _, err := ReadWAV(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("Expected error for missing file")
	}
}
