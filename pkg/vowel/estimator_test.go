package vowel

import (
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teslashibe/go-lipsync/pkg/audioio"
)

// session wraps an estimator with recorded callbacks and a synthetic clock.
type session struct {
	est     *Estimator
	now     time.Time
	step    time.Duration
	vowels  []Label
	speaks  []SpeakStatus
	results []Result
}

func newSession(t *testing.T, opts ...Option) *session {
	t.Helper()
	s := &session{now: time.Unix(1700000000, 0)}

	cfg := DefaultConfig()
	s.step = cfg.FrameDuration()

	opts = append([]Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithVowelHandler(func(l Label) { s.vowels = append(s.vowels, l) }),
		WithSpeakHandler(func(st SpeakStatus) { s.speaks = append(s.speaks, st) }),
	}, opts...)

	est, err := NewEstimator(cfg, opts...)
	require.NoError(t, err)
	s.est = est
	return s
}

func (s *session) process(t *testing.T, frame []float64) Result {
	t.Helper()
	res, err := s.est.Process(frame, s.now)
	require.NoError(t, err)
	s.now = s.now.Add(s.step)
	s.results = append(s.results, res)
	return res
}

func (s *session) silence(t *testing.T, frames int) {
	for i := 0; i < frames; i++ {
		s.process(t, make([]float64, s.est.Config().FrameSize))
	}
}

func (s *session) tone(t *testing.T, tone *audioio.Tone, frames int) {
	for i := 0; i < frames; i++ {
		s.process(t, tone.Next(s.est.Config().FrameSize))
	}
}

func TestEstimator_SilenceNeverStarts(t *testing.T) {
	s := newSession(t)
	s.silence(t, 300)

	assert.Empty(t, s.speaks)
	assert.Empty(t, s.vowels)
	assert.False(t, s.est.Speaking())
	for _, res := range s.results {
		assert.False(t, res.Voiced)
		assert.Equal(t, Unvoiced, res.Observation)
	}
}

func TestEstimator_SpeakStartStopRoundTrip(t *testing.T) {
	s := newSession(t)
	w := s.est.Config().VowelWindow

	s.silence(t, w)
	require.Empty(t, s.speaks)

	s.tone(t, audioio.NewTone(440, 0.5, 44100), w)
	require.Equal(t, []SpeakStatus{SpeakStart}, s.speaks)
	require.True(t, s.est.Speaking())
	for _, res := range s.results[w:] {
		assert.True(t, res.Voiced, "loud tone frame should pass the gate")
	}

	// Silence for the stop timeout plus the time the window needs to drain
	timeout := s.est.Config().SpeakStopTimeout
	quiet := int(timeout/s.step) + w + 2
	s.silence(t, quiet)

	assert.Equal(t, []SpeakStatus{SpeakStart, SpeakStop}, s.speaks)
	require.NotEmpty(t, s.vowels)
	assert.Equal(t, LabelClosed, s.vowels[len(s.vowels)-1])
	assert.False(t, s.est.Speaking())

	// Handlers and Result.Events agree
	var fromResults []Event
	for _, res := range s.results {
		fromResults = append(fromResults, res.Events...)
	}
	assert.Equal(t, s.speaks, speakStatuses(fromResults))
	assert.Equal(t, s.vowels, vowels(fromResults))
}

func TestEstimator_HistoryLength(t *testing.T) {
	s := newSession(t)
	tone := audioio.NewTone(300, 0.4, 44100)
	for i := 0; i < 45; i++ {
		if i%3 == 0 {
			s.silence(t, 1)
		} else {
			s.tone(t, tone, 1)
		}
		assert.Len(t, s.est.History(), 20)
	}
}

func TestEstimator_PathologicalFrames(t *testing.T) {
	s := newSession(t)

	constant := make([]float64, 1024)
	for i := range constant {
		constant[i] = 0.3
	}
	impulse := make([]float64, 1024)
	impulse[512] = 1

	for _, frame := range [][]float64{constant, impulse, constant} {
		res := s.process(t, frame)
		assert.False(t, math.IsNaN(res.Formants.F1))
		assert.False(t, math.IsNaN(res.Formants.F2))
		assert.False(t, math.IsNaN(res.Volume))
		for _, p := range res.Formants.Peaks {
			assert.GreaterOrEqual(t, p, MinFormantHz)
			assert.LessOrEqual(t, p, MaxFormantHz)
		}
	}
}

func TestEstimator_RecoversFromNaNFrame(t *testing.T) {
	s := newSession(t)

	bad := make([]float64, 1024)
	bad[3] = math.NaN()
	res := s.process(t, bad)
	assert.False(t, res.Voiced)
	assert.Equal(t, Unvoiced, res.Observation)

	_, _, threshold := s.est.Thresholds()
	assert.False(t, math.IsNaN(threshold))

	s.tone(t, audioio.NewTone(440, 0.5, 44100), 20)
	assert.Equal(t, []SpeakStatus{SpeakStart}, s.speaks)
	assert.True(t, s.results[len(s.results)-1].Voiced)
}

func TestEstimator_FrameLength(t *testing.T) {
	s := newSession(t)

	_, err := s.est.Process(make([]float64, 512), s.now)
	assert.ErrorIs(t, err, ErrFrameLength)

	_, err = s.est.ProcessFloat32(make([]float32, 2048), s.now)
	assert.ErrorIs(t, err, ErrFrameLength)
}

func TestEstimator_ProcessFloat32MatchesFloat64(t *testing.T) {
	a := newSession(t)
	b := newSession(t)

	samples := audioio.NewTone(700, 0.5, 44100).Next(1024)
	single := make([]float32, len(samples))
	double := make([]float64, len(samples))
	for i, v := range samples {
		single[i] = float32(v)
		double[i] = float64(single[i])
	}

	ra, err := a.est.ProcessFloat32(single, a.now)
	require.NoError(t, err)
	rb, err := b.est.Process(double, b.now)
	require.NoError(t, err)

	assert.Equal(t, rb.Volume, ra.Volume)
	assert.Equal(t, rb.Formants, ra.Formants)
	assert.Equal(t, rb.Observation, ra.Observation)
}

func TestEstimator_DoesNotRetainFrame(t *testing.T) {
	s := newSession(t)
	frame := audioio.NewTone(440, 0.5, 44100).Next(1024)
	orig := append([]float64(nil), frame...)

	s.process(t, frame)
	assert.Equal(t, orig, frame, "input frame must not be modified")
}

func TestEstimator_Reset(t *testing.T) {
	s := newSession(t)
	s.tone(t, audioio.NewTone(440, 0.5, 44100), 20)
	require.True(t, s.est.Speaking())

	s.est.Reset()
	assert.False(t, s.est.Speaking())
	under, above, threshold := s.est.Thresholds()
	assert.Equal(t, 1e-5, under)
	assert.Equal(t, 1e-4, above)
	assert.Equal(t, 1e-6, threshold)
	for _, obs := range s.est.History() {
		assert.Equal(t, Unvoiced, obs)
	}
}

func TestEstimator_ID(t *testing.T) {
	a := newSession(t)
	b := newSession(t)
	assert.Len(t, a.est.ID(), 36)
	assert.NotEqual(t, a.est.ID(), b.est.ID())
}
