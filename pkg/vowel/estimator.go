package vowel

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teslashibe/go-lipsync/pkg/dsp"
)

// VowelHandler receives every emitted vowel label.
type VowelHandler func(Label)

// SpeakHandler receives every speak status transition.
type SpeakHandler func(SpeakStatus)

// Option configures an Estimator.
type Option func(*Estimator)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Estimator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithVowelHandler registers the vowel callback.
func WithVowelHandler(fn VowelHandler) Option {
	return func(e *Estimator) {
		e.onVowel = fn
	}
}

// WithSpeakHandler registers the speak status callback.
func WithSpeakHandler(fn SpeakHandler) Option {
	return func(e *Estimator) {
		e.onSpeak = fn
	}
}

// WithMetrics records per-frame metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(e *Estimator) {
		e.metrics = m
	}
}

// Result describes what Process did with one frame.
type Result struct {
	Volume      float64
	Voiced      bool
	Formants    Formants
	Observation Observation
	VoicedRatio float64
	Events      []Event
}

// Estimator runs the full pipeline for one audio session.
type Estimator struct {
	id      string
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics
	onVowel VowelHandler
	onSpeak SpeakHandler

	gate    *EnergyGate
	tracker *Tracker

	// Per-frame scratch, reused across calls
	window   dsp.Window
	input    []float64
	windowed []float64
	coeffs   []float64
	spectrum []complex128
	envelope []float64
}

// NewEstimator validates cfg and returns a ready estimator.
func NewEstimator(cfg Config, opts ...Option) (*Estimator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Estimator{
		id:       uuid.NewString(),
		cfg:      cfg,
		logger:   slog.Default(),
		gate:     NewEnergyGate(),
		tracker:  NewTracker(cfg.VowelWindow, cfg.SpeakingThreshold, cfg.SpeakStopTimeout, cfg.VowelLock),
		window:   dsp.NewHamming(cfg.FrameSize),
		input:    make([]float64, cfg.FrameSize),
		windowed: make([]float64, cfg.FrameSize),
		coeffs:   make([]float64, cfg.FrameSize),
		spectrum: make([]complex128, cfg.FrameSize),
		envelope: make([]float64, cfg.FrameSize),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("session", e.id)

	e.logger.Info("vowel estimator created",
		"sample_rate", cfg.SampleRate,
		"frame_size", cfg.FrameSize,
		"lpc_order", cfg.LPCOrder,
	)
	return e, nil
}

// ID returns the session identifier.
func (e *Estimator) ID() string {
	return e.id
}

// Config returns the estimator configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Process runs one frame through the pipeline at time now. Events are
// delivered to the registered handlers before Process returns and are
// also listed in the Result. frame is not retained.
func (e *Estimator) Process(frame []float64, now time.Time) (Result, error) {
	if len(frame) != e.cfg.FrameSize {
		return Result{}, fmt.Errorf("%w: expected %d samples, got %d", ErrFrameLength, e.cfg.FrameSize, len(frame))
	}
	start := time.Now()

	res := Result{
		Volume:      dsp.Energy(frame),
		Observation: Unvoiced,
	}
	res.Voiced = e.gate.Check(res.Volume)
	if res.Voiced {
		res.Formants, res.Observation = e.analyze(frame)
		res.Voiced = res.Observation.Voiced()
	}

	res.Events = e.tracker.Observe(nil, res.Observation, now)
	res.VoicedRatio = e.tracker.VoicedRatio()

	e.dispatch(res.Events)
	e.metrics.record(context.Background(), res.Voiced, res.Events, time.Since(start))
	return res, nil
}

// ProcessFloat32 is Process for single-precision frames.
func (e *Estimator) ProcessFloat32(frame []float32, now time.Time) (Result, error) {
	if len(frame) != e.cfg.FrameSize {
		return Result{}, fmt.Errorf("%w: expected %d samples, got %d", ErrFrameLength, e.cfg.FrameSize, len(frame))
	}
	for i, s := range frame {
		e.input[i] = float64(s)
	}
	return e.Process(e.input, now)
}

// analyze runs the spectral stages on a voiced frame.
func (e *Estimator) analyze(frame []float64) (Formants, Observation) {
	e.window.Apply(e.windowed, frame)
	if _, peak := dsp.Normalize(e.windowed, e.windowed); peak == 0 {
		return Formants{}, Unvoiced
	}

	r := dsp.Autocorrelate(e.windowed, e.cfg.LPCOrder)
	a, _ := dsp.LevinsonDurbin(r, e.cfg.LPCOrder)
	clear(e.coeffs)
	copy(e.coeffs, a)

	// Frame size is validated as a power of two at construction.
	env, err := dsp.EnvelopeInto(e.envelope, e.spectrum, e.coeffs)
	if err != nil {
		e.logger.Warn("spectral envelope failed", "error", err)
		return Formants{}, Unmatched
	}

	f := ExtractFormants(env, e.cfg.SampleRate)
	if idx := Classify(f.F1, f.F2); idx >= 0 {
		return f, Observation(idx)
	}
	return f, Unmatched
}

func (e *Estimator) dispatch(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventSpeakStatus:
			e.logger.Debug("speak status changed", "status", ev.Status, "at", ev.At)
			if e.onSpeak != nil {
				e.onSpeak(ev.Status)
			}
		case EventVowel:
			if e.onVowel != nil {
				e.onVowel(ev.Vowel)
			}
		}
	}
}

// Reset restores the initial session state without emitting events.
func (e *Estimator) Reset() {
	e.gate.Reset()
	e.tracker.Reset()
}

// Speaking reports whether the session is currently in the speaking state.
func (e *Estimator) Speaking() bool {
	return e.tracker.Speaking()
}

// History returns the observation window, oldest first. Its length is
// always the configured vowel window.
func (e *Estimator) History() []Observation {
	return e.tracker.History()
}

// Thresholds returns the energy gate's silence level, speech level and
// decision threshold.
func (e *Estimator) Thresholds() (under, above, threshold float64) {
	return e.gate.Levels()
}
