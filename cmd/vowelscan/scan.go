package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/teslashibe/go-lipsync/internal/config"
	"github.com/teslashibe/go-lipsync/pkg/audioio"
	"github.com/teslashibe/go-lipsync/pkg/protocol"
	"github.com/teslashibe/go-lipsync/pkg/vowel"
)

// feedChunk is how many samples are handed to the framer at a time.
const feedChunk = 4096

// scanner drives one estimator session over a mono sample stream and
// writes protocol messages to out.
type scanner struct {
	est        *vowel.Estimator
	framer     *audioio.Framer
	enc        *json.Encoder
	logger     *slog.Logger
	sampleRate int
	frameSize  int
	frames     bool

	// Stream time zero; message timestamps are offsets from it.
	start time.Time

	processed int
	messages  int
	err       error
}

func newScanner(cfg *config.Config, sampleRate int, out io.Writer, frames bool, mp metric.MeterProvider, logger *slog.Logger) (*scanner, error) {
	ecfg := cfg.Estimator
	ecfg.SampleRate = sampleRate

	opts := []vowel.Option{vowel.WithLogger(logger)}
	if mp != nil {
		m, err := vowel.NewMetrics(mp)
		if err != nil {
			return nil, fmt.Errorf("create metrics: %w", err)
		}
		opts = append(opts, vowel.WithMetrics(m))
	}

	est, err := vowel.NewEstimator(ecfg, opts...)
	if err != nil {
		return nil, err
	}

	return &scanner{
		est:        est,
		framer:     audioio.NewFramer(cfg.Input.FrameSize, cfg.Input.HopSize),
		enc:        json.NewEncoder(out),
		logger:     logger.With("session", est.ID()),
		sampleRate: sampleRate,
		frameSize:  ecfg.FrameSize,
		frames:     frames,
		start:      time.UnixMilli(0),
	}, nil
}

// feed pushes samples through the framer in chunks, stopping early when
// ctx is cancelled or a frame fails.
func (s *scanner) feed(ctx context.Context, samples []float64) error {
	for len(samples) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := min(feedChunk, len(samples))
		s.framer.Write(samples[:n], s.handle)
		if s.err != nil {
			return s.err
		}
		samples = samples[n:]
	}
	return nil
}

// finish flushes the partial frame and, when drain is set, keeps feeding
// silence until the session stops speaking.
func (s *scanner) finish(ctx context.Context, drain bool) error {
	s.framer.Flush(s.handle)
	if s.err != nil || !drain {
		return s.err
	}

	cfg := s.est.Config()
	limit := cfg.VowelWindow + 2
	if d := cfg.FrameDuration(); d > 0 {
		limit += int(cfg.SpeakStopTimeout / d)
	}
	silence := audioio.Silence(s.frameSize)
	for i := 0; i < limit && s.est.Speaking(); i++ {
		if err := s.feed(ctx, silence); err != nil {
			return err
		}
	}
	if s.est.Speaking() {
		s.logger.Warn("still speaking after drain", "frames", limit)
	}
	return nil
}

func (s *scanner) handle(fr audioio.Frame) {
	if s.err != nil {
		return
	}
	at := audioio.SampleTime(s.start, fr.Offset, s.sampleRate)

	res, err := s.est.Process(fr.Samples, at)
	if err != nil {
		s.err = fmt.Errorf("frame at sample %d: %w", fr.Offset, err)
		return
	}
	s.processed++

	if s.frames {
		msg, err := protocol.NewFrameMessage(res, fr.Offset, at)
		if err != nil {
			s.err = err
			return
		}
		s.emit(msg)
	}
	for _, ev := range res.Events {
		msg, err := protocol.FromEvent(s.est.ID(), ev)
		if err != nil {
			s.err = err
			return
		}
		s.emit(msg)
	}
}

func (s *scanner) emit(msg *protocol.Message) {
	if s.err != nil {
		return
	}
	msg.Session = s.est.ID()
	if err := s.enc.Encode(msg); err != nil {
		s.err = fmt.Errorf("write message: %w", err)
		return
	}
	s.messages++
}
