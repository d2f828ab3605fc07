package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"

	"github.com/teslashibe/go-lipsync/internal/log"
	"github.com/teslashibe/go-lipsync/pkg/audioio"
)

func newAnalyzeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file.wav>",
		Short: "Run the estimator over a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clip, err := audioio.ReadWAV(args[0])
			if err != nil {
				return err
			}

			rate := opts.cfg.SampleRate(clip.SampleRate)
			samples := audioio.Resample(clip.Samples, clip.SampleRate, rate)

			log.Info("analyzing wav",
				"path", args[0],
				"duration", clip.Duration(),
				"source_rate", clip.SampleRate,
				"sample_rate", rate,
			)
			return opts.scan(cmd, rate, feedAll(samples))
		},
	}
}

// source pushes mono samples at the session rate into feed until the
// input is exhausted.
type source func(ctx context.Context, feed func([]float64) error) error

func feedAll(samples []float64) source {
	return func(ctx context.Context, feed func([]float64) error) error {
		return feed(samples)
	}
}

// scan runs one estimator session over src and prints the result.
func (o *options) scan(cmd *cobra.Command, sampleRate int, src source) error {
	ctx := cmd.Context()
	logger := log.With("cmd", cmd.Name())

	var (
		stats *statsCollector
		mp    metric.MeterProvider
	)
	if o.stats {
		stats = newStatsCollector()
		mp = stats.provider
		defer stats.Shutdown(context.Background())
	}

	s, err := newScanner(o.cfg, sampleRate, cmd.OutOrStdout(), o.frames, mp, logger)
	if err != nil {
		return err
	}

	started := time.Now()
	feed := func(samples []float64) error {
		return s.feed(ctx, samples)
	}
	if err := src(ctx, feed); err != nil {
		return err
	}
	if err := s.finish(ctx, o.drain); err != nil {
		return err
	}
	logger.Info("scan complete",
		"frames", s.processed,
		"messages", s.messages,
		"elapsed", time.Since(started),
	)

	if stats != nil {
		return stats.Write(ctx, cmd.ErrOrStderr())
	}
	return nil
}
