package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teslashibe/go-lipsync/internal/log"
	"github.com/teslashibe/go-lipsync/pkg/audioio"
)

func newToneCmd(opts *options) *cobra.Command {
	var (
		freq     float64
		amp      float64
		duration float64
		silence  float64
	)

	cmd := &cobra.Command{
		Use:   "tone",
		Short: "Run the estimator over a synthetic tone framed by silence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if duration < 0 || silence < 0 {
				return fmt.Errorf("duration and silence must not be negative")
			}
			if amp < 0 || amp > 1 {
				return fmt.Errorf("amplitude must be between 0 and 1, got %v", amp)
			}

			rate := opts.cfg.SampleRate(opts.cfg.Estimator.SampleRate)
			pad := int(silence * float64(rate))
			tone := audioio.NewTone(freq, amp, rate)

			samples := make([]float64, 0, 2*pad+int(duration*float64(rate)))
			samples = append(samples, audioio.Silence(pad)...)
			samples = append(samples, tone.Next(int(duration*float64(rate)))...)
			samples = append(samples, audioio.Silence(pad)...)

			log.Info("generated tone",
				"freq", freq,
				"amp", amp,
				"duration", duration,
				"silence", silence,
				"sample_rate", rate,
			)
			return opts.scan(cmd, rate, feedAll(samples))
		},
	}

	f := cmd.Flags()
	f.Float64Var(&freq, "freq", 440, "tone frequency in Hz (0 for silence)")
	f.Float64Var(&amp, "amp", 0.5, "tone amplitude (0 to 1)")
	f.Float64Var(&duration, "duration", 1, "tone length in seconds")
	f.Float64Var(&silence, "silence", 0.5, "silence before and after the tone in seconds")
	return cmd
}
