package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/teslashibe/go-lipsync/internal/log"
	"github.com/teslashibe/go-lipsync/pkg/audioio"
)

const (
	// pcmBlock is the number of bytes read from the input per chunk.
	pcmBlock = 8192

	// maxChannels keeps at least one sample frame per block.
	maxChannels = pcmBlock / 2
)

func newPCMCmd(opts *options) *cobra.Command {
	var (
		rate     int
		channels int
	)

	cmd := &cobra.Command{
		Use:   "pcm",
		Short: "Run the estimator over raw PCM16 little-endian audio on stdin",
		Example: `  arecord -f S16_LE -r 16000 -c 1 -t raw | vowelscan pcm --rate 16000
  ffmpeg -i talk.mp3 -f s16le -ac 2 -ar 44100 - | vowelscan pcm --channels 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rate <= 0 {
				return fmt.Errorf("rate must be positive, got %d", rate)
			}
			if channels <= 0 || channels > maxChannels {
				return fmt.Errorf("channels must be in [1, %d], got %d", maxChannels, channels)
			}

			target := opts.cfg.SampleRate(rate)
			log.Info("reading pcm",
				"source_rate", rate,
				"channels", channels,
				"sample_rate", target,
			)
			return opts.scan(cmd, target, readPCM(cmd.InOrStdin(), rate, channels, target))
		},
	}

	f := cmd.Flags()
	f.IntVar(&rate, "rate", 44100, "input sample rate in Hz")
	f.IntVar(&channels, "channels", 1, "interleaved input channels")
	return cmd
}

// readPCM decodes interleaved PCM16 from r chunk by chunk. Bytes of a
// sample frame split across reads are carried over to the next chunk, and
// one resampler spans the whole stream.
func readPCM(r io.Reader, rate, channels, target int) source {
	return func(ctx context.Context, feed func([]float64) error) error {
		align := 2 * channels
		buf := make([]byte, max(align, pcmBlock-pcmBlock%align))
		resampler := audioio.NewResampler(rate, target)
		var (
			chunk audioio.AudioChunk
			carry int
		)
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := io.ReadFull(r, buf[carry:])
			n += carry
			eof := errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
			if err != nil && !eof {
				return fmt.Errorf("read pcm: %w", err)
			}

			whole := n - n%align
			if whole > 0 {
				chunk.FromBytes(buf[:whole], rate, channels)
				samples := resampler.Process(chunk.Mono())
				if ferr := feed(samples); ferr != nil {
					return ferr
				}
			}
			carry = copy(buf, buf[whole:n])

			if eof {
				if carry > 0 {
					log.Warn("dropping trailing partial sample frame", "bytes", carry)
				}
				return nil
			}
		}
	}
}
