// vowelscan - run the vowel estimator over recorded or synthetic audio
// and print the mouth-shape event stream as JSON lines.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teslashibe/go-lipsync/internal/config"
	"github.com/teslashibe/go-lipsync/internal/log"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	stats      bool
	frames     bool
	drain      bool

	cfg *config.Config
}

func main() {
	// Handle Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "vowelscan",
		Short: "Estimate mouth shapes from speech audio",
		Long: `vowelscan runs the LPC formant vowel estimator over a WAV file or a
synthetic tone and writes one JSON message per event to stdout.
Timestamps are milliseconds from the start of the audio.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&opts.stats, "stats", false, "print a metrics summary to stderr when done")
	pf.BoolVar(&opts.frames, "frames", false, "also print per-frame formant messages")
	pf.BoolVar(&opts.drain, "drain", true, "feed silence at the end until speaking stops")

	root.AddCommand(
		newAnalyzeCmd(opts),
		newToneCmd(opts),
		newPCMCmd(opts),
		newClassifyCmd(),
	)
	return root
}

// load reads the config file (or defaults) and sets up logging.
func (o *options) load() error {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg = config.Default()
		if err = config.ApplyEnv(cfg); err == nil {
			err = config.Validate(cfg)
		}
	}
	if err != nil {
		return err
	}

	level := string(cfg.Log.Level)
	if o.logLevel != "" {
		level = o.logLevel
	}
	json, ok := cfg.JSONLogs()
	if !ok {
		json = log.JSONEnabled()
	}
	log.Configure(level, json)

	o.cfg = cfg
	return nil
}
