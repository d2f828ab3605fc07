package vowel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope for estimator metrics.
const meterName = "github.com/teslashibe/go-lipsync/pkg/vowel"

// Metrics holds the OpenTelemetry instruments updated by an Estimator.
// A nil *Metrics records nothing.
type Metrics struct {
	// Frames counts processed frames. Attribute: voiced (bool).
	Frames metric.Int64Counter

	// Vowels counts emitted vowel events. Attribute: label.
	Vowels metric.Int64Counter

	// SpeakTransitions counts speak start/stop events. Attribute: status.
	SpeakTransitions metric.Int64Counter

	// ProcessDuration tracks the time spent in Process per frame.
	ProcessDuration metric.Float64Histogram
}

// processBuckets are in milliseconds; one 1024-sample frame at 44.1kHz
// is about 23ms.
var processBuckets = []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 23, 50}

// NewMetrics creates the estimator instruments from mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Frames, err = m.Int64Counter("lipsync.frames",
		metric.WithDescription("Frames processed by the vowel estimator."),
	); err != nil {
		return nil, err
	}
	if met.Vowels, err = m.Int64Counter("lipsync.vowels",
		metric.WithDescription("Vowel events emitted, by label."),
	); err != nil {
		return nil, err
	}
	if met.SpeakTransitions, err = m.Int64Counter("lipsync.speak.transitions",
		metric.WithDescription("Speak start and stop transitions."),
	); err != nil {
		return nil, err
	}
	if met.ProcessDuration, err = m.Float64Histogram("lipsync.process.duration",
		metric.WithDescription("Time spent estimating one frame."),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(processBuckets...),
	); err != nil {
		return nil, err
	}
	return met, nil
}

func (m *Metrics) record(ctx context.Context, voiced bool, events []Event, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Frames.Add(ctx, 1, metric.WithAttributes(attribute.Bool("voiced", voiced)))
	m.ProcessDuration.Record(ctx, float64(elapsed)/float64(time.Millisecond))
	for _, ev := range events {
		switch ev.Kind {
		case EventVowel:
			m.Vowels.Add(ctx, 1, metric.WithAttributes(attribute.String("label", string(ev.Vowel))))
		case EventSpeakStatus:
			m.SpeakTransitions.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(ev.Status))))
		}
	}
}
