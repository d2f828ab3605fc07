package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// statsCollector wraps an in-process meter provider whose contents are
// printed once at exit.
type statsCollector struct {
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
}

func newStatsCollector() *statsCollector {
	reader := sdkmetric.NewManualReader()
	return &statsCollector{
		reader:   reader,
		provider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
	}
}

// Write collects the current metrics and prints them to w.
func (c *statsCollector) Write(ctx context.Context, w io.Writer) error {
	var rm metricdata.ResourceMetrics
	if err := c.reader.Collect(ctx, &rm); err != nil {
		return fmt.Errorf("collect metrics: %w", err)
	}
	writeStats(w, &rm)
	return nil
}

func (c *statsCollector) Shutdown(ctx context.Context) error {
	return c.provider.Shutdown(ctx)
}

func writeStats(w io.Writer, rm *metricdata.ResourceMetrics) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			var lines []string
			switch d := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range d.DataPoints {
					lines = append(lines, fmt.Sprintf("%-28s %-16s %d", m.Name, attrString(dp.Attributes), dp.Value))
				}
			case metricdata.Histogram[float64]:
				for _, dp := range d.DataPoints {
					var mean float64
					if dp.Count > 0 {
						mean = dp.Sum / float64(dp.Count)
					}
					lines = append(lines, fmt.Sprintf("%-28s %-16s count=%d mean=%.3f%s",
						m.Name, attrString(dp.Attributes), dp.Count, mean, m.Unit))
				}
			}
			slices.Sort(lines)
			for _, l := range lines {
				fmt.Fprintln(w, l)
			}
		}
	}
}

func attrString(set attribute.Set) string {
	if set.Len() == 0 {
		return "-"
	}
	parts := make([]string, 0, set.Len())
	iter := set.Iter()
	for iter.Next() {
		kv := iter.Attribute()
		parts = append(parts, string(kv.Key)+"="+kv.Value.Emit())
	}
	return strings.Join(parts, ",")
}
