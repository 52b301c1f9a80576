package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type FillerMetrics struct {
	*BundleMetrics

	startTimeGauge metric.Int64ObservableGauge
}

// NewFillerMetrics creates an instance of metrics for the filler labeled with
// env, filler address and version
func NewFillerMetrics(ctx context.Context, meter metric.Meter, env, filler, version string) (*FillerMetrics, error) {
	opts := metric.WithAttributes(
		attribute.String("env", env),
		attribute.String("filler", filler),
		attribute.String("version", version),
	)

	startTime := time.Now().Unix()
	startTimeGauge, err := meter.Int64ObservableGauge(
		"filler.StartTimeSeconds",
		metric.WithDescription("Start time of the filler process"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(startTime, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	bundleMetrics, err := NewBundleMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}

	return &FillerMetrics{
		BundleMetrics:  bundleMetrics,
		startTimeGauge: startTimeGauge,
	}, nil
}
