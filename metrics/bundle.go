package metrics

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/metric"
)

const (
	ROUND_TTL = time.Minute * 10
)

type BundleMetrics struct {
	opts metric.MeasurementOption

	bundlesSubmittedCounter metric.Int64Counter
	bundlesMinedCounter     metric.Int64Counter
	bundlesMissedCounter    metric.Int64Counter
	relayRejectionsCounter  metric.Int64Counter
	ordersFilledCounter     metric.Int64Counter
	openOrdersGauge         metric.Int64ObservableGauge
	openOrderCount          *int64

	roundTimeHistogram  metric.Float64Histogram
	roundStartTimeCache *ttlcache.Cache[string, time.Time]
}

// NewBundleMetrics initializes metrics related to fill rounds and bundles
func NewBundleMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*BundleMetrics, error) {
	bundlesSubmittedCounter, err := meter.Int64Counter(
		"filler.BundlesSubmitted",
		metric.WithDescription("Number of bundles accepted by the transaction cache"))
	if err != nil {
		return nil, err
	}
	bundlesMinedCounter, err := meter.Int64Counter(
		"filler.BundlesMined",
		metric.WithDescription("Number of bundles mined in their target block"))
	if err != nil {
		return nil, err
	}
	bundlesMissedCounter, err := meter.Int64Counter(
		"filler.BundlesMissed",
		metric.WithDescription("Number of bundles that missed their target block"))
	if err != nil {
		return nil, err
	}
	relayRejectionsCounter, err := meter.Int64Counter(
		"filler.RelayRejections",
		metric.WithDescription("Number of submissions rejected by the transaction cache"))
	if err != nil {
		return nil, err
	}
	ordersFilledCounter, err := meter.Int64Counter(
		"filler.OrdersFilled",
		metric.WithDescription("Number of orders settled by mined bundles"))
	if err != nil {
		return nil, err
	}

	openOrderCount := new(int64)
	openOrdersGauge, err := meter.Int64ObservableGauge(
		"filler.OpenOrders",
		metric.WithInt64Callback(func(context context.Context, result metric.Int64Observer) error {
			result.Observe(*openOrderCount, opts)
			return nil
		}),
		metric.WithDescription("Open orders seen in the latest discovery snapshot"),
	)
	if err != nil {
		return nil, err
	}

	roundTimeHistogram, err := meter.Float64Histogram("filler.RoundTime")
	if err != nil {
		return nil, err
	}

	return &BundleMetrics{
		opts:                    opts,
		bundlesSubmittedCounter: bundlesSubmittedCounter,
		bundlesMinedCounter:     bundlesMinedCounter,
		bundlesMissedCounter:    bundlesMissedCounter,
		relayRejectionsCounter:  relayRejectionsCounter,
		ordersFilledCounter:     ordersFilledCounter,
		openOrdersGauge:         openOrdersGauge,
		openOrderCount:          openOrderCount,
		roundTimeHistogram:      roundTimeHistogram,
		roundStartTimeCache: ttlcache.New(
			ttlcache.WithTTL[string, time.Time](ROUND_TTL),
		),
	}, nil
}

func (m *BundleMetrics) TrackOpenOrders(count int) {
	*m.openOrderCount = int64(count)
}

func (m *BundleMetrics) TrackBundleSubmitted() {
	m.bundlesSubmittedCounter.Add(context.Background(), 1, m.opts)
}

func (m *BundleMetrics) TrackRelayRejection() {
	m.relayRejectionsCounter.Add(context.Background(), 1, m.opts)
}

func (m *BundleMetrics) TrackBundleMined(filledCount int) {
	m.bundlesMinedCounter.Add(context.Background(), 1, m.opts)
	m.ordersFilledCounter.Add(context.Background(), int64(filledCount), m.opts)
}

func (m *BundleMetrics) TrackBundleMissed() {
	m.bundlesMissedCounter.Add(context.Background(), 1, m.opts)
}

func (m *BundleMetrics) StartRound(roundID string) {
	m.roundStartTimeCache.Set(roundID, time.Now(), ttlcache.DefaultTTL)
}

func (m *BundleMetrics) EndRound(roundID string) {
	startTime := m.roundStartTimeCache.Get(roundID)
	if startTime == nil {
		log.Warn().Msgf("Round start time with ID %s not found", roundID)
		return
	}

	m.roundStartTimeCache.Delete(roundID)
	m.roundTimeHistogram.Record(context.Background(), time.Since(startTime.Value()).Seconds(), m.opts)
}
