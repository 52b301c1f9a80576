package metrics_test

import (
	"context"
	"testing"

	"github.com/sprintertech/signet-orders/metrics"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/metric/noop"
)

type FillerMetricsTestSuite struct {
	suite.Suite

	metrics *metrics.FillerMetrics
}

func TestRunFillerMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(FillerMetricsTestSuite))
}

func (s *FillerMetricsTestSuite) SetupTest() {
	m, err := metrics.NewFillerMetrics(context.Background(), noop.NewMeterProvider().Meter("test"), "test", "0x1", "0.0.1")
	s.Nil(err)
	s.metrics = m
}

func (s *FillerMetricsTestSuite) Test_Tracking() {
	s.metrics.TrackOpenOrders(3)
	s.metrics.TrackBundleSubmitted()
	s.metrics.TrackRelayRejection()
	s.metrics.TrackBundleMined(2)
	s.metrics.TrackBundleMissed()
}

func (s *FillerMetricsTestSuite) Test_Round() {
	s.metrics.StartRound("round")
	s.metrics.EndRound("round")
	s.metrics.EndRound("missing")
}
