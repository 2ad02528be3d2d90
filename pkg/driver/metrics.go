package driver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
)

const (
	metricsNamespace = "messages"
	metricsSubsystem = "driver"

	// MetricsPath is the route the metrics server exposes the default
	// prometheus registry on.
	MetricsPath = "/metrics"

	metricsShutdownTimeout = 5 * time.Second
)

var (
	scenarioRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "scenario_runs_total",
			Help:      "Total number of scenarios by outcome.",
		},
		[]string{"scenario", "status"},
	)

	scenarioDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "scenario_duration_seconds",
			Help:      "Wall time of executed scenarios.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 50, 100},
		},
		[]string{"scenario"},
	)
)

// ServeMetrics starts a metrics server on addr which stops once ctx is done.
// It returns the address the server listens on, which differs from addr
// when addr asks for an ephemeral port.
func ServeMetrics(ctx context.Context, addr string, logger polylog.Logger) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error().Err(err).Msg("failed to listen on address for metrics")
		return nil, ErrDriverMetricsServer.Wrapf("listening on %q: %v", addr, err)
	}

	router := chi.NewRouter()
	router.Handle(MetricsPath, promhttp.Handler())
	server := &http.Server{Handler: router, ReadHeaderTimeout: metricsShutdownTimeout}

	go func() {
		logger.Info().Str("endpoint", ln.Addr().String()).Msg("serving metrics")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("metrics server shutdown")
		}
	}()

	return ln.Addr(), nil
}
