package tx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "messages"
	metricsSubsystem = "tx"
)

const (
	statusSuccess    = "success"
	statusCheckTx    = "check_tx_error"
	statusDeliverTx  = "deliver_tx_error"
	statusTimeout    = "timeout"
	statusFailure    = "failure"
	statusQueryError = "error"
)

var (
	txBroadcastsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "broadcasts_total",
			Help:      "Total number of transaction broadcasts",
		},
		[]string{"msg_type", "status"},
	)

	txBroadcastLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "broadcast_latency_seconds",
			Help:      "Latency from signing a transaction to its inclusion, in seconds",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 100},
		},
		[]string{"msg_type"},
	)

	txGasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "gas_used",
			Help:      "Gas used by included transactions",
			Buckets:   prometheus.ExponentialBuckets(50_000, 2, 10),
		},
		[]string{"msg_type"},
	)

	smartQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "wasm",
			Name:      "smart_queries_total",
			Help:      "Total number of smart contract queries",
		},
		[]string{"status"},
	)
)
