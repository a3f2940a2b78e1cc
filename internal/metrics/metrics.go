package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Calculator Metrics
var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCalculationsTotal,
			Help: HelpTextCalculationsTotal,
		},
		[]string{LabelCalculator},
	)

	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCalculationErrors,
			Help: HelpTextCalculationErrors,
		},
		[]string{LabelCalculator, LabelReason},
	)

	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCalculationDuration,
			Help:    HelpTextCalculationDuration,
			Buckets: CalculationLatencyBuckets,
		},
		[]string{LabelCalculator},
	)

	SimulationTrials = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimulationTrials,
			Help: HelpTextSimulationTrials,
		},
	)
)

// Preference Metrics
var (
	PreferenceWrites = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePreferenceWrites,
			Help: HelpTextPreferenceWrites,
		},
	)

	PreferenceWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePreferenceWriteErrors,
			Help: HelpTextPreferenceWriteErrors,
		},
	)
)

// Discord Metrics
var DiscordCommandsHandled = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: MetricNameDiscordCommandsHandled,
		Help: HelpTextDiscordCommandsHandled,
	},
	[]string{LabelCommand},
)
