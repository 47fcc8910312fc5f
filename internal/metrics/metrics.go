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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PlotsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlotsClaimed,
			Help: HelpTextPlotsClaimed,
		},
	)

	SeedsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSeedsPurchased,
			Help: HelpTextSeedsPurchased,
		},
		[]string{LabelSeed},
	)

	SeedsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSeedsPlanted,
			Help: HelpTextSeedsPlanted,
		},
		[]string{LabelSeed},
	)

	PlantsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsHarvested,
			Help: HelpTextPlantsHarvested,
		},
		[]string{LabelSeed},
	)

	PlantsGrown = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlantsGrown,
			Help: HelpTextPlantsGrown,
		},
	)

	PlantsRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlantsRemoved,
			Help: HelpTextPlantsRemoved,
		},
	)

	CoinsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsEarned,
			Help: HelpTextCoinsEarned,
		},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)
)
