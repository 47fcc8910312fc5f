package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNamePlotsClaimed    = "plots_claimed_total"
	MetricNameSeedsPurchased  = "seeds_purchased_total"
	MetricNameSeedsPlanted    = "seeds_planted_total"
	MetricNamePlantsHarvested = "plants_harvested_total"
	MetricNamePlantsGrown     = "plants_grown_total"
	MetricNamePlantsRemoved   = "plants_removed_total"
	MetricNameCoinsEarned     = "coins_earned_total"
	MetricNameCoinsSpent      = "coins_spent_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextPlotsClaimed    = "Total number of plots claimed"
	HelpTextSeedsPurchased  = "Total number of seed unlocks purchased"
	HelpTextSeedsPlanted    = "Total number of seeds planted"
	HelpTextPlantsHarvested = "Total number of plants harvested"
	HelpTextPlantsGrown     = "Total number of plant growth level increases"
	HelpTextPlantsRemoved   = "Total number of plants removed by garden resets"
	HelpTextCoinsEarned     = "Total coins credited by harvests"
	HelpTextCoinsSpent      = "Total coins spent on seed purchases"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelSeed   = "seed"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Log message constants
const (
	LogMsgMetricsRecorded     = "Metrics recorded for event"
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
)
