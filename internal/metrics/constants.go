package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Calculator metric names
const (
	MetricNameCalculationsTotal      = "gla_calculations_total"
	MetricNameCalculationErrors      = "gla_calculation_errors_total"
	MetricNameCalculationDuration    = "gla_calculation_duration_seconds"
	MetricNameSimulationTrials       = "gla_simulation_trials_total"
	MetricNamePreferenceWrites       = "gla_preference_writes_total"
	MetricNamePreferenceWriteErrors  = "gla_preference_write_errors_total"
	MetricNameDiscordCommandsHandled = "gla_discord_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Calculator metric help text
const (
	HelpTextCalculationsTotal      = "Total number of calculations performed, by calculator"
	HelpTextCalculationErrors      = "Total number of rejected calculations, by calculator and reason"
	HelpTextCalculationDuration    = "Calculation latency in seconds, by calculator"
	HelpTextSimulationTrials       = "Total number of Monte Carlo trials run"
	HelpTextPreferenceWrites       = "Total number of preference save operations"
	HelpTextPreferenceWriteErrors  = "Total number of failed preference save operations"
	HelpTextDiscordCommandsHandled = "Total number of Discord slash commands handled, by command"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelCalculator = "calculator"
	LabelReason     = "reason"
	LabelCommand    = "command"
)

// UnmatchedRoute labels requests no route matched, so 404 probes don't mint new series
const UnmatchedRoute = "unmatched"

// Calculator label values
const (
	CalculatorExperience = "experience"
	CalculatorPotions    = "potions"
	CalculatorRecipe     = "recipe"
	CalculatorCrystals   = "crystals"
	CalculatorExpected   = "expected_crystals"
	CalculatorTransfer   = "transfer"
	CalculatorSimulation = "simulation"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets        = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
	CalculationLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5}
)
