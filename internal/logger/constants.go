package logger

// Log level names accepted in LOG_LEVEL
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log formats accepted in LOG_FORMAT
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Components tag which binary wrote a line when the api and the bot share a log sink
const (
	ComponentAPI     = "api"
	ComponentDiscord = "discord"
	ComponentCLI     = "cli"
)

// EnvironmentDev enables source locations
const EnvironmentDev = "dev"

// Log attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyComponent   = "component"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
