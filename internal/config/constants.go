package config

import "time"

// Preference store backends
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Defaults
const (
	DefaultPort                = 8080
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "text"
	DefaultEnvironment         = "dev"
	DefaultServiceName         = "gla-tools"
	DefaultVersion             = "dev"
	DefaultLocale              = "pt-BR"
	DefaultPreferenceStore     = StoreMemory
	DefaultPreferenceCacheSize = 128
	DefaultSQLitePath          = "gla_preferences.db"
	DefaultDBMaxConns          = 20
	DefaultDiscordHealthPort   = 8082
	DefaultRateLimit           = 1000
	DefaultRateWindow          = 5 * time.Minute
)

// ValidStores lists the accepted PREFERENCE_STORE values
var ValidStores = []string{StoreMemory, StorePostgres, StoreSQLite}
