package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// Game data and formatting
	GameDataPath string // empty uses the embedded tables
	Locale       string

	// Preference storage
	PreferenceStore     string
	PreferenceCacheSize int
	PreferenceCacheTTL  time.Duration
	SQLitePath          string

	// Database
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Discord
	DiscordToken              string
	DiscordAppID              string
	DiscordGuildID            string
	DiscordForceCommandUpdate bool
	DiscordHealthPort         int

	// HTTP edge
	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		GameDataPath: getEnv("GAMEDATA_PATH", ""),
		Locale:       getEnv("LOCALE", DefaultLocale),

		PreferenceStore:     getEnv("PREFERENCE_STORE", DefaultPreferenceStore),
		PreferenceCacheSize: getEnvAsInt("PREFERENCE_CACHE_SIZE", DefaultPreferenceCacheSize),
		PreferenceCacheTTL:  getEnvAsDuration("PREFERENCE_CACHE_TTL", 10*time.Minute),
		SQLitePath:          getEnv("SQLITE_PATH", DefaultSQLitePath),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "glatools"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),

		DiscordToken:              getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:              getEnv("DISCORD_APP_ID", ""),
		DiscordGuildID:            getEnv("DISCORD_GUILD_ID", ""),
		DiscordForceCommandUpdate: getEnvAsBool("DISCORD_FORCE_COMMAND_UPDATE", false),
		DiscordHealthPort:         getEnvAsInt("DISCORD_HEALTH_PORT", DefaultDiscordHealthPort),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		RateLimit:      getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
		RateWindow:     getEnvAsDuration("RATE_WINDOW", DefaultRateWindow),

		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
