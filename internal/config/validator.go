package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// RequiredDiscordEnvVars lists the environment variables the Discord bot cannot start without
var RequiredDiscordEnvVars = []string{
	"DISCORD_TOKEN",
	"DISCORD_APP_ID",
}

// Validate checks the loaded values and reports every problem at once
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be in 1..65535, got %d", c.Port))
	}
	if !slices.Contains(ValidStores, c.PreferenceStore) {
		problems = append(problems, fmt.Sprintf("PREFERENCE_STORE must be one of %s, got %q",
			strings.Join(ValidStores, "|"), c.PreferenceStore))
	}
	if c.PreferenceCacheSize < 0 {
		problems = append(problems, "PREFERENCE_CACHE_SIZE must be >= 0")
	}

	switch c.PreferenceStore {
	case StorePostgres:
		var missing []string
		for name, v := range map[string]string{
			"DB_USER": c.DBUser, "DB_HOST": c.DBHost, "DB_PORT": c.DBPort, "DB_NAME": c.DBName,
		} {
			if v == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			problems = append(problems, "postgres store requires "+strings.Join(missing, ", "))
		}
		if c.DBMaxConns < 1 {
			problems = append(problems, "DB_MAX_CONNS must be >= 1")
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "sqlite store requires SQLITE_PATH")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateDiscordEnv checks that the Discord credentials are set
func ValidateDiscordEnv() error {
	var missing []string
	for _, envVar := range RequiredDiscordEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// Warnings returns non-critical issues with the configuration (like using example values)
func (c *Config) Warnings() []string {
	var warnings []string

	if c.PreferenceStore == StorePostgres && c.DBPassword == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.Environment == "prod" && c.PreferenceStore == StoreMemory {
		warnings = append(warnings, "PREFERENCE_STORE=memory loses remembered inputs on restart")
	}

	return warnings
}
