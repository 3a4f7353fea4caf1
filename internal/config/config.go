package config // package config loads application configuration from environment variables

import (
	"os"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The storage section supports two drivers:
// the default embedded SQLite file and an optional MySQL server for
// deployments that outgrow a local file.
type Config struct {
	Env      string // application environment (e.g. "dev", "prod")
	Port     string // HTTP port to listen on
	DBDriver string // "sqlite" (default) or "mysql"
	DBPath   string // path of the SQLite database file (sqlite driver)
	DBUser   string // database username (mysql driver)
	DBPass   string // database password (optional, mysql driver)
	DBHost   string // database host address (mysql driver)
	DBPort   string // database port number (mysql driver)
	DBName   string // database name (mysql driver)
}

// Load reads configuration values from environment variables and
// returns a Config.  Every value has a default suited to local
// development, so a bare `go run ./cmd/server` works against a fresh
// SQLite file in the working directory.
func Load() Config {
	return Config{
		Env:      getenv("APP_ENV", "dev"),
		Port:     getenv("APP_PORT", "8080"),
		DBDriver: getenv("DB_DRIVER", "sqlite"),
		DBPath:   getenv("DB_PATH", "festival.db"),
		DBUser:   getenv("DB_USER", "festival"),
		DBPass:   os.Getenv("DB_PASS"), // empty allowed
		DBHost:   getenv("DB_HOST", "localhost"),
		DBPort:   getenv("DB_PORT", "3306"),
		DBName:   getenv("DB_NAME", "festival"),
	}
}

// getenv retrieves an environment variable, falling back to a default
// when it is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
