package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the storage backend and the dashboard aggregation limits.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	SERVER_REQUEST_TIMEOUT=10s
//	STORAGE_DRIVER=postgres
//	STORAGE_SEED_FILE=
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=herdpulse
//	POSTGRES_SSLMODE=disable
//	DASHBOARD_REPO_TIMEOUT=3s
//	DASHBOARD_RECENT_ORDERS=5
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Storage   StorageConfig   // Which repository backend to use
	Postgres  PostgresConfig  // PostgreSQL connection settings
	Dashboard DashboardConfig // Aggregation tuning
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RequestTimeout time.Duration // Deadline attached to every request context
}

// StorageConfig selects the repository implementation.
//
// Driver is "postgres" (default) or "memory". The memory driver keeps records in
// process and is meant for local runs and demos; SeedFile, when set, is loaded
// into it at startup.
type StorageConfig struct {
	Driver   string
	SeedFile string
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// DashboardConfig tunes the metrics aggregation.
type DashboardConfig struct {
	RepoTimeout       time.Duration // Deadline for each repository read
	RecentOrdersLimit int           // How many recent orders the dashboard lists
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates
//     the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "10s")

	viper.SetDefault("STORAGE_DRIVER", DriverPostgres)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "herdpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("DASHBOARD_REPO_TIMEOUT", "3s")
	viper.SetDefault("DASHBOARD_RECENT_ORDERS", 5)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("SERVER_REQUEST_TIMEOUT"),
		},
		Storage: StorageConfig{
			Driver:   viper.GetString("STORAGE_DRIVER"),
			SeedFile: viper.GetString("STORAGE_SEED_FILE"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Dashboard: DashboardConfig{
			RepoTimeout:       viper.GetDuration("DASHBOARD_REPO_TIMEOUT"),
			RecentOrdersLimit: viper.GetInt("DASHBOARD_RECENT_ORDERS"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// DSN builds the PostgreSQL connection string used by database/sql.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// missingFields returns the names of required settings that are absent or invalid.
func missingFields(c Config) []string {
	var missing []string

	if c.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if c.Server.RequestTimeout <= 0 {
		missing = append(missing, "SERVER_REQUEST_TIMEOUT")
	}
	if c.Dashboard.RepoTimeout <= 0 {
		missing = append(missing, "DASHBOARD_REPO_TIMEOUT")
	}
	if c.Dashboard.RecentOrdersLimit <= 0 {
		missing = append(missing, "DASHBOARD_RECENT_ORDERS")
	}

	switch c.Storage.Driver {
	case DriverMemory:
		// no connection settings needed
	case DriverPostgres:
		if c.Postgres.Host == "" {
			missing = append(missing, "POSTGRES_HOST")
		}
		if c.Postgres.Port == 0 {
			missing = append(missing, "POSTGRES_PORT")
		}
		if c.Postgres.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if c.Postgres.Password == "" {
			missing = append(missing, "POSTGRES_PASSWORD")
		}
		if c.Postgres.DBName == "" {
			missing = append(missing, "POSTGRES_DB")
		}
	default:
		missing = append(missing, "STORAGE_DRIVER")
	}

	return missing
}

// validateConfig terminates the application if required settings are missing,
// avoiding unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	if missing := missingFields(AppConfig); len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
