package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"punchclock/internal/errors"
)

// Config holds all configuration options for the punchclock service
type Config struct {
	Database    DatabaseConfig
	Clock       ClockConfig
	Report      ReportConfig
	HTTP        HTTPConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir          string        // PUNCHCLOCK_DB_DIR
	Filename     string        // PUNCHCLOCK_DB_FILENAME
	QueryTimeout time.Duration // PUNCHCLOCK_DB_QUERY_TIMEOUT
}

// ClockConfig holds time resolution configuration
type ClockConfig struct {
	// TimeZone is the IANA zone all instants resolve in. Explicit
	// configuration, never ambient process state.
	TimeZone string // PUNCHCLOCK_TIMEZONE
}

// ReportConfig holds report presentation configuration
type ReportConfig struct {
	Language string // PUNCHCLOCK_REPORT_LANGUAGE, "en" or "es"
}

// HTTPConfig holds the chat-webhook transport configuration
type HTTPConfig struct {
	Addr string // PUNCHCLOCK_HTTP_ADDR
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool // PUNCHCLOCK_VERBOSE
}

// Load builds the configuration from defaults overridden by PUNCHCLOCK_*
// environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("punchclock")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	homeDir, _ := os.UserHomeDir()
	v.SetDefault("db.dir", filepath.Join(homeDir, ".punchclock"))
	v.SetDefault("db.filename", "punchclock.db")
	v.SetDefault("db.query_timeout", 10*time.Second)
	v.SetDefault("timezone", "UTC")
	v.SetDefault("report.language", "en")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("verbose", false)

	cfg := &Config{
		Database: DatabaseConfig{
			Dir:          v.GetString("db.dir"),
			Filename:     v.GetString("db.filename"),
			QueryTimeout: v.GetDuration("db.query_timeout"),
		},
		Clock: ClockConfig{
			TimeZone: v.GetString("timezone"),
		},
		Report: ReportConfig{
			Language: v.GetString("report.language"),
		},
		HTTP: HTTPConfig{
			Addr: v.GetString("http.addr"),
		},
		Application: ApplicationConfig{
			Verbose: v.GetBool("verbose"),
		},
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// EnsureDatabaseDir creates the database directory if it does not exist
func (c *Config) EnsureDatabaseDir() error {
	if err := os.MkdirAll(c.Database.Dir, 0o755); err != nil {
		return errors.NewPersistenceError("create database directory", err)
	}
	return nil
}

// Location resolves the configured time zone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Clock.TimeZone)
	if err != nil {
		return nil, errors.NewValidationError("invalid time zone "+c.Clock.TimeZone, err)
	}
	return loc, nil
}
