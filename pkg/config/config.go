// Package config provides configuration management for NYCDB.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > config file section >
// NYCDB_POSTGRES_* environment variables > built-in defaults.
//
// Every field is resolved on its own, so a config file that only sets
// host keeps user, password, database and port from the environment.
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - The environment is read through an injected Lookup, never directly
//
// # Environment Variables
//
//	NYCDB_POSTGRES_USER      (default: nycdb)
//	NYCDB_POSTGRES_PASSWORD  (default: nycdb)
//	NYCDB_POSTGRES_HOST      (default: 127.0.0.1)
//	NYCDB_POSTGRES_DB        (default: nycdb)
//	NYCDB_POSTGRES_PORT      (default: 5432)
package config

import (
	"net"
	"net/url"
)

// Config represents the complete NYCDB configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig

	// RootDir is the directory where downloaded dataset files are kept.
	// Each dataset gets its own subdirectory.
	RootDir string

	// HideProgress disables progress bars during download and load.
	HideProgress bool

	// ConfigSection is the section of the config file to read.
	ConfigSection string

	// ConfigPath is the path to the config file.
	ConfigPath string

	Log LogConfig

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
// All fields are strings and none of them is empty after resolution.
type DatabaseConfig struct {
	// User is the PostgreSQL database username.
	User string

	// Password is the PostgreSQL database password.
	Password string

	// Host is the PostgreSQL server hostname or IP address.
	Host string

	// Database is the PostgreSQL database name to connect to.
	Database string

	// Port is the PostgreSQL server port.
	Port string
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string
}

// New creates a Config with the literal default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			User:     DefaultUser,
			Password: DefaultPassword,
			Host:     DefaultHost,
			Database: DefaultDatabase,
			Port:     DefaultPort,
		},
		RootDir: DefaultRootDir,
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

// URL returns a postgres:// connection URL for the database.
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, d.Port),
		Path:   "/" + d.Database,
	}
	return u.String()
}

// Redacted returns the connection URL with the password hidden.
// It is safe for logs.
func (d DatabaseConfig) Redacted() string {
	u, err := url.Parse(d.URL())
	if err != nil {
		return ""
	}
	return u.Redacted()
}
