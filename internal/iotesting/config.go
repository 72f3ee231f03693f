// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nycdb/nycdb/internal/ioconfig"
	"github.com/nycdb/nycdb/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "nycdb_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// Connection settings come from NYCDB_POSTGRES_* variables (or .env),
// the database name is always TestDatabaseName.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig(t)
//	    // ... use cfg for database operations
//	}
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Resolve(ioconfig.EnvLookup(".env"), nil, nil)
	cfg.Database.Database = TestDatabaseName
	cfg.RootDir = t.TempDir()
	cfg.HomeDir = t.TempDir()
	cfg.HideProgress = true
	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	cfg := GetTestConfig(t)
	return &cfg.Database
}

// WriteDataFile writes a data file for a dataset under rootDir and
// returns its path.
func WriteDataFile(t *testing.T, rootDir, dataset, name, content string) string {
	t.Helper()

	dir := filepath.Join(rootDir, dataset)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create dataset dir: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write data file: %v", err)
	}
	return path
}
