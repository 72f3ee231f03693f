// Package nycdb defines the contracts between the command layer and the
// components that do the actual work on datasets.
package nycdb

import (
	"context"

	"github.com/nycdb/nycdb/pkg/config"
)

// Dataset performs operations on one named dataset.
// Instances are created per operation and are not reused.
type Dataset interface {
	// Name returns the registry name of the dataset.
	Name() string

	// Download fetches the dataset files into the root directory.
	Download(ctx context.Context) error

	// Load imports the dataset into PostgreSQL. It fails if any of the
	// dataset tables already exist.
	Load(ctx context.Context) error

	// Reload drops the dataset tables and imports them again.
	Reload(ctx context.Context) error

	// Verify compares table row counts with expected values.
	// A false result is an ordinary outcome, an error means the check
	// itself could not run.
	Verify(ctx context.Context) (bool, error)

	// Dump writes an SQL dump of the dataset tables to the current
	// directory.
	Dump(ctx context.Context) error
}

// Registry maps dataset names to Dataset instances.
type Registry interface {
	// Names returns all dataset names in a stable order.
	Names() []string

	// Dataset creates the Dataset with the given name. Unknown names
	// produce an error.
	Dataset(name string, cfg *config.Config) (Dataset, error)
}

// ShellRunner starts an interactive database client.
type ShellRunner interface {
	// Run blocks until the client exits and returns its exit code.
	// The error is set only when the client could not be started.
	Run(ctx context.Context, db config.DatabaseConfig) (int, error)
}
