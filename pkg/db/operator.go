package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nycdb/nycdb/pkg/config"
)

// Operator defines basic database management operations.
// It provides connection lifecycle management and exposes the pgxpool.Pool
// for dataset loading (transactions, CopyFrom) and load history.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the public schema.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// RowCount returns the number of rows in a table.
	RowCount(ctx context.Context, tableName string) (int64, error)

	// DropTables drops the given tables if they exist.
	DropTables(ctx context.Context, tableNames ...string) error
}
