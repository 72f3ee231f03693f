// Package iohistory keeps the load history table up to date.
// This is an impure I/O package that wraps GORM.
package iohistory

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/nycdb/nycdb/pkg/db"
	"github.com/nycdb/nycdb/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry describes a finished load run.
type Entry struct {
	Dataset  string
	Tables   []string
	Rows     int64
	Duration time.Duration
	Reload   bool
}

// Record stores a load run in the nycdb_loads table, creating the table
// if needed. It returns the ID of the new record.
func Record(ctx context.Context, op db.Operator, e Entry) (string, error) {
	gormDB, err := open(op)
	if err != nil {
		return "", err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return "", HistoryError(e.Dataset, err)
	}

	rec := schema.LoadRecord{
		ID:          uuid.NewString(),
		Dataset:     e.Dataset,
		Tables:      strings.Join(e.Tables, ","),
		Rows:        e.Rows,
		DurationSec: e.Duration.Seconds(),
		Reload:      e.Reload,
	}
	if err := gormDB.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", HistoryError(e.Dataset, err)
	}

	slog.Info("Load recorded",
		"id", rec.ID,
		"dataset", rec.Dataset,
		"rows", rec.Rows,
	)
	return rec.ID, nil
}

// Latest returns the most recent load record of a dataset, or nil if
// the dataset was never loaded.
func Latest(
	ctx context.Context,
	op db.Operator,
	dataset string,
) (*schema.LoadRecord, error) {
	exists, err := op.TableExists(ctx, schema.LoadRecord{}.TableName())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	gormDB, err := open(op)
	if err != nil {
		return nil, err
	}

	var recs []schema.LoadRecord
	err = gormDB.WithContext(ctx).
		Where("dataset = ?", dataset).
		Order("created_at DESC").
		Limit(1).
		Find(&recs).Error
	if err != nil {
		return nil, HistoryError(dataset, err)
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

func open(op db.Operator) (*gorm.DB, error) {
	pool := op.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, HistoryError("", err)
	}
	return gormDB, nil
}
