package iohistory_test

import (
	"context"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/nycdb/nycdb/internal/iodb"
	"github.com/nycdb/nycdb/internal/iohistory"
	"github.com/nycdb/nycdb/internal/iotesting"
	"github.com/nycdb/nycdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_NotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	_, err := iohistory.Record(context.Background(), op,
		iohistory.Entry{Dataset: "pluto"})
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}

func TestRecordAndLatest(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, iotesting.GetTestDatabaseConfig(t)))
	defer op.Close()
	require.NoError(t, op.DropTables(ctx, "nycdb_loads"))

	rec, err := iohistory.Latest(ctx, op, "history_test")
	require.NoError(t, err)
	assert.Nil(t, rec, "no history table yet")

	id, err := iohistory.Record(ctx, op, iohistory.Entry{
		Dataset:  "history_test",
		Tables:   []string{"t1", "t2"},
		Rows:     42,
		Duration: 1500 * time.Millisecond,
		Reload:   true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	rec, err = iohistory.Latest(ctx, op, "history_test")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "t1,t2", rec.Tables)
	assert.Equal(t, int64(42), rec.Rows)
	assert.InDelta(t, 1.5, rec.DurationSec, 0.001)
	assert.True(t, rec.Reload)

	rec, err = iohistory.Latest(ctx, op, "other")
	require.NoError(t, err)
	assert.Nil(t, rec)
}
