package schema_test

import (
	"testing"

	"github.com/nycdb/nycdb/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestLoadRecordTableName(t *testing.T) {
	assert.Equal(t, "nycdb_loads", schema.LoadRecord{}.TableName())
}

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	assert.Len(t, models, 1)
	_, ok := models[0].(*schema.LoadRecord)
	assert.True(t, ok)
}
