// Package schema provides database models owned by NYCDB itself.
// Dataset tables are created from data file headers and have no models.
package schema

import "time"

// LoadRecord stores one successful load or reload of a dataset.
type LoadRecord struct {
	// ID identifies the load run.
	ID string `gorm:"type:uuid;primaryKey"`

	// Dataset is the name of the loaded dataset.
	Dataset string `gorm:"type:varchar(100);not null;index"`

	// Tables is a comma-separated list of created tables.
	Tables string `gorm:"type:text;not null"`

	// Rows is the total number of inserted rows.
	Rows int64 `gorm:"not null"`

	// DurationSec is how long the load took.
	DurationSec float64 `gorm:"not null"`

	// Reload is true if tables were dropped before loading.
	Reload bool `gorm:"not null;default:false"`

	CreatedAt time.Time
}

// TableName returns the table name for LoadRecord.
func (LoadRecord) TableName() string {
	return "nycdb_loads"
}
