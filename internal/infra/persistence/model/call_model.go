package model

import (
	"time"

	"github.com/google/uuid"
)

// TableCallModel is the GORM-specific struct for the 'table_calls' table.
// Status leaves 'open' at most once; the claimed_by columns are written by that transition only.
type TableCallModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Zone              string    `gorm:"type:varchar(64);not null;index:idx_table_calls_zone_table"`
	TableNo           int       `gorm:"not null;check:chk_table_calls_table_no,table_no > 0;index:idx_table_calls_zone_table"`
	Status            string    `gorm:"type:varchar(16);not null;index"`
	ClaimedByDeviceID *string   `gorm:"type:varchar(128)"`
	ClaimedByName     *string   `gorm:"type:varchar(80)"`
	ClaimedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (TableCallModel) TableName() string {
	return "table_calls"
}
