package model

import (
	"time"
)

// StaffDeviceModel is the GORM-specific struct for the 'staff_devices' table.
// Rows are never deleted; a dead push endpoint only clears is_active.
type StaffDeviceModel struct {
	DeviceID     string `gorm:"type:varchar(128);primaryKey"`
	PushEndpoint string `gorm:"type:text;not null;index"`
	DisplayName  string `gorm:"type:varchar(80)"`
	Platform     string `gorm:"type:varchar(32);not null"`
	IsActive     bool   `gorm:"not null;index"`
	LastSeenAt   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (StaffDeviceModel) TableName() string {
	return "staff_devices"
}

// AllModels lists every persisted model, used for migrations and query generation.
func AllModels() []any {
	return []any{
		&TableCallModel{},
		&StaffDeviceModel{},
	}
}
