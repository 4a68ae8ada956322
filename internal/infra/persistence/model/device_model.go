// Package model holds the GORM structs of the device hub tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DeviceRecordModel is the GORM-specific struct for the 'device_records' table.
// One row per installation; device_id is the client-reported identifier.
type DeviceRecordModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key"`
	DeviceID     string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	UserID       string         `gorm:"type:varchar(255);not null;index"`
	Platform     string         `gorm:"type:varchar(32);not null"`
	PushToken    string         `gorm:"type:text;not null"`
	IsActive     bool           `gorm:"not null;default:true"`
	Tags         pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	RegisteredAt time.Time      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceRecordModel) TableName() string {
	return "device_records"
}
