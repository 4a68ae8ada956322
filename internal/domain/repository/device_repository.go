// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pushreg/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-record database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device record.
	CreateDevice(ctx context.Context, device *entity.DeviceRecord) error

	// FindDeviceByDeviceID retrieves a record by its installation identifier.
	FindDeviceByDeviceID(ctx context.Context, deviceID string) (*entity.DeviceRecord, error)

	// FindDevicesByUser retrieves all records for a user (including inactive), newest first.
	FindDevicesByUser(ctx context.Context, userID string) ([]*entity.DeviceRecord, error)

	// UpdateRegistration refreshes owner, token and tags of a record, reactivates it and stamps registeredAt.
	UpdateRegistration(ctx context.Context, id uuid.UUID, reg *entity.DeviceRegistration, registeredAt time.Time) error

	// DeactivateDevice marks a record inactive. It reports whether the record was active before.
	DeactivateDevice(ctx context.Context, id uuid.UUID) (bool, error)
}
