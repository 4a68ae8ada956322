package usecase

import (
	"context"

	"pushreg/internal/domain/entity"
)

// DeviceUsecase defines the device hub's use cases over device records
type DeviceUsecase interface {
	// RegisterDevice registers a new installation or refreshes an existing one
	RegisterDevice(ctx context.Context, reg *entity.DeviceRegistration) (*entity.DeviceRecord, error)

	// GetDevice retrieves the record of an installation
	GetDevice(ctx context.Context, deviceID string) (*entity.DeviceRecord, error)

	// GetUserDevices retrieves all records of a user, including inactive ones
	GetUserDevices(ctx context.Context, userID string) ([]*entity.DeviceRecord, error)

	// DeactivateDevice marks an installation inactive; it reports whether the state changed
	DeactivateDevice(ctx context.Context, deviceID string) (bool, error)
}
