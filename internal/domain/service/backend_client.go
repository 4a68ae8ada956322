package service

import (
	"context"

	"pushreg/internal/domain/entity"
)

// BackendClient is the remote service holding per-installation registration records.
// Calls go over the network and may fail or time out.
type BackendClient interface {
	// GetDevice returns the record for an installation, or nil when the backend has none.
	GetDevice(ctx context.Context, deviceID string) (*entity.DeviceRecord, error)

	// GetUserDevices returns every record associated with the user.
	GetUserDevices(ctx context.Context, userID string) ([]*entity.DeviceRecord, error)

	// DeactivateDevice marks an installation inactive. Deactivating an inactive record is a no-op
	// and reports false.
	DeactivateDevice(ctx context.Context, deviceID string) (bool, error)

	// RegisterDevice creates or refreshes the record for an installation.
	RegisterDevice(ctx context.Context, reg *entity.DeviceRegistration) (*entity.DeviceRecord, error)
}
