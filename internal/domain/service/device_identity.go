package service

import (
	"context"

	"pushreg/internal/domain/entity"
)

// DeviceIdentity supplies platform facts about the installation and performs the platform side
// of push registration.
type DeviceIdentity interface {
	// Platform returns the push platform family of this installation (e.g. "fcm").
	Platform() string

	// Fingerprint returns a stable, reinstall-resistant hardware/software fingerprint.
	Fingerprint(ctx context.Context) (string, error)

	// RegisterDevice registers the installation identified by deviceID for userID.
	RegisterDevice(ctx context.Context, userID, deviceID string) (bool, error)

	// TokenUpdates streams push-token changes. The channel is closed when the provider stops.
	TokenUpdates() <-chan entity.TokenUpdate
}
