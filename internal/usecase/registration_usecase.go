package usecase

import (
	"context"
	"time"

	"pushreg/internal/domain/entity"
)

// RegistrationPolicy holds the timing rules of the registration coordinator.
type RegistrationPolicy struct {
	// SettleDelay is waited before the first I/O of a status check.
	SettleDelay time.Duration
	// FreshnessWindow is the maximum age of lastUpdated for a record to count as registered.
	FreshnessWindow time.Duration
	// CleanupAge is the registeredAt age beyond which cleanup deactivates a record.
	CleanupAge time.Duration
}

// DefaultRegistrationPolicy returns the stock 500ms / 30 days / 90 days policy.
func DefaultRegistrationPolicy() RegistrationPolicy {
	return RegistrationPolicy{
		SettleDelay:     500 * time.Millisecond,
		FreshnessWindow: 30 * 24 * time.Hour,
		CleanupAge:      90 * 24 * time.Hour,
	}
}

// RegistrationUsecase manages the push registration of this installation.
// None of its methods return errors: failures are folded into the returned value.
type RegistrationUsecase interface {
	// CheckStatus assesses the installation's registration for userID.
	CheckStatus(ctx context.Context, userID string) entity.RegistrationState

	// ShouldRequestPermissions reports whether the caller should show the OS permission prompt.
	ShouldRequestPermissions(ctx context.Context, userID string) bool

	// RegisterIfNeeded registers the installation unless it is already registered or permission was denied.
	RegisterIfNeeded(ctx context.Context, userID string) bool

	// CleanupStaleDevices deactivates the user's stale or inactive records on this platform. Best effort.
	CleanupStaleDevices(ctx context.Context, userID string)

	// StorePermissionOutcome records the result of an OS permission prompt.
	StorePermissionOutcome(ctx context.Context, granted bool)

	// GetDeviceIdentifier returns the installation identifier, creating it on first use.
	GetDeviceIdentifier(ctx context.Context) string

	// WatchTokenUpdates re-registers the installation whenever the platform rotates its push token.
	// It returns when ctx is done or updates is closed.
	WatchTokenUpdates(ctx context.Context, userID string, updates <-chan entity.TokenUpdate)
}
