package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"pushreg/internal/domain/entity"
	"pushreg/internal/domain/repository"
	"pushreg/internal/domain/service"
	"pushreg/internal/usecase"
)

// Keys of the coordinator's entries in the local key-value store.
const (
	keyDeviceIdentifier    = "push_device_identifier"
	keyPermissionState     = "push_permission_state"
	keyBackendDevicePrefix = "push_backend_device_id:"
)

type registrationCoordinator struct {
	store    repository.KeyValueStore
	identity service.DeviceIdentity
	backend  service.BackendClient
	policy   usecase.RegistrationPolicy
	logger   *slog.Logger
	now      func() time.Time

	// deviceID memoises the installation identifier for the coordinator's lifetime.
	deviceID atomic.Pointer[string]
}

// NewRegistrationCoordinator creates the coordinator of this installation's push registration
func NewRegistrationCoordinator(
	store repository.KeyValueStore,
	identity service.DeviceIdentity,
	backend service.BackendClient,
	policy usecase.RegistrationPolicy,
	logger *slog.Logger,
) usecase.RegistrationUsecase {
	if logger == nil {
		logger = slog.Default()
	}

	return &registrationCoordinator{
		store:    store,
		identity: identity,
		backend:  backend,
		policy:   policy,
		logger:   logger,
		now:      time.Now,
	}
}

// CheckStatus assesses the installation's registration. Every failure collapses to RegistrationFailed.
func (c *registrationCoordinator) CheckStatus(ctx context.Context, userID string) entity.RegistrationState {
	logger := c.logger.With(slog.String("user_id", userID))

	if err := c.settle(ctx); err != nil {
		logger.Debug("Status check aborted during settle delay", slog.Any("error", err))

		return entity.RegistrationFailed
	}

	permission, err := c.permissionState(ctx)
	if err != nil {
		logger.Debug("Status check aborted reading permission state", slog.Any("error", err))

		return entity.RegistrationFailed
	}
	// A declined prompt is sticky: the backend is not queried for this installation again.
	if permission == entity.PermissionDenied {
		return entity.RegistrationPermissionDenied
	}

	deviceID := c.GetDeviceIdentifier(ctx)
	logger = logger.With(slog.String("device_id", deviceID))
	if err := ctx.Err(); err != nil {
		logger.Debug("Status check aborted resolving device identifier", slog.Any("error", err))

		return entity.RegistrationFailed
	}

	record, err := c.backend.GetDevice(ctx, deviceID)
	if err != nil {
		logger.Warn("Failed to fetch device record", slog.Any("error", err))

		return entity.RegistrationFailed
	}

	switch {
	case record == nil:
		return entity.RegistrationNotRegistered
	case !record.IsActive:
		return entity.RegistrationNotRegistered
	case !record.IsFresh(c.now(), c.policy.FreshnessWindow):
		logger.Debug("Device record is stale",
			slog.Time("updated_at", record.UpdatedAt),
			slog.Duration("freshness_window", c.policy.FreshnessWindow),
		)

		return entity.RegistrationNotRegistered
	}

	if err := c.store.Set(ctx, backendDeviceKey(userID), record.ID.String()); err != nil {
		logger.Warn("Failed to cache backend device id", slog.Any("error", err))
	}

	return entity.RegistrationRegistered
}

// ShouldRequestPermissions is true for NotRegistered and Failed.
func (c *registrationCoordinator) ShouldRequestPermissions(ctx context.Context, userID string) bool {
	return c.CheckStatus(ctx, userID).ShouldPrompt()
}

// RegisterIfNeeded registers the installation unless it is registered already or the user declined.
func (c *registrationCoordinator) RegisterIfNeeded(ctx context.Context, userID string) bool {
	switch c.CheckStatus(ctx, userID) {
	case entity.RegistrationRegistered:
		return true
	case entity.RegistrationPermissionDenied:
		return false
	default:
		return c.register(ctx, userID)
	}
}

// CleanupStaleDevices deactivates the user's records on this platform that are inactive or too old.
func (c *registrationCoordinator) CleanupStaleDevices(ctx context.Context, userID string) {
	logger := c.logger.With(slog.String("user_id", userID))

	records, err := c.backend.GetUserDevices(ctx, userID)
	if err != nil {
		logger.Warn("Skipping stale device cleanup", slog.Any("error", err))

		return
	}

	platform := c.identity.Platform()
	now := c.now()

	var deactivated, failed int
	for _, record := range records {
		if record == nil || record.Platform != platform {
			continue
		}
		if !record.IsCleanupCandidate(now, c.policy.CleanupAge) {
			continue
		}

		if _, err := c.backend.DeactivateDevice(ctx, record.DeviceID); err != nil {
			failed++
			logger.Warn("Failed to deactivate stale device",
				slog.String("device_id", record.DeviceID),
				slog.Any("error", err),
			)

			continue
		}
		deactivated++
	}

	if deactivated > 0 || failed > 0 {
		logger.Info("Stale device cleanup finished",
			slog.Int("deactivated", deactivated),
			slog.Int("failed", failed),
		)
	}
}

// StorePermissionOutcome persists the outcome of an OS permission prompt.
func (c *registrationCoordinator) StorePermissionOutcome(ctx context.Context, granted bool) {
	state := entity.PermissionStateFromBool(granted)
	if err := c.store.Set(ctx, keyPermissionState, string(state)); err != nil {
		c.logger.Warn("Failed to store permission outcome",
			slog.String("permission", string(state)),
			slog.Any("error", err),
		)
	}
}

// WatchTokenUpdates re-registers on every token rotation until ctx is done or updates is closed.
func (c *registrationCoordinator) WatchTokenUpdates(ctx context.Context, userID string, updates <-chan entity.TokenUpdate) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}

			permission, err := c.permissionState(ctx)
			if err != nil {
				return
			}
			if permission == entity.PermissionDenied {
				c.logger.Debug("Ignoring token update, permission denied", slog.String("user_id", userID))

				continue
			}

			registered := c.register(ctx, userID)
			c.logger.Info("Re-registered after token update",
				slog.String("user_id", userID),
				slog.String("platform", update.Platform),
				slog.Bool("registered", registered),
			)
		}
	}
}

// register delegates to the platform and clears a stale denial once registration succeeds.
func (c *registrationCoordinator) register(ctx context.Context, userID string) bool {
	deviceID := c.GetDeviceIdentifier(ctx)
	logger := c.logger.With(slog.String("user_id", userID), slog.String("device_id", deviceID))
	if err := ctx.Err(); err != nil {
		logger.Debug("Device registration aborted", slog.Any("error", err))

		return false
	}

	ok, err := c.identity.RegisterDevice(ctx, userID, deviceID)
	if err != nil {
		logger.Warn("Device registration failed", slog.Any("error", err))

		return false
	}

	if ok {
		if err := c.store.Remove(ctx, keyPermissionState); err != nil {
			logger.Warn("Failed to clear permission state", slog.Any("error", err))
		}
	}

	return ok
}

// permissionState reads the persisted prompt outcome; an unreadable store counts as never asked.
// It only fails when ctx is done.
func (c *registrationCoordinator) permissionState(ctx context.Context) (entity.PermissionState, error) {
	value, err := c.store.Get(ctx, keyPermissionState, "")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return entity.PermissionUnknown, ctxErr
		}
		c.logger.Warn("Failed to read permission state", slog.Any("error", err))

		return entity.PermissionUnknown, nil
	}

	return entity.PermissionState(value), nil
}

// settle waits out the settle delay, returning early when ctx is done.
func (c *registrationCoordinator) settle(ctx context.Context) error {
	if c.policy.SettleDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.policy.SettleDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func backendDeviceKey(userID string) string {
	return keyBackendDevicePrefix + userID
}
