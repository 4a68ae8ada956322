package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const fallbackIdentifierPrefix = "fallback"

// GetDeviceIdentifier returns the memoised installation identifier.
//
// Resolution order is memory, then the local store, then a freshly synthesised
// {platform}_{fingerprint}_{token} that is persisted best effort. If the store or
// the fingerprint cannot be read the identifier degrades to fallback_{token},
// which is stable for this process only. Nothing is memoised once ctx is done:
// an aborted call must not pin an identifier the store never confirmed.
func (c *registrationCoordinator) GetDeviceIdentifier(ctx context.Context) string {
	if cached := c.deviceID.Load(); cached != nil {
		return *cached
	}

	id, created, err := c.resolveDeviceIdentifier(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		if err != nil {
			id = fallbackIdentifierPrefix + "_" + randomToken()
		}
		c.logger.Debug("Device identifier not memoised, call aborted", slog.Any("error", ctxErr))

		return id
	}

	if err != nil {
		id = fallbackIdentifierPrefix + "_" + randomToken()
		created = false
		c.logger.Warn("Using fallback device identifier",
			slog.String("device_id", id),
			slog.Any("error", err),
		)
	}

	if c.deviceID.CompareAndSwap(nil, &id) {
		return id
	}

	// A concurrent first call won; converge on its identifier in memory and in the store.
	winner := *c.deviceID.Load()
	if created && winner != id && !strings.HasPrefix(winner, fallbackIdentifierPrefix+"_") {
		if err := c.store.Set(ctx, keyDeviceIdentifier, winner); err != nil {
			c.logger.Warn("Device identifier not persisted",
				slog.String("device_id", winner),
				slog.Any("error", err),
			)
		}
	}

	return winner
}

// resolveDeviceIdentifier reads the stored identifier or synthesises a new one.
// created reports whether the identifier was synthesised by this call.
func (c *registrationCoordinator) resolveDeviceIdentifier(ctx context.Context) (string, bool, error) {
	stored, err := c.store.Get(ctx, keyDeviceIdentifier, "")
	if err != nil {
		return "", false, errors.Wrap(err, "read device identifier")
	}
	if stored != "" {
		return stored, false, nil
	}

	fingerprint, err := c.identity.Fingerprint(ctx)
	if err != nil {
		return "", false, errors.Wrap(err, "derive device fingerprint")
	}
	if fingerprint == "" {
		return "", false, errors.New("empty device fingerprint")
	}

	id := strings.Join([]string{c.identity.Platform(), fingerprint, randomToken()}, "_")

	if err := c.store.Set(ctx, keyDeviceIdentifier, id); err != nil {
		c.logger.Warn("Device identifier not persisted",
			slog.String("device_id", id),
			slog.Any("error", err),
		)
	}

	return id, true, nil
}

// randomToken returns 32 lowercase hex characters.
func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
