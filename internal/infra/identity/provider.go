// Package identity supplies this installation's platform facts and performs the platform side of push registration.
package identity

import (
	"context"
	"log/slog"

	"pushreg/config"
	"pushreg/internal/domain/entity"
	"pushreg/internal/domain/service"

	"github.com/pkg/errors"
)

// fingerprinter derives the stable hardware/software fingerprint
type fingerprinter interface {
	Fingerprint(ctx context.Context) (string, error)
}

type provider struct {
	platform    string
	tags        []string
	fingerprint fingerprinter
	tokens      *TokenSource
	backend     service.BackendClient
	logger      *slog.Logger
}

// NewProvider wires the platform facts from the registration config
func NewProvider(cfg *config.RegistrationConfig, tokens *TokenSource, backend service.BackendClient, logger *slog.Logger) service.DeviceIdentity {
	return newProvider(cfg.Platform, cfg.Tags, NewMachineFingerprint(cfg.MachineIDPaths), tokens, backend, logger)
}

func newProvider(
	platform string,
	tags []string,
	fingerprint fingerprinter,
	tokens *TokenSource,
	backend service.BackendClient,
	logger *slog.Logger,
) *provider {
	return &provider{
		platform:    platform,
		tags:        tags,
		fingerprint: fingerprint,
		tokens:      tokens,
		backend:     backend,
		logger:      logger,
	}
}

// Platform returns the configured push platform family
func (p *provider) Platform() string {
	return p.platform
}

// Fingerprint returns the machine fingerprint of this installation
func (p *provider) Fingerprint(ctx context.Context) (string, error) {
	return p.fingerprint.Fingerprint(ctx)
}

// RegisterDevice hands the current push token to the device hub. Without a token there is nothing to register.
func (p *provider) RegisterDevice(ctx context.Context, userID, deviceID string) (bool, error) {
	token := p.tokens.Token()
	if token == "" {
		return false, errors.New("no push token available")
	}

	record, err := p.backend.RegisterDevice(ctx, &entity.DeviceRegistration{
		DeviceID:  deviceID,
		UserID:    userID,
		Platform:  p.platform,
		PushToken: token,
		Tags:      p.tags,
	})
	if err != nil {
		return false, errors.Wrap(err, "register device with hub")
	}

	p.logger.Debug("Device registered with hub",
		slog.String("device_id", deviceID),
		slog.String("record_id", record.ID.String()),
		slog.Bool("active", record.IsActive),
	)

	return record.IsActive, nil
}

// TokenUpdates streams push token rotations from the token source
func (p *provider) TokenUpdates() <-chan entity.TokenUpdate {
	return p.tokens.Updates()
}
