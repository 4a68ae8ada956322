package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pushreg/internal/delivery/context"
	"pushreg/internal/domain/entity"
	domainerrors "pushreg/internal/domain/errors"
	"pushreg/internal/domain/repository"
	"pushreg/internal/domain/service"
	"pushreg/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo     repository.DeviceRepository
	txManager      repository.TransactionManager
	tokenValidator service.PushTokenValidator
	publisher      service.EventPublisher
	logger         *slog.Logger
	now            func() time.Time
}

// NewDeviceService creates a new device service instance.
// tokenValidator may be nil, in which case push tokens are stored unchecked.
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	txManager repository.TransactionManager,
	tokenValidator service.PushTokenValidator,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo:     deviceRepo,
		txManager:      txManager,
		tokenValidator: tokenValidator,
		publisher:      publisher,
		logger:         logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice registers a new installation or refreshes the existing record with the same device ID
func (s *deviceService) RegisterDevice(ctx context.Context, reg *entity.DeviceRegistration) (*entity.DeviceRecord, error) {
	if err := s.validatePushToken(ctx, reg.PushToken); err != nil {
		return nil, err
	}

	var device *entity.DeviceRecord
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()
		now := s.now()

		existing, err := deviceRepo.FindDeviceByDeviceID(ctx, reg.DeviceID)
		if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(err, "failed to find device by device ID")
		}

		if existing != nil {
			if err := deviceRepo.UpdateRegistration(ctx, existing.ID, reg, now); err != nil {
				return errors.Wrap(err, "failed to update device registration")
			}

			device, err = deviceRepo.FindDeviceByDeviceID(ctx, reg.DeviceID)
			if err != nil {
				return errors.Wrap(err, "failed to reload device")
			}

			return nil
		}

		device = &entity.DeviceRecord{
			ID:           uuid.New(),
			DeviceID:     reg.DeviceID,
			UserID:       reg.UserID,
			Platform:     reg.Platform,
			PushToken:    reg.PushToken,
			IsActive:     true,
			Tags:         reg.Tags,
			RegisteredAt: now,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		return deviceRepo.CreateDevice(ctx, device)
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Device registered",
		slog.String("device_id", device.DeviceID),
		slog.String("user_id", device.UserID),
		slog.String("platform", device.Platform),
	)
	s.publish(ctx, service.DeviceEventRegistered, device)

	return device, nil
}

// GetDevice retrieves the record of an installation
func (s *deviceService) GetDevice(ctx context.Context, deviceID string) (*entity.DeviceRecord, error) {
	device, err := s.deviceRepo.FindDeviceByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by device ID")
	}

	return device, nil
}

// GetUserDevices retrieves all records of a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID string) ([]*entity.DeviceRecord, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return devices, nil
}

// DeactivateDevice marks an installation inactive. Deactivating an inactive record succeeds and reports false.
func (s *deviceService) DeactivateDevice(ctx context.Context, deviceID string) (bool, error) {
	device, err := s.deviceRepo.FindDeviceByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return false, domainerrors.ErrDeviceNotFound
		}

		return false, errors.Wrap(err, "failed to find device by device ID")
	}

	if !device.IsActive {
		return false, nil
	}

	changed, err := s.deviceRepo.DeactivateDevice(ctx, device.ID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return false, domainerrors.ErrDeviceNotFound
		}

		return false, errors.Wrap(err, "failed to deactivate device")
	}

	if changed {
		device.IsActive = false
		s.log(ctx).Info("Device deactivated", slog.String("device_id", deviceID))
		s.publish(ctx, service.DeviceEventDeactivated, device)
	}

	return changed, nil
}

// validatePushToken rejects tokens the push provider refuses. Provider outages do not block registration.
func (s *deviceService) validatePushToken(ctx context.Context, token string) error {
	if s.tokenValidator == nil {
		return nil
	}

	err := s.tokenValidator.ValidateToken(ctx, token)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrPushTokenRejected):
		return domainerrors.ErrInvalidPushToken
	default:
		s.log(ctx).Warn("Push token validation unavailable, accepting token", slog.Any("error", err))

		return nil
	}
}

// publish emits a lifecycle event; publishing failures never fail the request.
func (s *deviceService) publish(ctx context.Context, eventType string, device *entity.DeviceRecord) {
	if s.publisher == nil {
		return
	}

	event := &service.DeviceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		RecordID:   device.ID.String(),
		DeviceID:   device.DeviceID,
		UserID:     device.UserID,
		Platform:   device.Platform,
		OccurredAt: s.now(),
	}

	if err := s.publisher.PublishDeviceEvent(ctx, event); err != nil {
		s.log(ctx).Error("Failed to publish device event",
			slog.String("type", eventType),
			slog.String("device_id", device.DeviceID),
			slog.Any("error", err),
		)
	}
}
