// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pushreg/internal/domain/entity"
	domainerrors "pushreg/internal/domain/errors"
	"pushreg/internal/domain/repository"
	"pushreg/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device record.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.DeviceRecord) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDeviceRegistrationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByDeviceID retrieves a record by the client-reported installation identifier.
func (repo *deviceRepository) FindDeviceByDeviceID(ctx context.Context, deviceID string) (*entity.DeviceRecord, error) {
	var deviceM model.DeviceRecordModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by device ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByUser retrieves all records for a user, active and inactive, newest registration first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID string) ([]*entity.DeviceRecord, error) {
	var deviceModels []*model.DeviceRecordModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("registered_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	devices := make([]*entity.DeviceRecord, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateRegistration refreshes a record from a new registration and reactivates it.
func (repo *deviceRepository) UpdateRegistration(ctx context.Context, id uuid.UUID, reg *entity.DeviceRegistration, registeredAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceRecordModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"user_id":       reg.UserID,
			"platform":      reg.Platform,
			"push_token":    reg.PushToken,
			"tags":          pq.StringArray(normalizeTags(reg.Tags)),
			"is_active":     true,
			"registered_at": registeredAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device registration")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevice marks a record inactive. It reports false when the record was already inactive.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceRecordModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected > 0 {
		return true, nil
	}

	// Distinguish an already inactive record from a missing one.
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceRecordModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check device existence")
	}

	if count == 0 {
		return false, repository.ErrDeviceNotFound
	}

	return false, nil
}

// --- Mapper Functions ---

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}

	return tags
}

// toDeviceDomain converts a GORM DeviceRecordModel to a domain DeviceRecord entity.
func toDeviceDomain(data *model.DeviceRecordModel) *entity.DeviceRecord {
	if data == nil {
		return nil
	}

	return &entity.DeviceRecord{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		UserID:       data.UserID,
		Platform:     data.Platform,
		PushToken:    data.PushToken,
		IsActive:     data.IsActive,
		Tags:         []string(data.Tags),
		RegisteredAt: data.RegisteredAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain DeviceRecord entity to a GORM DeviceRecordModel.
func fromDeviceDomain(data *entity.DeviceRecord) *model.DeviceRecordModel {
	if data == nil {
		return nil
	}

	return &model.DeviceRecordModel{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		UserID:       data.UserID,
		Platform:     data.Platform,
		PushToken:    data.PushToken,
		IsActive:     data.IsActive,
		Tags:         pq.StringArray(normalizeTags(data.Tags)),
		RegisteredAt: data.RegisteredAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
