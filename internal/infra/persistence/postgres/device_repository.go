// Package postgres contains the concrete implementation of the persistence layer using GORM.
package postgres

import (
	"context"
	"time"

	"callbell/internal/domain/entity"
	domainerrors "callbell/internal/domain/errors"
	"callbell/internal/domain/repository"
	"callbell/internal/infra/persistence/model"
	"callbell/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	q   *query.Query
	now func() time.Time
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		q:   query.Use(db),
		now: time.Now,
	}
}

// UpsertDevice inserts the device or refreshes the existing row keyed by device_id.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, registration *entity.DeviceRegistration) (*entity.StaffDevice, error) {
	now := repo.now().UTC()
	sd := repo.q.StaffDeviceModel
	deviceM := &model.StaffDeviceModel{
		DeviceID:     registration.DeviceID,
		PushEndpoint: registration.PushEndpoint,
		DisplayName:  registration.DisplayName,
		Platform:     registration.Platform,
		IsActive:     true,
		LastSeenAt:   now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := sd.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: sd.DeviceID.ColumnName().String()}},
			DoUpdates: clause.AssignmentColumns([]string{
				sd.PushEndpoint.ColumnName().String(),
				sd.DisplayName.ColumnName().String(),
				sd.Platform.ColumnName().String(),
				sd.IsActive.ColumnName().String(),
				sd.LastSeenAt.ColumnName().String(),
				sd.UpdatedAt.ColumnName().String(),
			}),
		}).
		Create(deviceM); err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.NewValidationError("missing required device information")
		}

		return nil, domainerrors.NewTransientError(err, "failed to upsert device")
	}

	// created_at of an existing row survives the upsert; read it back from the primary.
	stored, err := sd.WithContext(ctx).
		WriteDB().
		Where(sd.DeviceID.Eq(registration.DeviceID)).
		Take()
	if err != nil {
		return nil, domainerrors.NewTransientError(err, "failed to read device")
	}

	return toDeviceDomain(stored), nil
}

// ListActiveEndpoints returns the distinct push endpoints of all active devices.
func (repo *deviceRepository) ListActiveEndpoints(ctx context.Context) ([]string, error) {
	var endpoints []string
	sd := repo.q.StaffDeviceModel

	if err := sd.WithContext(ctx).
		Where(sd.IsActive.Is(true), sd.PushEndpoint.Neq("")).
		Distinct().
		Pluck(sd.PushEndpoint, &endpoints); err != nil {
		return nil, domainerrors.NewTransientError(err, "failed to list active endpoints")
	}

	return endpoints, nil
}

// DeactivateEndpoints clears is_active on every device holding one of the endpoints.
func (repo *deviceRepository) DeactivateEndpoints(ctx context.Context, endpoints []string) (int64, error) {
	if len(endpoints) == 0 {
		return 0, nil
	}

	sd := repo.q.StaffDeviceModel

	result, err := sd.WithContext(ctx).
		Where(sd.PushEndpoint.In(endpoints...), sd.IsActive.Is(true)).
		UpdateSimple(
			sd.IsActive.Value(false),
			sd.UpdatedAt.Value(repo.now().UTC()),
		)
	if err != nil {
		return 0, domainerrors.NewTransientError(err, "failed to deactivate endpoints")
	}

	return result.RowsAffected, nil
}

// TouchLastSeen refreshes last_seen_at; zero matching rows is not an error.
func (repo *deviceRepository) TouchLastSeen(ctx context.Context, deviceID string) error {
	now := repo.now().UTC()
	sd := repo.q.StaffDeviceModel

	if _, err := sd.WithContext(ctx).
		Where(sd.DeviceID.Eq(deviceID)).
		UpdateSimple(
			sd.LastSeenAt.Value(now),
			sd.UpdatedAt.Value(now),
		); err != nil {
		return domainerrors.NewTransientError(err, "failed to touch device")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM StaffDeviceModel to a domain StaffDevice entity.
func toDeviceDomain(data *model.StaffDeviceModel) *entity.StaffDevice {
	if data == nil {
		return nil
	}

	return &entity.StaffDevice{
		DeviceID:     data.DeviceID,
		PushEndpoint: data.PushEndpoint,
		DisplayName:  data.DisplayName,
		Platform:     data.Platform,
		IsActive:     data.IsActive,
		LastSeenAt:   data.LastSeenAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
