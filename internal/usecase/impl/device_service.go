package impl

import (
	"context"
	"strings"

	"callbell/internal/domain/entity"
	domainerrors "callbell/internal/domain/errors"
	"callbell/internal/domain/repository"
	"callbell/internal/errors"
	"callbell/internal/usecase"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, deviceInfo *usecase.DeviceInfo) (*entity.StaffDevice, error) {
	deviceID := strings.TrimSpace(deviceInfo.DeviceID)
	if !entity.ValidDeviceID(deviceID) {
		return nil, domainerrors.NewValidationError("device_id required")
	}

	endpoint := strings.TrimSpace(deviceInfo.PushEndpoint)
	if endpoint == "" {
		return nil, domainerrors.NewValidationError("token required")
	}

	platform := strings.ToLower(strings.TrimSpace(deviceInfo.Platform))
	if platform == "" {
		platform = entity.DefaultPlatform
	}

	device, err := s.deviceRepo.UpsertDevice(ctx, &entity.DeviceRegistration{
		DeviceID:     deviceID,
		DisplayName:  entity.NormalizeDisplayName(deviceInfo.DisplayName),
		PushEndpoint: endpoint,
		Platform:     platform,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert device")
	}

	return device, nil
}
