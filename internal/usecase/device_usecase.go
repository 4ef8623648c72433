package usecase

import (
	"context"

	"callbell/internal/domain/entity"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	DeviceID     string `json:"device_id"`
	DisplayName  string `json:"name"`
	PushEndpoint string `json:"token"`
	Platform     string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes an existing one. Safe to repeat.
	RegisterDevice(ctx context.Context, deviceInfo *DeviceInfo) (*entity.StaffDevice, error)
}
