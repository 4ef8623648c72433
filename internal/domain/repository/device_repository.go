// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"callbell/internal/domain/entity"
)

// DeviceRepository defines the interface for staff device persistence.
type DeviceRepository interface {
	// UpsertDevice creates or updates the device keyed by device id, marking it active
	// and refreshing last_seen_at.
	UpsertDevice(ctx context.Context, registration *entity.DeviceRegistration) (*entity.StaffDevice, error)

	// ListActiveEndpoints returns the push endpoints of all active devices.
	ListActiveEndpoints(ctx context.Context) ([]string, error)

	// DeactivateEndpoints marks every device holding one of the endpoints inactive.
	// It is a no-op for empty input.
	DeactivateEndpoints(ctx context.Context, endpoints []string) (int64, error)

	// TouchLastSeen refreshes last_seen_at for a device. Unknown ids are ignored.
	TouchLastSeen(ctx context.Context, deviceID string) error
}
