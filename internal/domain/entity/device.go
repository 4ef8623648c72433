package entity

import (
	"time"
)

// DefaultPlatform is recorded when a device registers without naming its platform.
const DefaultPlatform = "android"

// StaffDevice represents a staff member's device registered for push alerts.
type StaffDevice struct {
	DeviceID     string    `json:"device_id"`     // Unique device identifier from the client.
	PushEndpoint string    `json:"push_endpoint"` // Provider registration token, may change over time.
	DisplayName  string    `json:"display_name"`  // Optional staff name shown to other devices.
	Platform     string    `json:"platform"`      // Device platform (android, ios, web).
	IsActive     bool      `json:"is_active"`     // Cleared when the provider rejects the endpoint.
	LastSeenAt   time.Time `json:"last_seen_at"`  // Refreshed on registration and claims.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DeviceRegistration is the input of a device upsert.
type DeviceRegistration struct {
	DeviceID     string
	DisplayName  string
	PushEndpoint string
	Platform     string
}
