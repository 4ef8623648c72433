// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// MaxZoneLength is the maximum number of runes kept in a normalized zone label.
	MaxZoneLength = 64
	// MaxDisplayNameLength is the maximum number of runes kept in a staff display name.
	MaxDisplayNameLength = 80
	// MaxDeviceIDLength bounds the client-supplied device identifier.
	MaxDeviceIDLength = 128
)

// CallStatus is the lifecycle state of a table call.
type CallStatus string

const (
	CallStatusOpen      CallStatus = "open"
	CallStatusClaimed   CallStatus = "claimed"
	CallStatusCancelled CallStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s CallStatus) IsTerminal() bool {
	return s == CallStatusClaimed || s == CallStatusCancelled
}

// Call represents a table's request for service.
type Call struct {
	ID          uuid.UUID  `json:"id"`         // Assigned at creation, never changes.
	Zone        string     `json:"zone"`       // Normalized floor area label.
	TableNumber int        `json:"table"`      // Positive table number within the zone.
	Status      CallStatus `json:"status"`     // open, claimed or cancelled.
	ClaimedBy   *ClaimedBy `json:"claimed_by"` // Set exactly once on open -> claimed.
	ClaimedAt   *time.Time `json:"claimed_at"` // Timestamp of the winning claim.
	CreatedAt   time.Time  `json:"created_at"` // Timestamp of when the call was raised.
}

// ClaimedBy identifies the staff device that won the claim.
type ClaimedBy struct {
	DeviceID    string `json:"device_id"`
	DisplayName string `json:"display_name,omitempty"`
}

// ClaimOutcome is the result of a claim attempt that reached the store.
type ClaimOutcome struct {
	Claimed bool       `json:"claimed"`
	Status  CallStatus `json:"status"`
}

// NewCall builds an open call with a fresh identifier.
func NewCall(zone string, table int, now time.Time) *Call {
	return &Call{
		ID:          uuid.New(),
		Zone:        zone,
		TableNumber: table,
		Status:      CallStatusOpen,
		CreatedAt:   now,
	}
}

// NormalizeZone trims and lowercases a zone label, collapses whitespace runs to "-"
// and truncates it to MaxZoneLength runes.
func NormalizeZone(raw string) string {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(raw)), unicode.IsSpace)

	return truncateRunes(strings.Join(fields, "-"), MaxZoneLength)
}

// NormalizeDisplayName trims a display name and truncates it to MaxDisplayNameLength runes.
func NormalizeDisplayName(raw string) string {
	return truncateRunes(strings.TrimSpace(raw), MaxDisplayNameLength)
}

// ValidDeviceID reports whether id is usable as a device key.
func ValidDeviceID(id string) bool {
	id = strings.TrimSpace(id)

	return id != "" && utf8.RuneCountInString(id) <= MaxDeviceIDLength
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)

	return string(runes[:limit])
}
