package entity

import (
	"strconv"

	"github.com/google/uuid"
)

// PushEventType distinguishes the payloads delivered to staff devices.
type PushEventType string

const (
	PushEventCall    PushEventType = "call"
	PushEventDismiss PushEventType = "dismiss"
)

// Keys of the data-only payload.
const (
	PushKeyType      = "type"
	PushKeyRequestID = "requestId"
	PushKeyZone      = "zone"
	PushKeyTable     = "table"
)

// PushMessage is a provider-agnostic data message.
//
// Data values are strings because push transports only carry string maps.
// Title and Body are set for visible alerts; a dismiss is silent.
type PushMessage struct {
	Event PushEventType
	Data  map[string]string
	Title string
	Body  string
}

// Silent reports whether the message carries no visible alert.
func (m *PushMessage) Silent() bool {
	return m.Title == "" && m.Body == ""
}

// NewCallMessage builds the alert fanned out when a table raises a call.
func NewCallMessage(call *Call, title string) *PushMessage {
	table := strconv.Itoa(call.TableNumber)

	return &PushMessage{
		Event: PushEventCall,
		Data: map[string]string{
			PushKeyType:      string(PushEventCall),
			PushKeyRequestID: call.ID.String(),
			PushKeyZone:      call.Zone,
			PushKeyTable:     table,
		},
		Title: title,
		Body:  call.Zone + " · table " + table,
	}
}

// NewDismissMessage builds the silent withdrawal sent after any claim attempt.
func NewDismissMessage(callID uuid.UUID) *PushMessage {
	return &PushMessage{
		Event: PushEventDismiss,
		Data: map[string]string{
			PushKeyType:      string(PushEventDismiss),
			PushKeyRequestID: callID.String(),
		},
	}
}
