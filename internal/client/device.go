package client

import (
	"context"
	"log/slog"
	"strings"

	"callbell/internal/client/claimqueue"
	"callbell/internal/domain/entity"
	"callbell/internal/errors"
)

const alertTitle = "Service needed"

// ErrMalformedMessage is returned for push data without a type or request id.
var ErrMalformedMessage = errors.New("malformed push message")

// Enqueuer accepts claims for later delivery.
type Enqueuer interface {
	Enqueue(ctx context.Context, callID string) (bool, error)
}

// Device reacts to push messages and to the staff member acknowledging a call.
type Device struct {
	tray   AlertTray
	queue  Enqueuer
	logger *slog.Logger
}

func NewDevice(tray AlertTray, queue Enqueuer, logger *slog.Logger) *Device {
	return &Device{
		tray:   tray,
		queue:  queue,
		logger: logger,
	}
}

// HandleMessage applies a data-only push: a call shows an alert and a dismiss
// withdraws it. Unknown types are ignored.
func (d *Device) HandleMessage(ctx context.Context, data map[string]string) error {
	eventType := entity.PushEventType(data[entity.PushKeyType])
	callID := strings.TrimSpace(data[entity.PushKeyRequestID])
	if eventType == "" || callID == "" {
		return ErrMalformedMessage
	}

	switch eventType {
	case entity.PushEventCall:
		zone, table := data[entity.PushKeyZone], data[entity.PushKeyTable]
		d.tray.Show(&Alert{
			CallID: callID,
			Zone:   zone,
			Table:  table,
			Title:  alertTitle,
			Body:   zone + " · table " + table,
		})
	case entity.PushEventDismiss:
		d.tray.Withdraw(callID)
	default:
		d.logger.DebugContext(ctx, "Ignoring push message", slog.String("type", string(eventType)))
	}

	return nil
}

// Acknowledge is the "I've got it" action. The alert is withdrawn locally right
// away and stays withdrawn whatever the server later answers; the claim itself is
// queued for delivery.
func (d *Device) Acknowledge(ctx context.Context, callID string) (bool, error) {
	callID = strings.TrimSpace(callID)
	if callID == "" {
		return false, errors.New("call id is required")
	}

	d.tray.Withdraw(callID)

	created, err := d.queue.Enqueue(ctx, callID)
	if err != nil {
		return false, errors.Wrap(err, "enqueue claim")
	}

	return created, nil
}

// Alerts lists the alerts currently shown.
func (d *Device) Alerts() []*Alert {
	return d.tray.Active()
}

// NewClaimer delivers queued claims through api. Every definitive answer
// completes the claim.
func NewClaimer(api *APIClient, logger *slog.Logger) claimqueue.Claimer {
	return claimqueue.ClaimerFunc(func(ctx context.Context, claim *claimqueue.PendingClaim) error {
		answer, err := api.ClaimCall(ctx, claim.CallID, claim.DeviceID, claim.DisplayName)
		if err != nil {
			return err
		}

		logger.InfoContext(ctx, "Claim answered",
			slog.String("call_id", claim.CallID),
			slog.Int("status_code", answer.StatusCode),
			slog.Bool("taken", answer.Taken),
			slog.String("status", answer.Status),
			slog.String("error", answer.Code),
		)

		return nil
	})
}
