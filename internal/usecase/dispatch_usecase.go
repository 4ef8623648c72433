package usecase

import (
	"context"

	"callbell/internal/domain/entity"
)

// DispatchResult summarizes a best-effort fan-out.
type DispatchResult struct {
	Sent             int      `json:"sent"`
	Transient        int      `json:"transient"`
	InvalidEndpoints []string `json:"invalid_endpoints"`
	Deactivated      int64    `json:"deactivated"`
}

// DispatchUsecase defines push fan-out to staff devices
type DispatchUsecase interface {
	// Dispatch sends message to every distinct endpoint and classifies each outcome.
	// It never fails as a whole.
	Dispatch(ctx context.Context, message *entity.PushMessage, endpoints []string) *DispatchResult

	// Broadcast dispatches to all active devices and deactivates the endpoints the
	// provider reported as permanently invalid. Only a failure to list devices is returned.
	Broadcast(ctx context.Context, message *entity.PushMessage) (*DispatchResult, error)
}
