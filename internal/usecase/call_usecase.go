package usecase

import (
	"context"

	"callbell/internal/domain/entity"
)

// CreateCallResult is returned after a call was persisted and announced.
type CreateCallResult struct {
	Call        *entity.Call
	Sent        int
	Deactivated int
}

// ClaimRequest carries the raw claim input from a device.
type ClaimRequest struct {
	CallID      string
	DeviceID    string
	DisplayName string
}

// CallUsecase defines the call lifecycle use cases
type CallUsecase interface {
	// CreateCall validates and persists an open call, then announces it to every active device.
	CreateCall(ctx context.Context, zone string, table int) (*CreateCallResult, error)

	// ClaimCall arbitrates a claim. Losing the race is reported through the outcome,
	// not as an error. A dismiss is fanned out whatever the outcome.
	ClaimCall(ctx context.Context, req *ClaimRequest) (*entity.ClaimOutcome, error)
}
