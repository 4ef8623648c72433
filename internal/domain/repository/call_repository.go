package repository

import (
	"context"

	"callbell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCallNotFound is returned when no call exists for the given id.
var ErrCallNotFound = errors.New("call not found")

// CallRepository defines the interface for table call persistence.
type CallRepository interface {
	// CreateCall persists a new open call.
	CreateCall(ctx context.Context, call *entity.Call) error

	// ClaimCall transitions the call from open to claimed in a single conditional write.
	// When the call is no longer open the current status is read from the primary and
	// returned with Claimed=false; claimed_by is never overwritten.
	ClaimCall(ctx context.Context, callID uuid.UUID, claimedBy entity.ClaimedBy) (*entity.ClaimOutcome, error)
}
