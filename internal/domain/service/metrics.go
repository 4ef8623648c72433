package service

import (
	"callbell/internal/domain/entity"
)

// Claim results recorded by MetricsRecorder.ClaimResult.
const (
	ClaimResultClaimed  = "claimed"
	ClaimResultLost     = "lost"
	ClaimResultNotFound = "not_found"
	ClaimResultError    = "error"
)

// MetricsRecorder collects domain counters.
type MetricsRecorder interface {
	PushSent(event entity.PushEventType, outcome DeliveryOutcome)
	ClaimResult(result string)
	CallCreated()
}
