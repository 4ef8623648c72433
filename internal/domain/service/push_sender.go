package service

import (
	"context"
	"fmt"

	"callbell/internal/domain/entity"
)

// DeliveryOutcome classifies the result of a single push send.
type DeliveryOutcome int

const (
	// DeliverySent means the provider accepted the message.
	DeliverySent DeliveryOutcome = iota
	// DeliveryTransientFailure is dropped without retry and leaves the endpoint active.
	DeliveryTransientFailure
	// DeliveryPermanentFailure means the endpoint is dead and must be deactivated.
	DeliveryPermanentFailure
)

func (o DeliveryOutcome) String() string {
	switch o {
	case DeliverySent:
		return "sent"
	case DeliveryTransientFailure:
		return "transient"
	case DeliveryPermanentFailure:
		return "invalid"
	default:
		return "unknown"
	}
}

// PushSender delivers one message to one endpoint.
type PushSender interface {
	Send(ctx context.Context, endpoint string, message *entity.PushMessage) error
}

// FailureClassifier maps a send error onto a delivery outcome.
type FailureClassifier interface {
	Classify(err error) DeliveryOutcome
}

// ProviderError is a structured rejection returned by a push provider.
type ProviderError struct {
	StatusCode int      // HTTP status, 0 when unknown
	Status     string   // Provider status string, e.g. NOT_FOUND
	Message    string   // Human-readable provider message
	Details    []string // Provider specific error codes
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("push provider error: http=%d status=%s message=%s", e.StatusCode, e.Status, e.Message)
}

// AccessTokenSource supplies a bearer credential for the push provider.
type AccessTokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}
