package service

import (
	"context"
)

// DismissEvent asks the dispatch worker to withdraw a call's alert from every device.
type DismissEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	CallID    string `json:"call_id"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDismissEvent publishes a dismiss fan-out for async processing
	PublishDismissEvent(ctx context.Context, event *DismissEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
