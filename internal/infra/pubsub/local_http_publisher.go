package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"callbell/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localPublishTimeout = 30 * time.Second
	localMaxDeliveries  = 3
	localRetryDelay     = 200 * time.Millisecond
)

// localHTTPPublisher implements EventPublisher by POSTing Pub/Sub push envelopes
// straight to the dispatch worker, for development without Google Pub/Sub.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	retryDelay time.Duration
}

// PushEnvelope is the body Google Pub/Sub sends to push subscriptions.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: localPublishTimeout,
		},
		logger:     logger,
		retryDelay: localRetryDelay,
	}
}

// NewPushEnvelope wraps an event the way a Pub/Sub push subscription delivers it.
func NewPushEnvelope(event *service.DismissEvent, subscription string) (*PushEnvelope, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	envelope.Message.Attributes = eventAttributes(event)
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return envelope, nil
}

// PublishDismissEvent delivers the event to the local worker endpoint. Like a
// push subscription, a non-2xx answer is redelivered, up to localMaxDeliveries
// attempts in total.
func (p *localHTTPPublisher) PublishDismissEvent(ctx context.Context, event *service.DismissEvent) error {
	envelope, err := NewPushEnvelope(event, "projects/local/subscriptions/dismiss-sub")
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	for attempt := 1; ; attempt++ {
		err = p.deliver(ctx, body, event.RequestID)
		if err == nil {
			p.logger.DebugContext(ctx, "Dismiss event delivered to local worker",
				slog.String("call_id", event.CallID),
				slog.Int("attempt", attempt),
			)

			return nil
		}
		if attempt == localMaxDeliveries {
			return errors.Wrapf(err, "deliver dismiss for call %s", event.CallID)
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(time.Duration(attempt) * p.retryDelay):
		}
	}
}

func (p *localHTTPPublisher) deliver(ctx context.Context, body []byte, requestID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("worker answered %d", resp.StatusCode)
	}

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
