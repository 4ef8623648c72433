package push

import (
	"context"

	"callbell/internal/domain/entity"
	"callbell/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messagingClient is the part of the Admin SDK client the sender needs.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseSender struct {
	client messagingClient
}

// NewFirebaseSender creates a sender backed by the Firebase Admin SDK.
func NewFirebaseSender(ctx context.Context, projectID, credentialsPath string) (service.PushSender, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{client: client}, nil
}

func (s *firebaseSender) Send(ctx context.Context, endpoint string, message *entity.PushMessage) error {
	msg := &messaging.Message{
		Token:   endpoint,
		Data:    message.Data,
		Android: &messaging.AndroidConfig{Priority: "high"},
	}
	if !message.Silent() {
		msg.Notification = &messaging.Notification{
			Title: message.Title,
			Body:  message.Body,
		}
	}

	if _, err := s.client.Send(ctx, msg); err != nil {
		return toProviderError(err)
	}

	return nil
}

// toProviderError converts Admin SDK errors so the classifier sees one error shape.
func toProviderError(err error) error {
	perr := &service.ProviderError{Message: err.Error()}

	if resp := errorutils.HTTPResponse(err); resp != nil {
		perr.StatusCode = resp.StatusCode
	}

	switch {
	case messaging.IsUnregistered(err):
		perr.Status = "UNREGISTERED"
	case messaging.IsInvalidArgument(err):
		perr.Status = "INVALID_ARGUMENT"
	case perr.StatusCode == 0:
		// Transport failure before any provider answer.
		return errors.Wrap(err, "failed to send notification")
	}

	return perr
}
