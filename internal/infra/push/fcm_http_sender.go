package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"callbell/internal/domain/entity"
	"callbell/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// DefaultFCMEndpoint is the base URL of the FCM HTTP v1 API.
	DefaultFCMEndpoint = "https://fcm.googleapis.com"

	maxErrorBody = 64 * 1024
)

// fcmHTTPSender posts one message per endpoint to FCM messages:send.
type fcmHTTPSender struct {
	tokens     service.AccessTokenSource
	sendURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFCMHTTPSender creates a sender for the given project. An empty endpoint uses DefaultFCMEndpoint.
func NewFCMHTTPSender(projectID, endpoint string, tokens service.AccessTokenSource, logger *slog.Logger) service.PushSender {
	if endpoint == "" {
		endpoint = DefaultFCMEndpoint
	}

	return &fcmHTTPSender{
		tokens:  tokens,
		sendURL: fmt.Sprintf("%s/v1/projects/%s/messages:send", strings.TrimRight(endpoint, "/"), projectID),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmAndroidConfig struct {
	Priority string `json:"priority"`
}

type fcmMessage struct {
	Token        string            `json:"token"`
	Data         map[string]string `json:"data"`
	Notification *fcmNotification  `json:"notification,omitempty"`
	Android      *fcmAndroidConfig `json:"android,omitempty"`
}

type fcmRequest struct {
	Message fcmMessage `json:"message"`
}

type fcmErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Type      string `json:"@type"`
			ErrorCode string `json:"errorCode"`
		} `json:"details"`
	} `json:"error"`
}

func (s *fcmHTTPSender) Send(ctx context.Context, endpoint string, message *entity.PushMessage) error {
	accessToken, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to obtain push access token")
	}

	payload := fcmRequest{Message: fcmMessage{
		Token:   endpoint,
		Data:    message.Data,
		Android: &fcmAndroidConfig{Priority: "high"},
	}}
	if !message.Silent() {
		payload.Message.Notification = &fcmNotification{Title: message.Title, Body: message.Body}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.sendURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create push request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send push request")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	return decodeProviderError(resp)
}

func decodeProviderError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	perr := &service.ProviderError{StatusCode: resp.StatusCode}

	var decoded fcmErrorResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		perr.Message = strings.TrimSpace(string(raw))

		return perr
	}

	perr.Status = decoded.Error.Status
	perr.Message = decoded.Error.Message
	for _, detail := range decoded.Error.Details {
		if detail.ErrorCode != "" {
			perr.Details = append(perr.Details, detail.ErrorCode)
		}
	}

	return perr
}
