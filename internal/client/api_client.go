// Package client is the staff device side of callbell: identity, the local alert
// tray, and delivery of claims to the API through the claim queue.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"callbell/internal/domain/entity"
	"callbell/internal/errors"
)

const (
	defaultRequestTimeout = 15 * time.Second
	maxResponseBody       = 64 << 10
)

// StatusError is a non-success HTTP answer from the API.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api returned %d (%s)", e.StatusCode, e.Code)
	}

	return fmt.Sprintf("api returned %d", e.StatusCode)
}

// Retryable reports whether the request may succeed later.
func (e *StatusError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// Registration is the body of /register-device.
type Registration struct {
	DeviceID string `json:"device_id"`
	Name     string `json:"name,omitempty"`
	Token    string `json:"token"`
	Platform string `json:"platform,omitempty"`
}

// ClaimAnswer is a definitive server answer to a claim.
type ClaimAnswer struct {
	StatusCode int
	Taken      bool
	// Status is the status field of the answer: "taken" on a win, the call's
	// current status on a lost race, empty when the server sent none.
	Status string
	Code   string
}

type apiResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// APIClient talks to the callbell API on behalf of a device.
type APIClient struct {
	baseURL    string
	stationKey string
	httpClient *http.Client
}

// APIOption customizes an APIClient.
type APIOption func(*APIClient)

// WithStationKey sends key as a bearer token on every request.
func WithStationKey(key string) APIOption {
	return func(c *APIClient) {
		c.stationKey = strings.TrimSpace(key)
	}
}

func WithHTTPClient(httpClient *http.Client) APIOption {
	return func(c *APIClient) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewAPIClient creates a client for the API rooted at baseURL.
func NewAPIClient(baseURL string, opts ...APIOption) (*APIClient, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, errors.Wrapf(err, "parse api url %q", baseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.Errorf("api url must be http or https: %q", baseURL)
	}

	client := &APIClient{
		baseURL:    strings.TrimRight(parsed.String(), "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// RegisterDevice upserts the device and its push token.
func (c *APIClient) RegisterDevice(ctx context.Context, reg *Registration) error {
	if reg.Platform == "" {
		reg.Platform = entity.DefaultPlatform
	}

	status, body, err := c.post(ctx, "/register-device", reg)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return &StatusError{StatusCode: status, Code: body.Error, Message: body.Message}
	}

	return nil
}

// ClaimCall asks the server to assign callID to the device. Any 2xx or 4xx answer,
// including a lost race, is returned as a ClaimAnswer. Transport failures, 5xx and
// 429 are returned as errors so the caller can retry.
func (c *APIClient) ClaimCall(ctx context.Context, callID, deviceID, displayName string) (*ClaimAnswer, error) {
	payload := map[string]string{
		"request_id": callID,
		"device_id":  deviceID,
	}
	if displayName != "" {
		payload["name"] = displayName
	}

	status, body, err := c.post(ctx, "/claim-call", payload)
	if err != nil {
		return nil, err
	}

	statusErr := &StatusError{StatusCode: status, Code: body.Error, Message: body.Message}
	if statusErr.Retryable() {
		return nil, statusErr
	}

	return &ClaimAnswer{
		StatusCode: status,
		Taken:      status >= 200 && status < 300,
		Status:     body.Status,
		Code:       body.Error,
	}, nil
}

func (c *APIClient) post(ctx context.Context, path string, payload any) (int, *apiResponse, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, errors.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return 0, nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.stationKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.stationKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "POST %s", path)
	}
	defer resp.Body.Close()

	body := &apiResponse{}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err == nil && len(data) > 0 {
		// Proxies may answer with non-JSON bodies; the status code still decides.
		_ = json.Unmarshal(data, body)
	}

	return resp.StatusCode, body, nil
}
