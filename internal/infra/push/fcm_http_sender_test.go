package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"callbell/internal/domain/entity"
	"callbell/internal/domain/service"
	mockSvc "callbell/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFCMServer(t *testing.T, handler func(w http.ResponseWriter, body fcmRequest)) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/projects/demo-project/messages:send", r.URL.Path)
		assert.Equal(t, "Bearer access-123", r.Header.Get("Authorization"))

		var body fcmRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		handler(w, body)
	}))
	t.Cleanup(server.Close)

	return server
}

func newTokenSource(t *testing.T) *mockSvc.MockAccessTokenSource {
	t.Helper()

	tokens := mockSvc.NewMockAccessTokenSource(t)
	tokens.EXPECT().AccessToken(mock.Anything).Return("access-123", nil)

	return tokens
}

func TestFCMHTTPSender_SendCallMessage(t *testing.T) {
	call := &entity.Call{ID: uuid.New(), Zone: "patio", TableNumber: 5}

	server := newFCMServer(t, func(w http.ResponseWriter, body fcmRequest) {
		assert.Equal(t, "device-token", body.Message.Token)
		assert.Equal(t, "call", body.Message.Data["type"])
		assert.Equal(t, "patio", body.Message.Data["zone"])
		assert.Equal(t, "5", body.Message.Data["table"])
		require.NotNil(t, body.Message.Notification)
		assert.Equal(t, "Service needed", body.Message.Notification.Title)
		require.NotNil(t, body.Message.Android)
		assert.Equal(t, "high", body.Message.Android.Priority)

		_, _ = w.Write([]byte(`{"name":"projects/demo-project/messages/1"}`))
	})

	sender := NewFCMHTTPSender("demo-project", server.URL, newTokenSource(t), slog.Default())

	err := sender.Send(context.Background(), "device-token", entity.NewCallMessage(call, "Service needed"))
	assert.NoError(t, err)
}

func TestFCMHTTPSender_DismissIsDataOnly(t *testing.T) {
	server := newFCMServer(t, func(w http.ResponseWriter, body fcmRequest) {
		assert.Nil(t, body.Message.Notification)
		assert.Equal(t, "dismiss", body.Message.Data["type"])
		_, _ = w.Write([]byte(`{}`))
	})

	sender := NewFCMHTTPSender("demo-project", server.URL, newTokenSource(t), slog.Default())

	assert.NoError(t, sender.Send(context.Background(), "device-token", entity.NewDismissMessage(uuid.New())))
}

func TestFCMHTTPSender_ProviderErrorIsDecoded(t *testing.T) {
	server := newFCMServer(t, func(w http.ResponseWriter, _ fcmRequest) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND",
			"details":[{"@type":"type.googleapis.com/google.firebase.fcm.v1.FcmError","errorCode":"UNREGISTERED"}]}}`))
	})

	sender := NewFCMHTTPSender("demo-project", server.URL, newTokenSource(t), slog.Default())

	err := sender.Send(context.Background(), "dead-token", entity.NewDismissMessage(uuid.New()))
	require.Error(t, err)

	var perr *service.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusNotFound, perr.StatusCode)
	assert.Equal(t, "NOT_FOUND", perr.Status)
	assert.Equal(t, []string{"UNREGISTERED"}, perr.Details)
	assert.Equal(t, service.DeliveryPermanentFailure, NewClassifier().Classify(err))
}

func TestFCMHTTPSender_BareNotFoundIsTransient(t *testing.T) {
	server := newFCMServer(t, func(w http.ResponseWriter, _ fcmRequest) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("404 page not found"))
	})

	sender := NewFCMHTTPSender("demo-project", server.URL, newTokenSource(t), slog.Default())

	err := sender.Send(context.Background(), "live-token", entity.NewDismissMessage(uuid.New()))
	require.Error(t, err)

	var perr *service.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusNotFound, perr.StatusCode)
	assert.Empty(t, perr.Status)
	assert.Equal(t, service.DeliveryTransientFailure, NewClassifier().Classify(err))
}

func TestFCMHTTPSender_UndecodableErrorKeepsStatus(t *testing.T) {
	server := newFCMServer(t, func(w http.ResponseWriter, _ fcmRequest) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	})

	sender := NewFCMHTTPSender("demo-project", server.URL, newTokenSource(t), slog.Default())

	err := sender.Send(context.Background(), "token", entity.NewDismissMessage(uuid.New()))

	var perr *service.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusBadGateway, perr.StatusCode)
	assert.Equal(t, "upstream unavailable", perr.Message)
	assert.Equal(t, service.DeliveryTransientFailure, NewClassifier().Classify(err))
}

func TestFCMHTTPSender_CredentialFailure(t *testing.T) {
	tokens := mockSvc.NewMockAccessTokenSource(t)
	tokens.EXPECT().AccessToken(mock.Anything).Return("", errors.New("token exchange failed with status 500"))

	sender := NewFCMHTTPSender("demo-project", "http://127.0.0.1:0", tokens, slog.Default())

	err := sender.Send(context.Background(), "token", entity.NewDismissMessage(uuid.New()))
	require.Error(t, err)
	assert.Equal(t, service.DeliveryTransientFailure, NewClassifier().Classify(err))
}
