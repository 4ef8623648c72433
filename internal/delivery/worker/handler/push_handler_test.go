package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"callbell/config"
	deliverycontext "callbell/internal/delivery/context"
	"callbell/internal/domain/constants"
	"callbell/internal/domain/entity"
	"callbell/internal/domain/service"
	"callbell/internal/infra/pubsub"
	mockUsecase "callbell/internal/mocks/usecase"
	"callbell/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockDispatchUsecase) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}
	dispatcher := mockUsecase.NewMockDispatchUsecase(t)

	return NewPushHandler(PushHandlerParams{Config: cfg, Logger: testLogger, Dispatcher: dispatcher}), dispatcher
}

func envelopeBody(t *testing.T, event *service.DismissEvent) string {
	t.Helper()

	envelope, err := pubsub.NewPushEnvelope(event, "projects/test/subscriptions/dismiss")
	require.NoError(t, err)

	raw, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(raw)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func isDismissFor(callID uuid.UUID) any {
	return mock.MatchedBy(func(msg *entity.PushMessage) bool {
		return msg.Event == entity.PushEventDismiss && msg.Data[entity.PushKeyRequestID] == callID.String()
	})
}

func TestPushHandler_BroadcastsDismiss(t *testing.T) {
	h, dispatcher := newPushHandler(t, nil)
	callID := uuid.New()

	dispatcher.EXPECT().Broadcast(mock.Anything, isDismissFor(callID)).
		Return(&usecase.DispatchResult{Sent: 3}, nil).Once()

	rec := servePush(h, envelopeBody(t, &service.DismissEvent{RequestID: "req-1", CallID: callID.String()}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ListFailureAsksForRetry(t *testing.T) {
	h, dispatcher := newPushHandler(t, nil)
	callID := uuid.New()

	dispatcher.EXPECT().Broadcast(mock.Anything, isDismissFor(callID)).
		Return(nil, errors.New("database is locked")).Once()

	rec := servePush(h, envelopeBody(t, &service.DismissEvent{CallID: callID.String()}))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_InvalidCallIDIsAcknowledged(t *testing.T) {
	h, _ := newPushHandler(t, nil)

	rec := servePush(h, envelopeBody(t, &service.DismissEvent{CallID: "not-a-uuid"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedEnvelope(t *testing.T) {
	h, _ := newPushHandler(t, nil)

	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"%%%"}}`).Code)
	assert.Equal(t, http.StatusBadRequest, servePush(h, `not json`).Code)
}

func TestPushHandler_VerifiesTokenForGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, _ := newPushHandler(t, cfg)
	require.NotNil(t, h.verify)
	h.verify = func(*http.Request) error { return errors.New("bad token") }

	rec := servePush(h, envelopeBody(t, &service.DismissEvent{CallID: uuid.NewString()}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cfg.Env.Env = constants.EnvDevelop
	h, _ = newPushHandler(t, cfg)
	assert.Nil(t, h.verify)

	cfg.Env.Env = constants.EnvProduction
	cfg.PubSub.Provider = constants.PubSubProviderLocal
	h, _ = newPushHandler(t, cfg)
	assert.Nil(t, h.verify)
}

func TestGoogleTokenVerifier_RequiresBearer(t *testing.T) {
	verify := NewGoogleTokenVerifier("", "")

	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.Error(t, verify(req))

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	assert.Error(t, verify(req))

	req.Header.Set(echo.HeaderAuthorization, "Bearer ")
	assert.Error(t, verify(req))
}

func TestPushHandler_RequestIDFromAttributes(t *testing.T) {
	h, dispatcher := newPushHandler(t, nil)
	callID := uuid.New()

	var seen string
	dispatcher.EXPECT().Broadcast(mock.Anything, isDismissFor(callID)).
		RunAndReturn(func(ctx context.Context, _ *entity.PushMessage) (*usecase.DispatchResult, error) {
			seen = deliverycontext.GetRequestIDFromContext(ctx)

			return &usecase.DispatchResult{}, nil
		}).Once()

	rec := servePush(h, envelopeBody(t, &service.DismissEvent{RequestID: "req-7", CallID: callID.String()}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-7", seen)
}
