package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"callbell/config"
	deliverycontext "callbell/internal/delivery/context"
	"callbell/internal/domain/constants"
	"callbell/internal/domain/entity"
	"callbell/internal/domain/service"
	"callbell/internal/infra/pubsub"
	"callbell/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier validates the OIDC token Google attaches to push requests.
type TokenVerifier func(req *http.Request) error

// PushHandler receives dismiss events from a Pub/Sub push subscription. Any 2xx
// acknowledges the message; anything else makes Pub/Sub redeliver it.
type PushHandler struct {
	// verify is nil when push requests are trusted (local provider, develop env).
	verify     TokenVerifier
	logger     *slog.Logger
	dispatcher usecase.DispatchUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Dispatcher usecase.DispatchUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:     params.Logger,
		dispatcher: params.Dispatcher,
	}

	pubsubCfg := params.Config.PubSub
	if pubsubCfg != nil &&
		pubsubCfg.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verify = NewGoogleTokenVerifier(pubsubCfg.PushAudience, pubsubCfg.PushServiceAccount)
	}

	return h
}

// HandlePush broadcasts the silent dismiss named by one push delivery.
func (h *PushHandler) HandlePush(c echo.Context) error {
	req := c.Request()

	if h.verify != nil {
		if err := h.verify(req); err != nil {
			h.logger.WarnContext(req.Context(), "Push request rejected", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	envelope, event, err := decodeDismissEvent(c)
	if err != nil {
		h.logger.WarnContext(req.Context(), "Malformed push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx := h.eventContext(req.Context(), envelope, event)
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	callID, err := uuid.Parse(event.CallID)
	if err != nil {
		// Redelivery cannot repair the id, so the message is acked and dropped.
		logger.Warn("Dismiss event dropped", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	result, err := h.dispatcher.Broadcast(ctx, entity.NewDismissMessage(callID))
	if err != nil {
		logger.Error("Dismiss fan-out failed, requesting redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	logger.Info("Dismiss fanned out",
		slog.Int("sent", result.Sent),
		slog.Int("transient", result.Transient),
		slog.Int("invalid", len(result.InvalidEndpoints)),
	)

	return c.NoContent(http.StatusOK)
}

func decodeDismissEvent(c echo.Context) (*pubsub.PushEnvelope, *service.DismissEvent, error) {
	envelope := new(pubsub.PushEnvelope)
	if err := c.Bind(envelope); err != nil {
		return nil, nil, errors.Wrap(err, "bind envelope")
	}

	data, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode message data")
	}

	event := new(service.DismissEvent)
	if err := json.Unmarshal(data, event); err != nil {
		return nil, nil, errors.Wrap(err, "decode dismiss event")
	}

	return envelope, event, nil
}

// eventContext carries the publisher's request id into the fan-out so worker
// logs line up with the API request that claimed the call. The id is taken from
// message attributes, then the event payload, then the X-Request-Id header.
func (h *PushHandler) eventContext(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.DismissEvent) context.Context {
	requestID := envelope.Message.Attributes["request_id"]
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	logger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("call_id", event.CallID),
	)
	if envelope.Message.MessageID != "" {
		logger = logger.With(slog.String("message_id", envelope.Message.MessageID))
	}

	ctx = deliverycontext.WithRequestID(ctx, requestID)

	return deliverycontext.WithLogger(ctx, logger)
}

// NewGoogleTokenVerifier checks the bearer OIDC token of a Pub/Sub push request.
// An empty audience means the URL the request was sent to. An empty
// serviceAccount accepts any verified Google identity.
// See https://cloud.google.com/pubsub/docs/authenticate-push-subscriptions
func NewGoogleTokenVerifier(audience, serviceAccount string) TokenVerifier {
	return func(req *http.Request) error {
		token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
		if !found || token == "" {
			return errors.New("missing bearer token")
		}

		aud := audience
		if aud == "" {
			scheme := "https"
			if req.TLS == nil {
				scheme = "http"
			}
			aud = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
		}

		payload, err := idtoken.Validate(req.Context(), token, aud)
		if err != nil {
			return errors.Wrap(err, "validate push token")
		}

		if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
			return errors.Errorf("invalid issuer: %s", payload.Issuer)
		}
		if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
			return errors.New("push identity email not verified")
		}
		if serviceAccount != "" {
			if email, _ := payload.Claims["email"].(string); email != serviceAccount {
				return errors.Errorf("unexpected push identity: %s", email)
			}
		}

		return nil
	}
}
