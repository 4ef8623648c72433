// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"callbell/config"
	deliverycontext "callbell/internal/delivery/context"
	"callbell/internal/domain/entity"
	domainerrors "callbell/internal/domain/errors"
	"callbell/internal/domain/repository"
	"callbell/internal/domain/service"
	"callbell/internal/errors"
	"callbell/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultCallTitle      = "Service needed"
	defaultDismissTimeout = 30 * time.Second
)

// callService implements the CallUsecase interface.
type callService struct {
	callRepo       repository.CallRepository
	deviceRepo     repository.DeviceRepository
	dispatcher     usecase.DispatchUsecase
	publisher      service.EventPublisher
	metrics        service.MetricsRecorder
	callTitle      string
	asyncDismiss   bool
	dismissTimeout time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// CallServiceParams holds dependencies for CallService, injected by Fx.
type CallServiceParams struct {
	fx.In

	CallRepo   repository.CallRepository
	DeviceRepo repository.DeviceRepository
	Dispatcher usecase.DispatchUsecase
	Publisher  service.EventPublisher `optional:"true"`
	Metrics    service.MetricsRecorder
	Config     *config.Config
	Logger     *slog.Logger
}

// NewCallService is the constructor for callService.
func NewCallService(params CallServiceParams) usecase.CallUsecase {
	svc := &callService{
		callRepo:       params.CallRepo,
		deviceRepo:     params.DeviceRepo,
		dispatcher:     params.Dispatcher,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		callTitle:      defaultCallTitle,
		dismissTimeout: defaultDismissTimeout,
		now:            time.Now,
		logger:         params.Logger,
	}

	if params.Config != nil {
		if params.Config.Push != nil && params.Config.Push.CallTitle != "" {
			svc.callTitle = params.Config.Push.CallTitle
		}
		if params.Config.Dispatch.DismissTimeout > 0 {
			svc.dismissTimeout = params.Config.Dispatch.DismissTimeout
		}
		svc.asyncDismiss = params.Config.Dispatch.AsyncDismiss
	}

	return svc
}

func (srv *callService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCall validates, persists and announces a new call
func (srv *callService) CreateCall(ctx context.Context, zone string, table int) (*usecase.CreateCallResult, error) {
	normalizedZone := entity.NormalizeZone(zone)
	if normalizedZone == "" {
		return nil, domainerrors.NewValidationError("zone required")
	}
	if table <= 0 {
		return nil, domainerrors.NewValidationError("valid table required")
	}

	call := entity.NewCall(normalizedZone, table, srv.now().UTC())
	if err := srv.callRepo.CreateCall(ctx, call); err != nil {
		return nil, errors.Wrap(err, "failed to create call")
	}
	srv.metrics.CallCreated()

	dispatched, err := srv.dispatcher.Broadcast(ctx, entity.NewCallMessage(call, srv.callTitle))
	if err != nil {
		return nil, errors.Wrap(err, "failed to announce call")
	}

	srv.getLogger(ctx).InfoContext(ctx, "Call created",
		slog.String("call_id", call.ID.String()),
		slog.String("zone", call.Zone),
		slog.Int("table", call.TableNumber),
		slog.Int("sent", dispatched.Sent),
		slog.Int("invalid", len(dispatched.InvalidEndpoints)),
	)

	return &usecase.CreateCallResult{
		Call:        call,
		Sent:        dispatched.Sent,
		Deactivated: len(dispatched.InvalidEndpoints),
	}, nil
}

// ClaimCall arbitrates a claim and withdraws the alert from every device
func (srv *callService) ClaimCall(ctx context.Context, req *usecase.ClaimRequest) (*entity.ClaimOutcome, error) {
	callID, err := uuid.Parse(strings.TrimSpace(req.CallID))
	if err != nil {
		return nil, domainerrors.NewValidationError("request_id must be a valid call id")
	}

	deviceID := strings.TrimSpace(req.DeviceID)
	if !entity.ValidDeviceID(deviceID) {
		return nil, domainerrors.NewValidationError("device_id required")
	}

	logger := srv.getLogger(ctx)

	// Best effort: an unknown device may still claim.
	if err := srv.deviceRepo.TouchLastSeen(ctx, deviceID); err != nil {
		logger.WarnContext(ctx, "Failed to refresh device last_seen_at",
			slog.String("device_id", deviceID),
			slog.Any("error", err),
		)
	}

	outcome, err := srv.callRepo.ClaimCall(ctx, callID, entity.ClaimedBy{
		DeviceID:    deviceID,
		DisplayName: entity.NormalizeDisplayName(req.DisplayName),
	})
	if err != nil {
		if errors.Is(err, repository.ErrCallNotFound) {
			srv.metrics.ClaimResult(service.ClaimResultNotFound)
			srv.dismiss(ctx, callID)

			return nil, domainerrors.ErrCallNotFound
		}
		srv.metrics.ClaimResult(service.ClaimResultError)

		return nil, errors.Wrap(err, "failed to claim call")
	}

	if outcome.Claimed {
		srv.metrics.ClaimResult(service.ClaimResultClaimed)
	} else {
		srv.metrics.ClaimResult(service.ClaimResultLost)
	}

	logger.InfoContext(ctx, "Claim processed",
		slog.String("call_id", callID.String()),
		slog.String("device_id", deviceID),
		slog.Bool("claimed", outcome.Claimed),
		slog.String("status", string(outcome.Status)),
	)

	srv.dismiss(ctx, callID)

	return outcome, nil
}

// dismiss withdraws the call's alert from every active device. It runs detached
// from the caller's cancellation so a disconnecting claimant cannot abort it,
// and its failures never reach the claim result.
func (srv *callService) dismiss(ctx context.Context, callID uuid.UUID) {
	dismissCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.dismissTimeout)
	defer cancel()

	logger := srv.getLogger(ctx)

	if srv.asyncDismiss && srv.publisher != nil {
		err := srv.publisher.PublishDismissEvent(dismissCtx, &service.DismissEvent{
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
			CallID:    callID.String(),
		})
		if err == nil {
			return
		}
		logger.WarnContext(ctx, "Failed to publish dismiss event, sending inline",
			slog.String("call_id", callID.String()),
			slog.Any("error", err),
		)
	}

	result, err := srv.dispatcher.Broadcast(dismissCtx, entity.NewDismissMessage(callID))
	if err != nil {
		logger.WarnContext(ctx, "Dismiss fan-out failed",
			slog.String("call_id", callID.String()),
			slog.Any("error", err),
		)

		return
	}

	logger.DebugContext(ctx, "Dismiss fanned out",
		slog.String("call_id", callID.String()),
		slog.Int("sent", result.Sent),
		slog.Int("transient", result.Transient),
		slog.Int("invalid", len(result.InvalidEndpoints)),
	)
}
