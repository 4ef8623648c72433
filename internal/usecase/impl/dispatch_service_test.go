package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"callbell/config"
	"callbell/internal/domain/entity"
	"callbell/internal/domain/service"
	mockRepo "callbell/internal/mocks/repository"
	mockSvc "callbell/internal/mocks/service"
	"callbell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	errSimulatedTransient = errors.New("simulated timeout")
	errSimulatedPermanent = errors.New("simulated unregistered")
)

type dispatchServiceFixtures struct {
	service    usecase.DispatchUsecase
	sender     *mockSvc.MockPushSender
	classifier *mockSvc.MockFailureClassifier
	deviceRepo *mockRepo.MockDeviceRepository
	metrics    *mockSvc.MockMetricsRecorder
}

func createTestDispatchService(t *testing.T, cfg *config.Config) dispatchServiceFixtures {
	sender := mockSvc.NewMockPushSender(t)
	classifier := mockSvc.NewMockFailureClassifier(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	metrics.EXPECT().PushSent(mock.Anything, mock.Anything).Return().Maybe()

	classifier.EXPECT().Classify(errSimulatedTransient).Return(service.DeliveryTransientFailure).Maybe()
	classifier.EXPECT().Classify(errSimulatedPermanent).Return(service.DeliveryPermanentFailure).Maybe()

	svc := NewDispatchService(DispatchServiceParams{
		Sender:     sender,
		Classifier: classifier,
		DeviceRepo: deviceRepo,
		Metrics:    metrics,
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return dispatchServiceFixtures{
		service:    svc,
		sender:     sender,
		classifier: classifier,
		deviceRepo: deviceRepo,
		metrics:    metrics,
	}
}

func TestDispatchService_Dispatch_IsolatesFailures(t *testing.T) {
	fx := createTestDispatchService(t, nil)

	msg := entity.NewDismissMessage(uuid.New())
	fx.sender.EXPECT().Send(mock.Anything, "ok-1", msg).Return(nil).Once()
	fx.sender.EXPECT().Send(mock.Anything, "ok-2", msg).Return(nil).Once()
	fx.sender.EXPECT().Send(mock.Anything, "flaky", msg).Return(errSimulatedTransient).Once()
	fx.sender.EXPECT().Send(mock.Anything, "dead", msg).Return(errSimulatedPermanent).Once()

	result := fx.service.Dispatch(context.Background(), msg, []string{"ok-1", "flaky", "dead", "ok-2"})

	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Transient)
	assert.Equal(t, []string{"dead"}, result.InvalidEndpoints)
}

func TestDispatchService_Dispatch_DeduplicatesEndpoints(t *testing.T) {
	fx := createTestDispatchService(t, nil)

	msg := entity.NewDismissMessage(uuid.New())
	fx.sender.EXPECT().Send(mock.Anything, "shared", msg).Return(nil).Once()
	fx.sender.EXPECT().Send(mock.Anything, "other", msg).Return(nil).Once()

	result := fx.service.Dispatch(context.Background(), msg, []string{"shared", "", "shared", "other", "shared"})

	assert.Equal(t, 2, result.Sent)
	assert.Empty(t, result.InvalidEndpoints)
}

func TestDispatchService_Dispatch_NoEndpoints(t *testing.T) {
	fx := createTestDispatchService(t, nil)

	result := fx.service.Dispatch(context.Background(), entity.NewDismissMessage(uuid.New()), nil)

	assert.Equal(t, 0, result.Sent)
	assert.NotNil(t, result.InvalidEndpoints)
	assert.Empty(t, result.InvalidEndpoints)
}

func TestDispatchService_Dispatch_BoundsConcurrency(t *testing.T) {
	cfg := &config.Config{}
	cfg.Dispatch.Concurrency = 2
	fx := createTestDispatchService(t, cfg)

	var inFlight, maxInFlight atomic.Int32
	var mu sync.Mutex
	fx.sender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, *entity.PushMessage) error {
			current := inFlight.Add(1)
			mu.Lock()
			if current > maxInFlight.Load() {
				maxInFlight.Store(current)
			}
			mu.Unlock()
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)

			return nil
		}).
		Times(8)

	endpoints := []string{"e1", "e2", "e3", "e4", "e5", "e6", "e7", "e8"}
	result := fx.service.Dispatch(context.Background(), entity.NewDismissMessage(uuid.New()), endpoints)

	assert.Equal(t, 8, result.Sent)
	assert.LessOrEqual(t, maxInFlight.Load(), int32(2))
}

func TestDispatchService_Dispatch_AppliesSendTimeout(t *testing.T) {
	cfg := &config.Config{}
	cfg.Dispatch.SendTimeout = 20 * time.Millisecond
	fx := createTestDispatchService(t, cfg)

	fx.sender.EXPECT().Send(mock.Anything, "slow", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ *entity.PushMessage) error {
			<-ctx.Done()

			return errSimulatedTransient
		}).
		Once()

	result := fx.service.Dispatch(context.Background(), entity.NewDismissMessage(uuid.New()), []string{"slow"})

	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 1, result.Transient)
}

func TestDispatchService_Dispatch_CancelledContextIsTransient(t *testing.T) {
	fx := createTestDispatchService(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := fx.service.Dispatch(ctx, entity.NewDismissMessage(uuid.New()), []string{"a", "b"})

	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 2, result.Transient)
	fx.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchService_Broadcast_DeactivatesPermanentFailuresOnly(t *testing.T) {
	fx := createTestDispatchService(t, nil)

	ctx := context.Background()
	msg := entity.NewDismissMessage(uuid.New())

	fx.deviceRepo.EXPECT().ListActiveEndpoints(ctx).Return([]string{"live", "flaky", "dead"}, nil).Once()
	fx.sender.EXPECT().Send(mock.Anything, "live", msg).Return(nil).Once()
	fx.sender.EXPECT().Send(mock.Anything, "flaky", msg).Return(errSimulatedTransient).Once()
	fx.sender.EXPECT().Send(mock.Anything, "dead", msg).Return(errSimulatedPermanent).Once()
	fx.deviceRepo.EXPECT().DeactivateEndpoints(ctx, []string{"dead"}).Return(int64(1), nil).Once()

	result, err := fx.service.Broadcast(ctx, msg)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Transient)
	assert.Equal(t, int64(1), result.Deactivated)
}

func TestDispatchService_Broadcast_TransientNeverDeactivates(t *testing.T) {
	fx := createTestDispatchService(t, nil)

	ctx := context.Background()
	msg := entity.NewDismissMessage(uuid.New())

	fx.deviceRepo.EXPECT().ListActiveEndpoints(ctx).Return([]string{"flaky"}, nil).Once()
	fx.sender.EXPECT().Send(mock.Anything, "flaky", msg).Return(errSimulatedTransient).Once()

	result, err := fx.service.Broadcast(ctx, msg)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Transient)
	fx.deviceRepo.AssertNotCalled(t, "DeactivateEndpoints", mock.Anything, mock.Anything)
}

func TestDispatchService_Broadcast_DeactivationFailureIsAbsorbed(t *testing.T) {
	fx := createTestDispatchService(t, nil)

	ctx := context.Background()
	msg := entity.NewDismissMessage(uuid.New())

	fx.deviceRepo.EXPECT().ListActiveEndpoints(ctx).Return([]string{"dead"}, nil).Once()
	fx.sender.EXPECT().Send(mock.Anything, "dead", msg).Return(errSimulatedPermanent).Once()
	fx.deviceRepo.EXPECT().DeactivateEndpoints(ctx, []string{"dead"}).Return(int64(0), errors.New("db down")).Once()

	result, err := fx.service.Broadcast(ctx, msg)
	require.NoError(t, err)
	assert.Equal(t, []string{"dead"}, result.InvalidEndpoints)
	assert.Zero(t, result.Deactivated)
}

func TestDispatchService_Broadcast_ListFailure(t *testing.T) {
	fx := createTestDispatchService(t, nil)

	ctx := context.Background()
	fx.deviceRepo.EXPECT().ListActiveEndpoints(ctx).Return(nil, errors.New("db down")).Once()

	result, err := fx.service.Broadcast(ctx, entity.NewDismissMessage(uuid.New()))
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestDispatchService_RateLimiterPacesSends(t *testing.T) {
	cfg := &config.Config{}
	cfg.Dispatch.RatePerSecond = 50
	cfg.Dispatch.Burst = 1
	fx := createTestDispatchService(t, cfg)

	fx.sender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(3)

	start := time.Now()
	result := fx.service.Dispatch(context.Background(), entity.NewDismissMessage(uuid.New()), []string{"a", "b", "c"})

	assert.Equal(t, 3, result.Sent)
	// Burst of one at 50/s: the second and third sends each wait ~20ms.
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
