package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"callbell/config"
	"callbell/internal/domain/entity"
	"callbell/internal/domain/repository"
	"callbell/internal/domain/service"
	"callbell/internal/errors"
	"callbell/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultDispatchWorkers = 16
	defaultSendTimeout     = 10 * time.Second
)

// dispatchService implements the DispatchUsecase interface
type dispatchService struct {
	sender      service.PushSender
	classifier  service.FailureClassifier
	deviceRepo  repository.DeviceRepository
	metrics     service.MetricsRecorder
	limiter     *rate.Limiter
	workers     int
	sendTimeout time.Duration
	logger      *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	Sender     service.PushSender
	Classifier service.FailureClassifier
	DeviceRepo repository.DeviceRepository
	Metrics    service.MetricsRecorder
	Config     *config.Config
	Logger     *slog.Logger
}

// NewDispatchService creates a new push fan-out service
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	svc := &dispatchService{
		sender:      params.Sender,
		classifier:  params.Classifier,
		deviceRepo:  params.DeviceRepo,
		metrics:     params.Metrics,
		workers:     defaultDispatchWorkers,
		sendTimeout: defaultSendTimeout,
		logger:      params.Logger,
	}

	if params.Config != nil {
		dispatchCfg := params.Config.Dispatch
		if dispatchCfg.Concurrency > 0 {
			svc.workers = dispatchCfg.Concurrency
		}
		if dispatchCfg.SendTimeout > 0 {
			svc.sendTimeout = dispatchCfg.SendTimeout
		}
		if dispatchCfg.RatePerSecond > 0 {
			burst := dispatchCfg.Burst
			if burst <= 0 {
				burst = svc.workers
			}
			svc.limiter = rate.NewLimiter(rate.Limit(dispatchCfg.RatePerSecond), burst)
		}
	}

	return svc
}

// Dispatch sends message to every distinct endpoint with bounded concurrency
func (s *dispatchService) Dispatch(ctx context.Context, message *entity.PushMessage, endpoints []string) *usecase.DispatchResult {
	targets := uniqueEndpoints(endpoints)
	result := &usecase.DispatchResult{InvalidEndpoints: []string{}}
	if len(targets) == 0 {
		return result
	}

	outcomes := make([]service.DeliveryOutcome, len(targets))
	targetCh := make(chan int)
	resultCh := make(chan sendOutcomeWithIndex)

	workerGroup := s.spawnSendWorkers(ctx, s.workerCount(len(targets)), targetCh, resultCh, message, targets)
	go dispatchSendWork(targetCh, len(targets))
	collectSendOutcomes(resultCh, outcomes, workerGroup)

	for i, outcome := range outcomes {
		switch outcome {
		case service.DeliverySent:
			result.Sent++
		case service.DeliveryPermanentFailure:
			result.InvalidEndpoints = append(result.InvalidEndpoints, targets[i])
		default:
			result.Transient++
		}
		s.metrics.PushSent(message.Event, outcome)
	}

	return result
}

// Broadcast dispatches to all active devices and prunes dead endpoints
func (s *dispatchService) Broadcast(ctx context.Context, message *entity.PushMessage) (*usecase.DispatchResult, error) {
	endpoints, err := s.deviceRepo.ListActiveEndpoints(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active endpoints")
	}

	result := s.Dispatch(ctx, message, endpoints)
	if len(result.InvalidEndpoints) == 0 {
		return result, nil
	}

	deactivated, err := s.deviceRepo.DeactivateEndpoints(ctx, result.InvalidEndpoints)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to deactivate invalid endpoints",
			slog.Int("count", len(result.InvalidEndpoints)),
			slog.Any("error", err),
		)

		return result, nil
	}
	result.Deactivated = deactivated

	s.logger.InfoContext(ctx, "Deactivated invalid push endpoints",
		slog.String("event", string(message.Event)),
		slog.Int64("deactivated", deactivated),
	)

	return result, nil
}

func (s *dispatchService) workerCount(targetCount int) int {
	if targetCount < s.workers {
		return targetCount
	}

	return s.workers
}

type sendOutcomeWithIndex struct {
	index   int
	outcome service.DeliveryOutcome
}

func (s *dispatchService) spawnSendWorkers(
	ctx context.Context,
	workerCount int,
	targetCh <-chan int,
	resultCh chan<- sendOutcomeWithIndex,
	message *entity.PushMessage,
	targets []string,
) *sync.WaitGroup {
	var workerGroup sync.WaitGroup

	for i := 0; i < workerCount; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range targetCh {
				resultCh <- sendOutcomeWithIndex{index: idx, outcome: s.sendOne(ctx, targets[idx], message)}
			}
		}()
	}

	return &workerGroup
}

// sendOne performs a single paced, time-bounded send. A cancelled context
// turns the remaining sends into transient failures.
func (s *dispatchService) sendOne(ctx context.Context, endpoint string, message *entity.PushMessage) service.DeliveryOutcome {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return service.DeliveryTransientFailure
		}
	}
	if ctx.Err() != nil {
		return service.DeliveryTransientFailure
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	err := s.sender.Send(sendCtx, endpoint, message)
	if err == nil {
		return service.DeliverySent
	}

	outcome := s.classifier.Classify(err)
	s.logger.DebugContext(ctx, "Push send failed",
		slog.String("event", string(message.Event)),
		slog.String("outcome", outcome.String()),
		slog.Any("error", err),
	)

	return outcome
}

func dispatchSendWork(targetCh chan<- int, targetCount int) {
	defer close(targetCh)

	for i := 0; i < targetCount; i++ {
		targetCh <- i
	}
}

func collectSendOutcomes(resultCh chan sendOutcomeWithIndex, outcomes []service.DeliveryOutcome, workerGroup *sync.WaitGroup) {
	go func() {
		workerGroup.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		outcomes[res.index] = res.outcome
	}
}

func uniqueEndpoints(endpoints []string) []string {
	seen := make(map[string]struct{}, len(endpoints))
	unique := make([]string, 0, len(endpoints))
	for _, endpoint := range endpoints {
		if endpoint == "" {
			continue
		}
		if _, ok := seen[endpoint]; ok {
			continue
		}
		seen[endpoint] = struct{}{}
		unique = append(unique, endpoint)
	}

	return unique
}
