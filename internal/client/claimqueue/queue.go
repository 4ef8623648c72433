// Package claimqueue keeps claims that a device could not yet deliver and retries
// them with exponential backoff. Each pending claim is one JSON object in a blob
// bucket, so the queue survives restarts of the agent.
package claimqueue

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"callbell/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets on devices
	_ "gocloud.dev/blob/memblob"  // mem:// buckets in tests and dry runs
	"gocloud.dev/gcerrors"
)

const (
	DefaultBackoffBase = 10 * time.Second
	DefaultMaxAttempts = 5

	keyPrefix   = "claims/"
	maxShift    = 20
	idleRecheck = time.Minute

	releaseTimeout = 5 * time.Second
)

// State is the position of a pending claim in its lifecycle.
type State string

const (
	StateQueued         State = "queued"
	StateAttempting     State = "attempting"
	StateRetryScheduled State = "retry-scheduled"
)

// PendingClaim is a claim waiting to reach the server.
type PendingClaim struct {
	CallID        string    `json:"call_id"`
	DeviceID      string    `json:"device_id"`
	DisplayName   string    `json:"display_name,omitempty"`
	Attempts      int       `json:"attempts"`
	NextAttemptAt time.Time `json:"next_attempt_at"`
	State         State     `json:"state"`
	EnqueuedAt    time.Time `json:"enqueued_at"`
}

// UniqueKey is the deduplication key of a claim.
func UniqueKey(callID string) string {
	return "claim_" + callID
}

func objectKey(callID string) string {
	return keyPrefix + UniqueKey(callID) + ".json"
}

// Claimer delivers one claim. A nil error means the server answered and the claim
// is finished whatever the answer was; any error schedules a retry.
type Claimer interface {
	Claim(ctx context.Context, claim *PendingClaim) error
}

// ClaimerFunc adapts a function to Claimer.
type ClaimerFunc func(ctx context.Context, claim *PendingClaim) error

func (f ClaimerFunc) Claim(ctx context.Context, claim *PendingClaim) error {
	return f(ctx, claim)
}

// Owner identifies the device on whose behalf claims are made.
type Owner struct {
	DeviceID    string
	DisplayName string
}

// Queue is a durable claim retry queue.
type Queue struct {
	bucket      *blob.Bucket
	claimer     Claimer
	owner       Owner
	backoffBase time.Duration
	maxAttempts int
	now         func() time.Time
	logger      *slog.Logger

	// storeMu guards read-modify-write of objects; processMu serializes passes.
	storeMu   sync.Mutex
	processMu sync.Mutex
	wake      chan struct{}
}

// Option customizes a Queue.
type Option func(*Queue)

// WithBackoffBase sets the delay before the first retry. Later retries double it.
func WithBackoffBase(base time.Duration) Option {
	return func(q *Queue) {
		if base > 0 {
			q.backoffBase = base
		}
	}
}

// WithMaxAttempts sets how many failed attempts abandon a claim.
func WithMaxAttempts(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.maxAttempts = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		q.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(q *Queue) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// OpenBucket opens the bucket behind a queue, e.g. "file:///var/lib/agent" or "mem://".
func OpenBucket(ctx context.Context, url string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open claim bucket %q", url)
	}

	return bucket, nil
}

// New creates a queue storing claims in bucket. The caller keeps ownership of the bucket.
func New(bucket *blob.Bucket, claimer Claimer, owner Owner, opts ...Option) (*Queue, error) {
	if bucket == nil || claimer == nil {
		return nil, errors.New("claim queue requires a bucket and a claimer")
	}
	if strings.TrimSpace(owner.DeviceID) == "" {
		return nil, errors.New("claim queue requires a device id")
	}

	q := &Queue{
		bucket:      bucket,
		claimer:     claimer,
		owner:       owner,
		backoffBase: DefaultBackoffBase,
		maxAttempts: DefaultMaxAttempts,
		now:         time.Now,
		logger:      slog.Default(),
		wake:        make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(q)
	}

	return q, nil
}

// Enqueue records a claim for callID unless one is already pending, and wakes the
// worker. It reports whether a new claim was created.
func (q *Queue) Enqueue(ctx context.Context, callID string) (bool, error) {
	callID = strings.TrimSpace(callID)
	if callID == "" {
		return false, errors.New("call id is required")
	}

	q.storeMu.Lock()
	defer q.storeMu.Unlock()

	key := objectKey(callID)
	exists, err := q.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "check pending claim %s", callID)
	}
	if exists {
		q.logger.Debug("Claim already pending", slog.String("call_id", callID))

		return false, nil
	}

	now := q.now()
	claim := &PendingClaim{
		CallID:        callID,
		DeviceID:      q.owner.DeviceID,
		DisplayName:   q.owner.DisplayName,
		NextAttemptAt: now,
		State:         StateQueued,
		EnqueuedAt:    now,
	}
	if err := q.put(ctx, claim); err != nil {
		return false, err
	}

	q.notify()

	return true, nil
}

// Pending returns every stored claim in enqueue order.
func (q *Queue) Pending(ctx context.Context) ([]*PendingClaim, error) {
	q.storeMu.Lock()
	defer q.storeMu.Unlock()

	return q.list(ctx)
}

// NextDue returns the earliest next attempt time, or false when the queue is empty.
func (q *Queue) NextDue(ctx context.Context) (time.Time, bool, error) {
	claims, err := q.Pending(ctx)
	if err != nil {
		return time.Time{}, false, err
	}

	var next time.Time
	for i, claim := range claims {
		if i == 0 || claim.NextAttemptAt.Before(next) {
			next = claim.NextAttemptAt
		}
	}

	return next, len(claims) > 0, nil
}

// Recover puts claims left in the attempting state by a crashed process back in
// the queue. It returns how many were reset.
func (q *Queue) Recover(ctx context.Context) (int, error) {
	q.storeMu.Lock()
	defer q.storeMu.Unlock()

	claims, err := q.list(ctx)
	if err != nil {
		return 0, err
	}

	reset := 0
	for _, claim := range claims {
		if claim.State != StateAttempting {
			continue
		}
		claim.State = StateQueued
		if err := q.put(ctx, claim); err != nil {
			return reset, err
		}
		reset++
	}

	if reset > 0 {
		q.logger.Info("Recovered interrupted claims", slog.Int("count", reset))
	}

	return reset, nil
}

// ProcessDue attempts every claim whose next attempt time has passed, oldest
// first. It returns how many claims were attempted.
func (q *Queue) ProcessDue(ctx context.Context) (int, error) {
	q.processMu.Lock()
	defer q.processMu.Unlock()

	claims, err := q.Pending(ctx)
	if err != nil {
		return 0, err
	}

	now := q.now()
	attempted := 0
	for _, claim := range claims {
		if ctx.Err() != nil {
			return attempted, ctx.Err()
		}
		if claim.State == StateAttempting || claim.NextAttemptAt.After(now) {
			continue
		}
		if err := q.attempt(ctx, claim); err != nil {
			return attempted, err
		}
		attempted++
	}

	return attempted, nil
}

func (q *Queue) attempt(ctx context.Context, claim *PendingClaim) (err error) {
	logger := q.logger.With(slog.String("call_id", claim.CallID))

	claim.State = StateAttempting
	if err := q.save(ctx, claim); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			q.release(claim, logger)
		}
	}()

	claimErr := q.claimer.Claim(ctx, claim)
	if claimErr != nil && ctx.Err() != nil {
		// Interrupted, not failed: the attempt is not counted.
		return errors.WithStack(ctx.Err())
	}
	if claimErr == nil {
		logger.Info("Claim delivered", slog.Int("attempts", claim.Attempts+1))

		return q.remove(ctx, claim.CallID)
	}

	claim.Attempts++
	if claim.Attempts >= q.maxAttempts {
		logger.Warn("Claim abandoned",
			slog.Int("attempts", claim.Attempts),
			slog.Any("error", claimErr),
		)

		return q.remove(ctx, claim.CallID)
	}

	claim.State = StateRetryScheduled
	claim.NextAttemptAt = q.now().Add(q.backoff(claim.Attempts))
	logger.Warn("Claim failed, retry scheduled",
		slog.Int("attempts", claim.Attempts),
		slog.Time("next_attempt_at", claim.NextAttemptAt),
		slog.Any("error", claimErr),
	)

	return q.save(ctx, claim)
}

// release puts a claim whose attempt could not be recorded back in the queue, so
// the next ProcessDue retries it instead of skipping it as in flight.
func (q *Queue) release(claim *PendingClaim, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	claim.State = StateQueued
	if err := q.save(ctx, claim); err != nil {
		logger.Error("Failed to release claim, it stays in flight until Recover", slog.Any("error", err))
	}
}

// backoff returns base * 2^(attempts-1).
func (q *Queue) backoff(attempts int) time.Duration {
	shift := attempts - 1
	if shift < 0 {
		shift = 0
	}
	if shift > maxShift {
		shift = maxShift
	}

	return q.backoffBase << shift
}

// Run processes claims until ctx is cancelled, waking on Enqueue or when the
// earliest retry is due.
func (q *Queue) Run(ctx context.Context) error {
	if _, err := q.Recover(ctx); err != nil {
		return err
	}

	for {
		wait := idleRecheck
		if _, err := q.ProcessDue(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			q.logger.Error("Failed to process claims", slog.Any("error", err))
			wait = q.backoffBase
		} else if next, ok, err := q.NextDue(ctx); err == nil && ok {
			wait = max(next.Sub(q.now()), 0)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil
		case <-q.wake:
		case <-timer.C:
		}
		timer.Stop()
	}
}

func (q *Queue) notify() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue) save(ctx context.Context, claim *PendingClaim) error {
	q.storeMu.Lock()
	defer q.storeMu.Unlock()

	return q.put(ctx, claim)
}

func (q *Queue) remove(ctx context.Context, callID string) error {
	q.storeMu.Lock()
	defer q.storeMu.Unlock()

	err := q.bucket.Delete(ctx, objectKey(callID))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete pending claim %s", callID)
	}

	return nil
}

func (q *Queue) put(ctx context.Context, claim *PendingClaim) error {
	raw, err := json.Marshal(claim)
	if err != nil {
		return errors.Wrap(err, "encode pending claim")
	}

	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := q.bucket.WriteAll(ctx, objectKey(claim.CallID), raw, opts); err != nil {
		return errors.Wrapf(err, "write pending claim %s", claim.CallID)
	}

	return nil
}

func (q *Queue) list(ctx context.Context) ([]*PendingClaim, error) {
	var claims []*PendingClaim

	iter := q.bucket.List(&blob.ListOptions{Prefix: keyPrefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "list pending claims")
		}
		if obj.IsDir {
			continue
		}

		raw, err := q.bucket.ReadAll(ctx, obj.Key)
		if err != nil {
			if gcerrors.Code(err) == gcerrors.NotFound {
				continue
			}

			return nil, errors.Wrapf(err, "read %s", obj.Key)
		}

		var claim PendingClaim
		if err := json.Unmarshal(raw, &claim); err != nil {
			q.logger.Warn("Skipping unreadable pending claim", slog.String("key", obj.Key), slog.Any("error", err))

			continue
		}
		claims = append(claims, &claim)
	}

	sort.SliceStable(claims, func(i, j int) bool {
		if claims[i].EnqueuedAt.Equal(claims[j].EnqueuedAt) {
			return claims[i].CallID < claims[j].CallID
		}

		return claims[i].EnqueuedAt.Before(claims[j].EnqueuedAt)
	})

	return claims, nil
}
