package client

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"callbell/internal/client/claimqueue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type fakeEnqueuer struct {
	calls []string
	err   error
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, callID string) (bool, error) {
	f.calls = append(f.calls, callID)

	return f.err == nil, f.err
}

func callData(callID string) map[string]string {
	return map[string]string{"type": "call", "requestId": callID, "zone": "patio", "table": "5"}
}

func TestDevice_HandleMessage(t *testing.T) {
	ctx := context.Background()
	device := NewDevice(NewMemoryTray(), &fakeEnqueuer{}, slog.Default())

	require.NoError(t, device.HandleMessage(ctx, callData("call-1")))
	require.NoError(t, device.HandleMessage(ctx, callData("call-2")))

	alerts := device.Alerts()
	require.Len(t, alerts, 2)
	assert.Equal(t, "patio", alerts[0].Zone)
	assert.Equal(t, "5", alerts[0].Table)
	assert.Equal(t, "patio · table 5", alerts[0].Body)

	require.NoError(t, device.HandleMessage(ctx, map[string]string{"type": "dismiss", "requestId": "call-1"}))
	alerts = device.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "call-2", alerts[0].CallID)

	// Dismissing an alert that is not shown is harmless.
	require.NoError(t, device.HandleMessage(ctx, map[string]string{"type": "dismiss", "requestId": "call-9"}))
	// Unknown types are ignored.
	require.NoError(t, device.HandleMessage(ctx, map[string]string{"type": "promo", "requestId": "x"}))
	assert.Len(t, device.Alerts(), 1)
}

func TestDevice_HandleMessage_Malformed(t *testing.T) {
	device := NewDevice(NewMemoryTray(), &fakeEnqueuer{}, slog.Default())

	assert.ErrorIs(t, device.HandleMessage(context.Background(), map[string]string{"type": "call"}), ErrMalformedMessage)
	assert.ErrorIs(t, device.HandleMessage(context.Background(), map[string]string{"requestId": "x"}), ErrMalformedMessage)
}

func TestDevice_Acknowledge_WithdrawsBeforeEnqueue(t *testing.T) {
	ctx := context.Background()
	queue := &fakeEnqueuer{}
	device := NewDevice(NewMemoryTray(), queue, slog.Default())
	require.NoError(t, device.HandleMessage(ctx, callData("call-1")))

	created, err := device.Acknowledge(ctx, "call-1")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Empty(t, device.Alerts())
	assert.Equal(t, []string{"call-1"}, queue.calls)
}

func TestDevice_Acknowledge_WithdrawalIsNotRolledBack(t *testing.T) {
	ctx := context.Background()
	queue := &fakeEnqueuer{err: errors.New("disk full")}
	device := NewDevice(NewMemoryTray(), queue, slog.Default())
	require.NoError(t, device.HandleMessage(ctx, callData("call-1")))

	_, err := device.Acknowledge(ctx, "call-1")
	require.Error(t, err)
	assert.Empty(t, device.Alerts())
}

func TestDevice_Acknowledge_RequiresCallID(t *testing.T) {
	device := NewDevice(NewMemoryTray(), &fakeEnqueuer{}, slog.Default())

	_, err := device.Acknowledge(context.Background(), "")
	assert.Error(t, err)
}

func TestDevice_AcknowledgeThroughQueue(t *testing.T) {
	ctx := context.Background()

	answers := []int{http.StatusServiceUnavailable, http.StatusConflict}
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := answers[0]
		answers = answers[1:]
		paths = append(paths, r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"success":false,"error":"already_taken","status":"claimed"}`))
	}))
	defer server.Close()

	api, err := NewAPIClient(server.URL)
	require.NoError(t, err)

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	now := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	queue, err := claimqueue.New(bucket, NewClaimer(api, slog.Default()),
		claimqueue.Owner{DeviceID: "dev-a", DisplayName: "Ana"},
		claimqueue.WithClock(func() time.Time { return now }),
	)
	require.NoError(t, err)

	device := NewDevice(NewMemoryTray(), queue, slog.Default())
	require.NoError(t, device.HandleMessage(ctx, callData("call-1")))

	created, err := device.Acknowledge(ctx, "call-1")
	require.NoError(t, err)
	assert.True(t, created)

	// 503 keeps the claim for a retry.
	_, err = queue.ProcessDue(ctx)
	require.NoError(t, err)
	pending, err := queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 1, pending[0].Attempts)

	// 409 is a definitive answer.
	now = now.Add(claimqueue.DefaultBackoffBase)
	_, err = queue.ProcessDue(ctx)
	require.NoError(t, err)
	pending, err = queue.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Equal(t, []string{"/claim-call", "/claim-call"}, paths)
	assert.Empty(t, device.Alerts())
}

func TestLogTray(t *testing.T) {
	tray := NewLogTray(NewMemoryTray(), slog.Default())

	tray.Show(&Alert{CallID: "call-1", Zone: "bar", Table: "2"})
	assert.Len(t, tray.Active(), 1)
	assert.True(t, tray.Withdraw("call-1"))
	assert.False(t, tray.Withdraw("call-1"))
	assert.Empty(t, tray.Active())
}
