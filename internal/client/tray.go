package client

import (
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Alert is a call shown to the staff member.
type Alert struct {
	CallID  string
	Zone    string
	Table   string
	Title   string
	Body    string
	ShownAt time.Time
}

// AlertTray is where a device shows and withdraws call alerts.
type AlertTray interface {
	// Show displays an alert, replacing any alert for the same call.
	Show(alert *Alert)
	// Withdraw removes the alert for callID and reports whether one was shown.
	Withdraw(callID string) bool
	// Active lists the shown alerts, oldest first.
	Active() []*Alert
}

type memoryTray struct {
	mu     sync.Mutex
	alerts map[string]*Alert
}

// NewMemoryTray returns a tray that keeps alerts in memory.
func NewMemoryTray() AlertTray {
	return &memoryTray{alerts: make(map[string]*Alert)}
}

func (t *memoryTray) Show(alert *Alert) {
	t.mu.Lock()
	defer t.mu.Unlock()

	shown := *alert
	if shown.ShownAt.IsZero() {
		shown.ShownAt = time.Now()
	}
	t.alerts[alert.CallID] = &shown
}

func (t *memoryTray) Withdraw(callID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.alerts[callID]
	delete(t.alerts, callID)

	return ok
}

func (t *memoryTray) Active() []*Alert {
	t.mu.Lock()
	defer t.mu.Unlock()

	active := make([]*Alert, 0, len(t.alerts))
	for _, alert := range t.alerts {
		copied := *alert
		active = append(active, &copied)
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].ShownAt.Equal(active[j].ShownAt) {
			return active[i].CallID < active[j].CallID
		}

		return active[i].ShownAt.Before(active[j].ShownAt)
	})

	return active
}

type logTray struct {
	AlertTray
	logger *slog.Logger
}

// NewLogTray wraps tray and logs every alert shown or withdrawn.
func NewLogTray(tray AlertTray, logger *slog.Logger) AlertTray {
	return &logTray{AlertTray: tray, logger: logger}
}

func (t *logTray) Show(alert *Alert) {
	t.AlertTray.Show(alert)
	t.logger.Info("Alert shown",
		slog.String("call_id", alert.CallID),
		slog.String("title", alert.Title),
		slog.String("zone", alert.Zone),
		slog.String("table", alert.Table),
	)
}

func (t *logTray) Withdraw(callID string) bool {
	withdrawn := t.AlertTray.Withdraw(callID)
	if withdrawn {
		t.logger.Info("Alert withdrawn", slog.String("call_id", callID))
	}

	return withdrawn
}
