package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"callbell/internal/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQueue struct {
	queued []string
}

func (s *stubQueue) Enqueue(_ context.Context, callID string) (bool, error) {
	s.queued = append(s.queued, callID)

	return true, nil
}

func TestAgentEcho_MessageThenAck(t *testing.T) {
	queue := &stubQueue{}
	device := client.NewDevice(client.NewMemoryTray(), queue, slog.Default())
	e := newAgentEcho(device, slog.Default())

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}

	rec := serve(http.MethodPost, "/messages", `{"type":"call","requestId":"call-1","zone":"patio","table":"5"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(http.MethodGet, "/alerts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var alerts []alertView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &alerts))
	require.Len(t, alerts, 1)
	assert.Equal(t, "call-1", alerts[0].CallID)

	rec = serve(http.MethodPost, "/alerts/call-1/ack", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []string{"call-1"}, queue.queued)
	assert.Empty(t, device.Alerts())

	rec = serve(http.MethodPost, "/messages", `{"type":"call"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
