package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"callbell/internal/domain/entity"
	"callbell/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := New()

	m.PushSent(entity.PushEventCall, service.DeliverySent)
	m.PushSent(entity.PushEventCall, service.DeliverySent)
	m.PushSent(entity.PushEventDismiss, service.DeliveryPermanentFailure)
	m.ClaimResult(service.ClaimResultClaimed)
	m.ClaimResult(service.ClaimResultLost)
	m.ClaimResult(service.ClaimResultLost)
	m.CallCreated()

	assert.InDelta(t, 2, testutil.ToFloat64(m.pushSends.WithLabelValues("call", "sent")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.pushSends.WithLabelValues("dismiss", "invalid")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.claims.WithLabelValues("claimed")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.claims.WithLabelValues("lost")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.callsCreated), 0)
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	m := New()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/health", "200")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpRequests))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "callbell_http_requests_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
