package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"callbell/config"
	deliverycontext "callbell/internal/delivery/context"
	domainerrors "callbell/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEcho(debug bool, handler echo.HandlerFunc) (*echo.Echo, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.POST("/claim-call", handler)
	e.GET("/health", handler)

	return e, buf
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	e, _ := newLoggedEcho(false, func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "client id kept", header: "kiosk-patio-5-0001", keep: true},
		{name: "missing id generated", header: ""},
		{name: "id with spaces replaced", header: "bad id"},
		{name: "overlong id replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/claim-call", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			echoed := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, echoed)
			assert.Equal(t, echoed, seen)
			if tt.keep {
				assert.Equal(t, tt.header, echoed)
			} else {
				assert.NotEqual(t, tt.header, echoed)
			}
		})
	}
}

func TestLoggerMiddleware_QuietOnSuccessOutsideDebug(t *testing.T) {
	e, buf := newLoggedEcho(false, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/claim-call", nil))
	assert.Empty(t, buf.String())
}

func TestLoggerMiddleware_LogsFailuresWithRequestID(t *testing.T) {
	e, buf := newLoggedEcho(false, func(c echo.Context) error {
		return domainerrors.ErrCallNotFound
	})

	req := httptest.NewRequest(http.MethodPost, "/claim-call", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	e.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "request_id=req-42")
	assert.Contains(t, out, "route=/claim-call")
}

func TestLoggerMiddleware_DebugLogsSuccessButSkipsHealthChecks(t *testing.T) {
	e, buf := newLoggedEcho(true, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/claim-call", nil))
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "status=200")
}
