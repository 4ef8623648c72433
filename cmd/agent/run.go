package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"callbell/internal/client"
	"callbell/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

type alertView struct {
	CallID  string    `json:"request_id"`
	Zone    string    `json:"zone"`
	Table   string    `json:"table"`
	ShownAt time.Time `json:"shown_at"`
}

// runAgent serves a local endpoint standing in for the push transport and the
// notification action, and delivers queued claims until ctx is cancelled.
func runAgent(ctx context.Context, flags *commonFlags, listen string) error {
	a, err := openAgent(ctx, flags)
	if err != nil {
		return err
	}
	defer a.Close()

	device := a.newDevice()
	e := newAgentEcho(device, a.logger)

	queueDone := make(chan error, 1)
	go func() { queueDone <- a.queue.Run(ctx) }()

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("Agent listening", slog.String("addr", listen))
		if err := e.Start(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		return errors.Wrap(err, "agent server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Failed to stop agent server", slog.Any("error", err))
	}

	return <-queueDone
}

func newAgentEcho(device *client.Device, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomiddleware.Recover())

	e.POST("/messages", func(c echo.Context) error {
		data := map[string]string{}
		if err := c.Bind(&data); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid message")
		}
		if err := device.HandleMessage(c.Request().Context(), data); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		return c.NoContent(http.StatusNoContent)
	})

	e.POST("/alerts/:id/ack", func(c echo.Context) error {
		created, err := device.Acknowledge(c.Request().Context(), c.Param("id"))
		if err != nil {
			logger.Error("Failed to acknowledge call", slog.Any("error", err))

			return echo.NewHTTPError(http.StatusInternalServerError, "claim not queued")
		}

		return c.JSON(http.StatusAccepted, map[string]any{"queued": created})
	})

	e.GET("/alerts", func(c echo.Context) error {
		alerts := device.Alerts()
		views := make([]alertView, 0, len(alerts))
		for _, alert := range alerts {
			views = append(views, alertView{
				CallID:  alert.CallID,
				Zone:    alert.Zone,
				Table:   alert.Table,
				ShownAt: alert.ShownAt,
			})
		}

		return c.JSON(http.StatusOK, views)
	})

	return e
}
