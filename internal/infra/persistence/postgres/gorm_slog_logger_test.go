package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"callbell/config"
	deliverycontext "callbell/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func sqlFn() (string, int64) {
	return "UPDATE table_calls SET status = 'claimed'", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	base, buf := newBufferLogger()
	l := newGormSlogLogger(base, &config.Config{})

	// Fast successful queries are quiet outside debug mode.
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	// Not found is an expected outcome of lookups.
	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("database is locked"))
	assert.Contains(t, buf.String(), "Database query failed")
	assert.Contains(t, buf.String(), "database is locked")
	buf.Reset()

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "Slow database query")
}

func TestGormSlogLogger_DebugAndThreshold(t *testing.T) {
	base, buf := newBufferLogger()
	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.Database.SlowQueryThreshold = 5 * time.Second
	l := newGormSlogLogger(base, cfg)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.NotContains(t, buf.String(), "Slow database query")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	base, _ := newBufferLogger()
	reqLogger, reqBuf := newBufferLogger()
	l := newGormSlogLogger(base, &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(), reqLogger.With(slog.String("request_id", "req-1")))
	l.Error(ctx, "connection lost: %s", "eof")

	assert.Contains(t, reqBuf.String(), "request_id=req-1")
	assert.Contains(t, reqBuf.String(), "connection lost: eof")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	base, buf := newBufferLogger()
	l := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	l.Warn(context.Background(), "ignored")
	assert.Empty(t, buf.String())
}
