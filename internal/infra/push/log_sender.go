package push

import (
	"context"
	"log/slog"

	"callbell/internal/domain/entity"
	"callbell/internal/domain/service"
)

// logSender only logs messages. It is meant for local development.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that logs instead of delivering.
func NewLogSender(logger *slog.Logger) service.PushSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, endpoint string, message *entity.PushMessage) error {
	s.logger.InfoContext(ctx, "[LogPush] Message not delivered",
		slog.String("event", string(message.Event)),
		slog.String("endpoint", truncateEndpoint(endpoint)),
		slog.Any("data", message.Data),
	)

	return nil
}

func truncateEndpoint(endpoint string) string {
	const keep = 12
	if len(endpoint) <= keep {
		return endpoint
	}

	return endpoint[:keep] + "..."
}
