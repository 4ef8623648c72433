package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"callbell/config"
	"callbell/internal/domain/constants"
	"callbell/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewPublisher_UnsetProviderIsNoop(t *testing.T) {
	for _, cfg := range []*config.PubSubConfig{nil, {}} {
		publisher, err := newPublisher(context.Background(), cfg, discardLogger())
		require.NoError(t, err)

		err = publisher.PublishDismissEvent(context.Background(), &service.DismissEvent{CallID: "call-1"})
		assert.ErrorIs(t, err, ErrPublisherDisabled)
		assert.NoError(t, publisher.Close())
	}
}

func TestNewPublisher_Local(t *testing.T) {
	publisher, err := newPublisher(context.Background(), &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestValidatePubSub(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{name: "google without topic", cfg: config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
		{name: "google without project", cfg: config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}},
		{name: "unknown provider", cfg: config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, validatePubSub(&tt.cfg))
		})
	}

	assert.NoError(t, validatePubSub(&config.PubSubConfig{
		Provider:  constants.PubSubProviderGoogle,
		ProjectID: "p",
		TopicID:   "t",
	}))
}
