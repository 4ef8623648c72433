package push

import (
	"context"
	"log/slog"

	"callbell/config"
	"callbell/internal/domain/constants"
	"callbell/internal/domain/service"
	"callbell/internal/infra/auth/google"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for PushSender, injected by Fx
type SenderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushSender creates a PushSender based on configuration
func NewPushSender(params SenderParams) (service.PushSender, error) {
	cfg := params.Config.Push
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PushProviderLog {
		logger.Info("Using log push sender, messages are not delivered")

		return NewLogSender(logger), nil
	}

	switch cfg.Provider {
	case constants.PushProviderFCM:
		if cfg.CredentialsPath == "" {
			return nil, errors.New("credentials path is required for fcm provider")
		}

		account, err := google.LoadServiceAccount(cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}

		projectID := cfg.ProjectID
		if projectID == "" {
			projectID = account.ProjectID
		}
		if projectID == "" {
			return nil, errors.New("project ID is required for fcm provider")
		}

		cache, err := google.NewCredentialCache(account, google.WithTokenURL(cfg.TokenURL))
		if err != nil {
			return nil, err
		}

		logger.Info("Using FCM HTTP v1 push sender", slog.String("project_id", projectID))

		return NewFCMHTTPSender(projectID, cfg.Endpoint, cache, logger), nil

	case constants.PushProviderFirebase:
		logger.Info("Using Firebase Admin SDK push sender", slog.String("project_id", cfg.ProjectID))

		return NewFirebaseSender(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}

func newFailureClassifier() service.FailureClassifier {
	return NewClassifier()
}

// Module provides the push FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewPushSender,
		newFailureClassifier,
	),
)
