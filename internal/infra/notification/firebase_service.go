// Package notification validates push tokens against Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"pushreg/config"
	"pushreg/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// messageSender is the subset of *messaging.Client used for validation
type messageSender interface {
	SendDryRun(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseValidator struct {
	client messageSender
}

// ValidatorParams holds dependencies for the push token validator, injected by Fx
type ValidatorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPushTokenValidator returns a Firebase-backed validator, or nil when validation is disabled.
// A nil validator makes the device service store tokens unchecked.
func NewPushTokenValidator(params ValidatorParams) (service.PushTokenValidator, error) {
	cfg := params.Config.Firebase
	if cfg == nil || !cfg.ValidateTokens {
		params.Logger.Info("Push token validation disabled")

		return nil, nil
	}

	return NewFirebaseValidator(context.Background(), cfg)
}

// NewFirebaseValidator creates a validator from a service-account credentials file
func NewFirebaseValidator(ctx context.Context, cfg *config.FirebaseConfig) (service.PushTokenValidator, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseValidator{client: client}, nil
}

// ValidateToken sends a dry-run message to the token. Nothing is delivered to the device.
func (v *firebaseValidator) ValidateToken(ctx context.Context, token string) error {
	_, err := v.client.SendDryRun(ctx, &messaging.Message{
		Token: token,
		Data:  map[string]string{"type": "validation"},
	})
	if err == nil {
		return nil
	}

	if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) || messaging.IsSenderIDMismatch(err) {
		return errors.Wrap(service.ErrPushTokenRejected, err.Error())
	}

	return errors.Wrap(err, "failed to validate push token")
}
