package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pushreg/config"
	"pushreg/internal/delivery/cli"
	"pushreg/internal/domain/lifecycle"
	"pushreg/internal/domain/repository"
	"pushreg/internal/infra/auth"
	"pushreg/internal/infra/backend"
	"pushreg/internal/infra/identity"
	"pushreg/internal/infra/kvstore"
	logs "pushreg/internal/infra/log"
	"pushreg/internal/usecase"
	"pushreg/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(newRuntime).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newRuntime builds the coordinator graph for a single command and starts its lifecycle
func newRuntime(ctx context.Context) (*cli.Runtime, func(), error) {
	var (
		coordinator usecase.RegistrationUsecase
		tokens      *identity.TokenSource
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			newLogger,
			registrationConfig,
			registrationPolicy,
			auth.NewJWTService,
			backend.NewHTTPClient,
			newKeyValueStore,
			newTokenSource,
			identity.NewProvider,
			impl.NewRegistrationCoordinator,
		),
		fx.Populate(&coordinator, &tokens),
	)

	if err := app.Start(ctx); err != nil {
		return nil, nil, errors.Wrap(err, "failed to start registrar")
	}

	release := func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := app.Stop(stopCtx); err != nil {
			slog.Error("Failed to stop registrar", slog.Any("error", err))
		}
	}

	return &cli.Runtime{Coordinator: coordinator, Tokens: tokens}, release, nil
}

// newLogger keeps stdout for command output
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	return logs.NewWithWriter(cfg, os.Stderr)
}

func registrationConfig(cfg *config.Config) *config.RegistrationConfig {
	return cfg.Registration
}

func registrationPolicy(cfg *config.RegistrationConfig) usecase.RegistrationPolicy {
	return usecase.RegistrationPolicy{
		SettleDelay:     cfg.SettleDelay,
		FreshnessWindow: cfg.FreshnessWindow,
		CleanupAge:      cfg.CleanupAge,
	}
}

// newKeyValueStore opens the durable store, degrading to an in-memory one when it cannot be opened
func newKeyValueStore(lc fx.Lifecycle, cfg *config.RegistrationConfig, logger *slog.Logger) repository.KeyValueStore {
	store, err := kvstore.OpenSQLite(cfg.StorePath)
	if err != nil {
		logger.Warn("Local store unavailable, state will not survive this run",
			slog.String("path", cfg.StorePath),
			slog.Any("error", err),
		)

		return kvstore.NewMemoryStore()
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store
}

func newTokenSource(lc fx.Lifecycle, cfg *config.RegistrationConfig) *identity.TokenSource {
	tokens := identity.NewTokenSource(cfg.Platform, cfg.PushToken)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			tokens.Close()

			return nil
		},
	})

	return tokens
}
