// Package cli exposes the registration coordinator as the registrar command line.
package cli

import (
	"context"
	"time"

	"pushreg/internal/domain/entity"
	"pushreg/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const defaultCommandTimeout = 30 * time.Second

// TokenFeed accepts rotated push tokens and streams them to the coordinator.
type TokenFeed interface {
	Update(token string) bool
	Updates() <-chan entity.TokenUpdate
	Close()
}

// Runtime is what a command runs against.
type Runtime struct {
	Coordinator usecase.RegistrationUsecase
	Tokens      TokenFeed
}

// RuntimeFactory builds the runtime for one command. The returned release func must be called when the command ends.
type RuntimeFactory func(ctx context.Context) (*Runtime, func(), error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	UserID  string
	Timeout time.Duration

	newRuntime RuntimeFactory
}

// NewRootCommand creates the registrar root command.
func NewRootCommand(newRuntime RuntimeFactory) *cobra.Command {
	opts := &RootOptions{newRuntime: newRuntime}

	cmd := &cobra.Command{
		Use:           "registrar",
		Short:         "Keep this installation registered for push notifications",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.UserID, "user", "u", "", "user the installation is registered for")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", defaultCommandTimeout, "upper bound of a single command, 0 disables it")

	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewShouldPromptCommand(opts))
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewCleanupCommand(opts))
	cmd.AddCommand(NewPermissionCommand(opts))
	cmd.AddCommand(NewIdentifierCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}

var errUserRequired = errors.New("--user is required")

// run builds the runtime and calls fn under the command timeout.
func (o *RootOptions) run(cmd *cobra.Command, needsUser bool, bounded bool, fn func(ctx context.Context, rt *Runtime) error) error {
	if needsUser && o.UserID == "" {
		return errUserRequired
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if bounded && o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	rt, release, err := o.newRuntime(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to start registrar")
	}
	defer release()

	return fn(ctx, rt)
}
