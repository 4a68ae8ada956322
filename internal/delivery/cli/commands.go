package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ErrNotRegistered is returned by register when the installation ends up unregistered.
var ErrNotRegistered = errors.New("installation is not registered")

// NewStatusCommand prints the registration state of this installation.
func NewStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the registration state of this installation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, true, true, func(ctx context.Context, rt *Runtime) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), rt.Coordinator.CheckStatus(ctx, opts.UserID))

				return err
			})
		},
	}
}

// NewShouldPromptCommand prints whether the notification permission prompt should be shown.
func NewShouldPromptCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "should-prompt",
		Short: "Print whether to ask the user for notification permission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, true, true, func(ctx context.Context, rt *Runtime) error {
				prompt := rt.Coordinator.ShouldRequestPermissions(ctx, opts.UserID)
				_, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(prompt))

				return err
			})
		},
	}
}

// NewRegisterCommand registers the installation when needed and then prunes stale records.
func NewRegisterCommand(opts *RootOptions) *cobra.Command {
	var skipCleanup bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register this installation unless it is registered or permission was denied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, true, true, func(ctx context.Context, rt *Runtime) error {
				registered := rt.Coordinator.RegisterIfNeeded(ctx, opts.UserID)
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(registered)); err != nil {
					return err
				}
				if !registered {
					return ErrNotRegistered
				}

				if !skipCleanup {
					rt.Coordinator.CleanupStaleDevices(ctx, opts.UserID)
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&skipCleanup, "skip-cleanup", false, "do not deactivate stale records after registering")

	return cmd
}

// NewCleanupCommand deactivates the user's stale records on this platform.
func NewCleanupCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Deactivate stale or inactive records of the user on this platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, true, true, func(ctx context.Context, rt *Runtime) error {
				rt.Coordinator.CleanupStaleDevices(ctx, opts.UserID)

				return nil
			})
		},
	}
}

// NewPermissionCommand records the outcome of the OS permission prompt.
func NewPermissionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "permission granted|denied",
		Short:     "Record the outcome of the notification permission prompt",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"granted", "denied"},
		RunE: func(cmd *cobra.Command, args []string) error {
			granted := args[0] == "granted"

			return opts.run(cmd, false, true, func(ctx context.Context, rt *Runtime) error {
				rt.Coordinator.StorePermissionOutcome(ctx, granted)

				return nil
			})
		},
	}
}

// NewIdentifierCommand prints the installation identifier, creating it on first use.
func NewIdentifierCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "identifier",
		Short: "Print the installation identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, false, true, func(ctx context.Context, rt *Runtime) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), rt.Coordinator.GetDeviceIdentifier(ctx))

				return err
			})
		},
	}
}
