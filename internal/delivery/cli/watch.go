package cli

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// NewWatchCommand re-registers the installation on every push token rotation.
// Rotated tokens are read from stdin, one per line; the command ends at EOF or on interrupt.
func NewWatchCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-register whenever a rotated push token is read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, true, false, func(ctx context.Context, rt *Runtime) error {
				go feedTokens(cmd.InOrStdin(), rt.Tokens)

				rt.Coordinator.WatchTokenUpdates(ctx, opts.UserID, rt.Tokens.Updates())

				return nil
			})
		},
	}
}

// feedTokens publishes every non-empty line as a rotated token and closes the feed at EOF.
func feedTokens(r io.Reader, tokens TokenFeed) {
	defer tokens.Close()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if token := strings.TrimSpace(scanner.Text()); token != "" {
			tokens.Update(token)
		}
	}
}
