package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrPushTokenRejected is returned when the push provider reports a token as invalid or unregistered.
var ErrPushTokenRejected = errors.New("push token rejected by provider")

// PushTokenValidator checks push tokens against the push provider before they are stored.
type PushTokenValidator interface {
	// ValidateToken returns an error wrapping ErrPushTokenRejected when the provider refuses the token.
	ValidateToken(ctx context.Context, token string) error
}
