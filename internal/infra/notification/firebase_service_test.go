package notification

import (
	"context"
	"log/slog"
	"testing"

	"pushreg/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	err     error
	message *messaging.Message
}

func (s *stubSender) SendDryRun(_ context.Context, message *messaging.Message) (string, error) {
	s.message = message
	if s.err != nil {
		return "", s.err
	}

	return "projects/p/messages/1", nil
}

func TestFirebaseValidator_ValidateToken_Accepted(t *testing.T) {
	sender := &stubSender{}
	validator := &firebaseValidator{client: sender}

	err := validator.ValidateToken(context.Background(), "token-1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", sender.message.Token)
	assert.Nil(t, sender.message.Notification)
}

func TestFirebaseValidator_ValidateToken_TransportErrorIsNotRejection(t *testing.T) {
	validator := &firebaseValidator{client: &stubSender{err: errors.New("connection reset")}}

	err := validator.ValidateToken(context.Background(), "token-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestNewPushTokenValidator_DisabledReturnsNil(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	validator, err := NewPushTokenValidator(ValidatorParams{Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	assert.Nil(t, validator)

	validator, err = NewPushTokenValidator(ValidatorParams{
		Config: &config.Config{Firebase: &config.FirebaseConfig{ProjectID: "p", ValidateTokens: false}},
		Logger: logger,
	})
	require.NoError(t, err)
	assert.Nil(t, validator)
}
