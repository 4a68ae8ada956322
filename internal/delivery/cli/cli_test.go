package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"pushreg/internal/domain/entity"
	"pushreg/internal/infra/identity"
	mockUsecase "pushreg/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cliFixtures struct {
	coordinator *mockUsecase.MockRegistrationUsecase
	tokens      *identity.TokenSource
	released    bool
	stdout      *bytes.Buffer
}

func createTestCLI(t *testing.T) *cliFixtures {
	return &cliFixtures{
		coordinator: mockUsecase.NewMockRegistrationUsecase(t),
		tokens:      identity.NewTokenSource("fcm", "tok-1"),
		stdout:      &bytes.Buffer{},
	}
}

func (f *cliFixtures) execute(stdin string, args ...string) error {
	cmd := NewRootCommand(func(context.Context) (*Runtime, func(), error) {
		return &Runtime{Coordinator: f.coordinator, Tokens: f.tokens}, func() { f.released = true }, nil
	})
	cmd.SetOut(f.stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	return cmd.Execute()
}

func TestStatusCommand(t *testing.T) {
	fx := createTestCLI(t)

	fx.coordinator.EXPECT().CheckStatus(mock.Anything, "user-1").Return(entity.RegistrationRegistered)

	require.NoError(t, fx.execute("", "--user", "user-1", "status"))
	assert.Equal(t, "Registered\n", fx.stdout.String())
	assert.True(t, fx.released)
}

func TestStatusCommand_RequiresUser(t *testing.T) {
	fx := createTestCLI(t)

	err := fx.execute("", "status")
	assert.ErrorIs(t, err, errUserRequired)
	assert.False(t, fx.released)
}

func TestStatusCommand_AppliesTimeout(t *testing.T) {
	fx := createTestCLI(t)

	fx.coordinator.EXPECT().
		CheckStatus(mock.Anything, "user-1").
		RunAndReturn(func(ctx context.Context, _ string) entity.RegistrationState {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)

			return entity.RegistrationFailed
		})

	require.NoError(t, fx.execute("", "-u", "user-1", "--timeout", "2s", "status"))
	assert.Equal(t, "Failed\n", fx.stdout.String())
}

func TestShouldPromptCommand(t *testing.T) {
	fx := createTestCLI(t)

	fx.coordinator.EXPECT().ShouldRequestPermissions(mock.Anything, "user-1").Return(true)

	require.NoError(t, fx.execute("", "--user", "user-1", "should-prompt"))
	assert.Equal(t, "true\n", fx.stdout.String())
}

func TestRegisterCommand_CleansUpAfterSuccess(t *testing.T) {
	fx := createTestCLI(t)

	fx.coordinator.EXPECT().RegisterIfNeeded(mock.Anything, "user-1").Return(true)
	fx.coordinator.EXPECT().CleanupStaleDevices(mock.Anything, "user-1").Return()

	require.NoError(t, fx.execute("", "--user", "user-1", "register"))
	assert.Equal(t, "true\n", fx.stdout.String())
}

func TestRegisterCommand_SkipCleanup(t *testing.T) {
	fx := createTestCLI(t)

	fx.coordinator.EXPECT().RegisterIfNeeded(mock.Anything, "user-1").Return(true)

	require.NoError(t, fx.execute("", "--user", "user-1", "register", "--skip-cleanup"))
}

func TestRegisterCommand_NotRegistered(t *testing.T) {
	fx := createTestCLI(t)

	fx.coordinator.EXPECT().RegisterIfNeeded(mock.Anything, "user-1").Return(false)

	err := fx.execute("", "--user", "user-1", "register")
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.Equal(t, "false\n", fx.stdout.String())
}

func TestCleanupCommand(t *testing.T) {
	fx := createTestCLI(t)

	fx.coordinator.EXPECT().CleanupStaleDevices(mock.Anything, "user-1").Return()

	require.NoError(t, fx.execute("", "--user", "user-1", "cleanup"))
}

func TestPermissionCommand(t *testing.T) {
	tests := []struct {
		arg     string
		granted bool
	}{
		{arg: "granted", granted: true},
		{arg: "denied", granted: false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			fx := createTestCLI(t)

			fx.coordinator.EXPECT().StorePermissionOutcome(mock.Anything, tt.granted).Return()

			require.NoError(t, fx.execute("", "permission", tt.arg))
		})
	}
}

func TestPermissionCommand_RejectsUnknownOutcome(t *testing.T) {
	fx := createTestCLI(t)

	assert.Error(t, fx.execute("", "permission", "maybe"))
	assert.False(t, fx.released)
}

func TestIdentifierCommand(t *testing.T) {
	fx := createTestCLI(t)

	fx.coordinator.EXPECT().GetDeviceIdentifier(mock.Anything).Return("fcm_abc_123")

	require.NoError(t, fx.execute("", "identifier"))
	assert.Equal(t, "fcm_abc_123\n", fx.stdout.String())
}

func TestWatchCommand_ForwardsRotatedTokens(t *testing.T) {
	fx := createTestCLI(t)

	var got []string
	fx.coordinator.EXPECT().
		WatchTokenUpdates(mock.Anything, "user-1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, updates <-chan entity.TokenUpdate) {
			for update := range updates {
				got = append(got, update.Token)
			}
		})

	// tok-1 is the current token and is not a rotation; blank lines are skipped
	require.NoError(t, fx.execute("tok-1\n\ntok-2\n", "--user", "user-1", "watch"))
	assert.Equal(t, []string{"tok-2"}, got)
	assert.Equal(t, "tok-2", fx.tokens.Token())
}

func TestRootCommand_RuntimeFailure(t *testing.T) {
	cmd := NewRootCommand(func(context.Context) (*Runtime, func(), error) {
		return nil, nil, errors.New("open store: disk full")
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"identifier"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
