package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"pushreg/internal/domain/entity"
	"pushreg/internal/infra/kvstore"
	mockRepo "pushreg/internal/mocks/repository"
	mockSvc "pushreg/internal/mocks/service"
	"pushreg/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testUserID   = "user-1"
	testDeviceID = "fcm_abc123_00112233445566778899aabbccddeeff"
)

var coordinatorNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

// coordinatorFixtures holds all test dependencies for registration coordinator tests.
type coordinatorFixtures struct {
	coordinator *registrationCoordinator
	store       *kvstore.MemoryStore
	identity    *mockSvc.MockDeviceIdentity
	backend     *mockSvc.MockBackendClient
}

func testPolicy() usecase.RegistrationPolicy {
	policy := usecase.DefaultRegistrationPolicy()
	policy.SettleDelay = 0

	return policy
}

func newCoordinator(store *kvstore.MemoryStore, identity *mockSvc.MockDeviceIdentity, backend *mockSvc.MockBackendClient) *registrationCoordinator {
	c := NewRegistrationCoordinator(store, identity, backend, testPolicy(), slog.New(slog.DiscardHandler)).(*registrationCoordinator)
	c.now = func() time.Time { return coordinatorNow }

	return c
}

// createTestCoordinator seeds the store with a known device identifier so fingerprinting is not involved.
func createTestCoordinator(t *testing.T) coordinatorFixtures {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), keyDeviceIdentifier, testDeviceID))

	identity := mockSvc.NewMockDeviceIdentity(t)
	backend := mockSvc.NewMockBackendClient(t)

	return coordinatorFixtures{
		coordinator: newCoordinator(store, identity, backend),
		store:       store,
		identity:    identity,
		backend:     backend,
	}
}

func activeRecord(updatedAgo time.Duration) *entity.DeviceRecord {
	return &entity.DeviceRecord{
		ID:           uuid.New(),
		DeviceID:     testDeviceID,
		UserID:       testUserID,
		Platform:     "fcm",
		IsActive:     true,
		RegisteredAt: coordinatorNow.Add(-updatedAgo),
		UpdatedAt:    coordinatorNow.Add(-updatedAgo),
	}
}

func TestRegistrationCoordinator_CheckStatus_Registered(t *testing.T) {
	tests := []struct {
		name       string
		updatedAgo time.Duration
	}{
		{name: "just updated", updatedAgo: 0},
		{name: "one week old", updatedAgo: 7 * 24 * time.Hour},
		{name: "exactly at the freshness window", updatedAgo: 30 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCoordinator(t)
			ctx := context.Background()
			record := activeRecord(tt.updatedAgo)

			fx.backend.EXPECT().GetDevice(ctx, testDeviceID).Return(record, nil)

			state := fx.coordinator.CheckStatus(ctx, testUserID)
			assert.Equal(t, entity.RegistrationRegistered, state)

			cached, err := fx.store.Get(ctx, backendDeviceKey(testUserID), "")
			require.NoError(t, err)
			assert.Equal(t, record.ID.String(), cached)
		})
	}
}

func TestRegistrationCoordinator_CheckStatus_NotRegistered(t *testing.T) {
	inactive := activeRecord(time.Hour)
	inactive.IsActive = false

	tests := []struct {
		name   string
		record *entity.DeviceRecord
	}{
		{name: "no record", record: nil},
		{name: "inactive record", record: inactive},
		{name: "stale record", record: activeRecord(30*24*time.Hour + time.Second)},
		{name: "very old record", record: activeRecord(365 * 24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCoordinator(t)
			ctx := context.Background()

			fx.backend.EXPECT().GetDevice(ctx, testDeviceID).Return(tt.record, nil)

			state := fx.coordinator.CheckStatus(ctx, testUserID)
			assert.Equal(t, entity.RegistrationNotRegistered, state)

			_, cached := fx.store.Snapshot()[backendDeviceKey(testUserID)]
			assert.False(t, cached)
		})
	}
}

func TestRegistrationCoordinator_CheckStatus_PermissionDeniedSkipsBackend(t *testing.T) {
	fx := createTestCoordinator(t)
	ctx := context.Background()

	fx.coordinator.StorePermissionOutcome(ctx, false)

	// The backend mock has no expectations: any call fails the test.
	assert.Equal(t, entity.RegistrationPermissionDenied, fx.coordinator.CheckStatus(ctx, testUserID))
	fx.backend.AssertNotCalled(t, "GetDevice", mock.Anything, mock.Anything)
}

func TestRegistrationCoordinator_CheckStatus_BackendErrorIsFailed(t *testing.T) {
	fx := createTestCoordinator(t)
	ctx := context.Background()

	fx.backend.EXPECT().GetDevice(ctx, testDeviceID).Return(nil, errors.New("connection refused")).Twice()

	assert.Equal(t, entity.RegistrationFailed, fx.coordinator.CheckStatus(ctx, testUserID))
	assert.True(t, fx.coordinator.ShouldRequestPermissions(ctx, testUserID))
}

func TestRegistrationCoordinator_CheckStatus_CancelledDuringSettle(t *testing.T) {
	fx := createTestCoordinator(t)
	fx.coordinator.policy.SettleDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, entity.RegistrationFailed, fx.coordinator.CheckStatus(ctx, testUserID))
}

func TestRegistrationCoordinator_CheckStatus_WaitsSettleDelay(t *testing.T) {
	fx := createTestCoordinator(t)
	fx.coordinator.policy.SettleDelay = 20 * time.Millisecond
	ctx := context.Background()

	fx.backend.EXPECT().GetDevice(ctx, testDeviceID).Return(nil, nil)

	start := time.Now()
	assert.Equal(t, entity.RegistrationNotRegistered, fx.coordinator.CheckStatus(ctx, testUserID))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestRegistrationCoordinator_CheckStatus_CacheWriteFailureStillRegistered(t *testing.T) {
	store := mockRepo.NewMockKeyValueStore(t)
	identity := mockSvc.NewMockDeviceIdentity(t)
	backend := mockSvc.NewMockBackendClient(t)
	c := NewRegistrationCoordinator(store, identity, backend, testPolicy(), slog.New(slog.DiscardHandler)).(*registrationCoordinator)
	c.now = func() time.Time { return coordinatorNow }
	ctx := context.Background()
	record := activeRecord(time.Hour)

	store.EXPECT().Get(ctx, keyPermissionState, "").Return("", nil)
	store.EXPECT().Get(ctx, keyDeviceIdentifier, "").Return(testDeviceID, nil)
	backend.EXPECT().GetDevice(ctx, testDeviceID).Return(record, nil)
	store.EXPECT().Set(ctx, backendDeviceKey(testUserID), record.ID.String()).Return(errors.New("disk full"))

	assert.Equal(t, entity.RegistrationRegistered, c.CheckStatus(ctx, testUserID))
}

func TestRegistrationCoordinator_ShouldRequestPermissions(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(fx coordinatorFixtures, ctx context.Context)
		expect bool
	}{
		{
			name: "registered",
			setup: func(fx coordinatorFixtures, ctx context.Context) {
				fx.backend.EXPECT().GetDevice(ctx, testDeviceID).Return(activeRecord(time.Hour), nil)
			},
			expect: false,
		},
		{
			name: "permission denied",
			setup: func(fx coordinatorFixtures, ctx context.Context) {
				fx.coordinator.StorePermissionOutcome(ctx, false)
			},
			expect: false,
		},
		{
			name: "not registered",
			setup: func(fx coordinatorFixtures, ctx context.Context) {
				fx.backend.EXPECT().GetDevice(ctx, testDeviceID).Return(nil, nil)
			},
			expect: true,
		},
		{
			name: "failed",
			setup: func(fx coordinatorFixtures, ctx context.Context) {
				fx.backend.EXPECT().GetDevice(ctx, testDeviceID).Return(nil, errors.New("timeout"))
			},
			expect: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCoordinator(t)
			ctx := context.Background()
			tt.setup(fx, ctx)

			assert.Equal(t, tt.expect, fx.coordinator.ShouldRequestPermissions(ctx, testUserID))
		})
	}
}

func TestRegistrationCoordinator_RegisterIfNeeded_AlreadyRegistered(t *testing.T) {
	fx := createTestCoordinator(t)
	ctx := context.Background()

	fx.backend.EXPECT().GetDevice(ctx, testDeviceID).Return(activeRecord(time.Hour), nil)

	assert.True(t, fx.coordinator.RegisterIfNeeded(ctx, testUserID))
	fx.identity.AssertNotCalled(t, "RegisterDevice", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistrationCoordinator_RegisterIfNeeded_PermissionDenied(t *testing.T) {
	fx := createTestCoordinator(t)
	ctx := context.Background()

	fx.coordinator.StorePermissionOutcome(ctx, false)

	assert.False(t, fx.coordinator.RegisterIfNeeded(ctx, testUserID))
	fx.identity.AssertNotCalled(t, "RegisterDevice", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistrationCoordinator_RegisterIfNeeded_RegistersWhenNeeded(t *testing.T) {
	tests := []struct {
		name       string
		getDevice  func(call *mockSvc.MockBackendClient_GetDevice_Call)
		registered bool
		regErr     error
		expect     bool
	}{
		{
			name:       "not registered, provider succeeds",
			getDevice:  func(call *mockSvc.MockBackendClient_GetDevice_Call) { call.Return(nil, nil) },
			registered: true,
			expect:     true,
		},
		{
			name:       "status failed, provider succeeds",
			getDevice:  func(call *mockSvc.MockBackendClient_GetDevice_Call) { call.Return(nil, errors.New("timeout")) },
			registered: true,
			expect:     true,
		},
		{
			name:       "provider reports failure",
			getDevice:  func(call *mockSvc.MockBackendClient_GetDevice_Call) { call.Return(nil, nil) },
			registered: false,
			expect:     false,
		},
		{
			name:      "provider errors",
			getDevice: func(call *mockSvc.MockBackendClient_GetDevice_Call) { call.Return(nil, nil) },
			regErr:    errors.New("no push token"),
			expect:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCoordinator(t)
			ctx := context.Background()

			tt.getDevice(fx.backend.EXPECT().GetDevice(ctx, testDeviceID))
			fx.identity.EXPECT().RegisterDevice(ctx, testUserID, testDeviceID).Return(tt.registered, tt.regErr)

			assert.Equal(t, tt.expect, fx.coordinator.RegisterIfNeeded(ctx, testUserID))
		})
	}
}

func TestRegistrationCoordinator_RegisterIfNeeded_ClearsPriorDenial(t *testing.T) {
	fx := createTestCoordinator(t)
	ctx := context.Background()

	fx.coordinator.StorePermissionOutcome(ctx, false)
	require.Equal(t, entity.RegistrationPermissionDenied, fx.coordinator.CheckStatus(ctx, testUserID))

	// The user changes their mind in the OS prompt.
	fx.coordinator.StorePermissionOutcome(ctx, true)

	fx.backend.EXPECT().GetDevice(ctx, testDeviceID).Return(nil, nil).Once()
	fx.identity.EXPECT().RegisterDevice(ctx, testUserID, testDeviceID).Return(true, nil)

	require.True(t, fx.coordinator.RegisterIfNeeded(ctx, testUserID))

	_, present := fx.store.Snapshot()[keyPermissionState]
	assert.False(t, present)

	fx.backend.EXPECT().GetDevice(ctx, testDeviceID).Return(activeRecord(0), nil).Once()
	assert.Equal(t, entity.RegistrationRegistered, fx.coordinator.CheckStatus(ctx, testUserID))
}

func TestRegistrationCoordinator_RegisterIfNeeded_FailureKeepsPermissionState(t *testing.T) {
	fx := createTestCoordinator(t)
	ctx := context.Background()

	fx.coordinator.StorePermissionOutcome(ctx, true)

	fx.backend.EXPECT().GetDevice(ctx, testDeviceID).Return(nil, nil)
	fx.identity.EXPECT().RegisterDevice(ctx, testUserID, testDeviceID).Return(false, nil)

	assert.False(t, fx.coordinator.RegisterIfNeeded(ctx, testUserID))
	assert.Equal(t, string(entity.PermissionGranted), fx.store.Snapshot()[keyPermissionState])
}

func TestRegistrationCoordinator_StorePermissionOutcome(t *testing.T) {
	fx := createTestCoordinator(t)
	ctx := context.Background()

	fx.coordinator.StorePermissionOutcome(ctx, true)
	assert.Equal(t, "granted", fx.store.Snapshot()[keyPermissionState])

	fx.coordinator.StorePermissionOutcome(ctx, false)
	assert.Equal(t, "denied", fx.store.Snapshot()[keyPermissionState])
}

func TestRegistrationCoordinator_StorePermissionOutcome_StoreErrorIsSwallowed(t *testing.T) {
	store := mockRepo.NewMockKeyValueStore(t)
	store.EXPECT().Set(mock.Anything, keyPermissionState, "denied").Return(errors.New("disk full"))

	coordinator := NewRegistrationCoordinator(
		store,
		mockSvc.NewMockDeviceIdentity(t),
		mockSvc.NewMockBackendClient(t),
		testPolicy(),
		slog.New(slog.DiscardHandler),
	)

	assert.NotPanics(t, func() { coordinator.StorePermissionOutcome(context.Background(), false) })
}

func TestRegistrationCoordinator_CleanupStaleDevices(t *testing.T) {
	fx := createTestCoordinator(t)
	ctx := context.Background()

	day := 24 * time.Hour
	record := func(deviceID, platform string, active bool, registeredAgo time.Duration) *entity.DeviceRecord {
		return &entity.DeviceRecord{
			ID:           uuid.New(),
			DeviceID:     deviceID,
			UserID:       testUserID,
			Platform:     platform,
			IsActive:     active,
			RegisteredAt: coordinatorNow.Add(-registeredAgo),
			UpdatedAt:    coordinatorNow.Add(-registeredAgo),
		}
	}

	records := []*entity.DeviceRecord{
		record("fcm-current", "fcm", true, 10*day),
		record("fcm-inactive", "fcm", false, day),
		record("fcm-old", "fcm", true, 91*day),
		record("fcm-at-limit", "fcm", true, 90*day),
		record("apns-inactive", "apns", false, day),
		record("apns-old", "apns", true, 200*day),
		nil,
	}

	fx.identity.EXPECT().Platform().Return("fcm")
	fx.backend.EXPECT().GetUserDevices(ctx, testUserID).Return(records, nil)
	fx.backend.EXPECT().DeactivateDevice(ctx, "fcm-inactive").Return(false, errors.New("boom"))
	fx.backend.EXPECT().DeactivateDevice(ctx, "fcm-old").Return(true, nil)

	fx.coordinator.CleanupStaleDevices(ctx, testUserID)

	fx.backend.AssertNumberOfCalls(t, "DeactivateDevice", 2)
}

func TestRegistrationCoordinator_CleanupStaleDevices_NoMatches(t *testing.T) {
	fx := createTestCoordinator(t)
	ctx := context.Background()

	fx.identity.EXPECT().Platform().Return("fcm")
	fx.backend.EXPECT().GetUserDevices(ctx, testUserID).Return([]*entity.DeviceRecord{
		{DeviceID: "apns-inactive", Platform: "apns", IsActive: false},
	}, nil)

	fx.coordinator.CleanupStaleDevices(ctx, testUserID)

	fx.backend.AssertNotCalled(t, "DeactivateDevice", mock.Anything, mock.Anything)
}

func TestRegistrationCoordinator_CleanupStaleDevices_ListErrorIsSwallowed(t *testing.T) {
	fx := createTestCoordinator(t)
	ctx := context.Background()

	fx.backend.EXPECT().GetUserDevices(ctx, testUserID).Return(nil, errors.New("unavailable"))

	assert.NotPanics(t, func() { fx.coordinator.CleanupStaleDevices(ctx, testUserID) })
}

func TestRegistrationCoordinator_WatchTokenUpdates(t *testing.T) {
	fx := createTestCoordinator(t)
	ctx := context.Background()

	updates := make(chan entity.TokenUpdate, 2)
	updates <- entity.TokenUpdate{Token: "tok-2", Platform: "fcm", ChangedAt: coordinatorNow}
	updates <- entity.TokenUpdate{Token: "tok-3", Platform: "fcm", ChangedAt: coordinatorNow}
	close(updates)

	fx.identity.EXPECT().RegisterDevice(ctx, testUserID, testDeviceID).Return(true, nil).Twice()

	fx.coordinator.WatchTokenUpdates(ctx, testUserID, updates)
}

func TestRegistrationCoordinator_WatchTokenUpdates_SkipsWhenDenied(t *testing.T) {
	fx := createTestCoordinator(t)
	ctx := context.Background()

	fx.coordinator.StorePermissionOutcome(ctx, false)

	updates := make(chan entity.TokenUpdate, 1)
	updates <- entity.TokenUpdate{Token: "tok-2", Platform: "fcm"}
	close(updates)

	fx.coordinator.WatchTokenUpdates(ctx, testUserID, updates)

	fx.identity.AssertNotCalled(t, "RegisterDevice", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistrationCoordinator_WatchTokenUpdates_StopsOnCancel(t *testing.T) {
	fx := createTestCoordinator(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		fx.coordinator.WatchTokenUpdates(ctx, testUserID, make(chan entity.TokenUpdate))
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WatchTokenUpdates did not return after cancel")
	}
}

func TestRegistrationCoordinator_CheckStatus_CancelledWhileReadingPermission(t *testing.T) {
	store := mockRepo.NewMockKeyValueStore(t)
	backend := mockSvc.NewMockBackendClient(t)
	c := NewRegistrationCoordinator(store, mockSvc.NewMockDeviceIdentity(t), backend, testPolicy(), slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store.EXPECT().Get(ctx, keyPermissionState, "").
		RunAndReturn(func(context.Context, string, string) (string, error) {
			cancel()

			return "", context.Canceled
		}).Once()

	// No identifier lookup and no backend call once the caller has gone.
	assert.Equal(t, entity.RegistrationFailed, c.CheckStatus(ctx, testUserID))
}

func TestRegistrationCoordinator_CheckStatus_CancelledWhileResolvingIdentifier(t *testing.T) {
	store := mockRepo.NewMockKeyValueStore(t)
	backend := mockSvc.NewMockBackendClient(t)
	c := NewRegistrationCoordinator(store, mockSvc.NewMockDeviceIdentity(t), backend, testPolicy(), slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store.EXPECT().Get(ctx, keyPermissionState, "").Return("", nil).Once()
	store.EXPECT().Get(ctx, keyDeviceIdentifier, "").
		RunAndReturn(func(context.Context, string, string) (string, error) {
			cancel()

			return "", context.Canceled
		}).Once()

	assert.Equal(t, entity.RegistrationFailed, c.CheckStatus(ctx, testUserID))

	// The aborted call left nothing memoised: the stored identifier is used next time.
	store.EXPECT().Get(context.Background(), keyDeviceIdentifier, "").Return(testDeviceID, nil).Once()
	assert.Equal(t, testDeviceID, c.GetDeviceIdentifier(context.Background()))
}

func TestRegistrationCoordinator_RegisterIfNeeded_CancelledThenRetried(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Set(context.Background(), keyDeviceIdentifier, testDeviceID))

	identity := mockSvc.NewMockDeviceIdentity(t)
	backend := mockSvc.NewMockBackendClient(t)
	c := NewRegistrationCoordinator(store, identity, backend, testPolicy(), slog.New(slog.DiscardHandler))

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	// Nothing reaches the platform or the backend from an aborted call.
	assert.False(t, c.RegisterIfNeeded(cancelled, testUserID))

	ctx := context.Background()
	backend.EXPECT().GetDevice(ctx, testDeviceID).Return(nil, nil).Once()
	identity.EXPECT().RegisterDevice(ctx, testUserID, testDeviceID).Return(true, nil).Once()

	assert.True(t, c.RegisterIfNeeded(ctx, testUserID))
}

func TestRegistrationCoordinator_WatchTokenUpdates_StopsWhenPermissionReadIsCancelled(t *testing.T) {
	store := mockRepo.NewMockKeyValueStore(t)
	c := NewRegistrationCoordinator(store, mockSvc.NewMockDeviceIdentity(t), mockSvc.NewMockBackendClient(t), testPolicy(), slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store.EXPECT().Get(ctx, keyPermissionState, "").
		RunAndReturn(func(context.Context, string, string) (string, error) {
			cancel()

			return "", context.Canceled
		}).Once()

	updates := make(chan entity.TokenUpdate, 1)
	updates <- entity.TokenUpdate{Token: "tok-2", Platform: "fcm"}

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.WatchTokenUpdates(ctx, testUserID, updates)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WatchTokenUpdates did not return")
	}
}
