package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pushreg/config"
	"pushreg/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.DeviceEvent {
	return &service.DeviceEvent{
		RequestID:  "req-1",
		Type:       service.DeviceEventRegistered,
		RecordID:   "rec-1",
		DeviceID:   "fcm_abc_123",
		UserID:     "user-1",
		Platform:   "fcm",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishDeviceEvent_SendsPushEnvelope(t *testing.T) {
	var (
		gotBody      []byte
		gotRequestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishDeviceEvent(context.Background(), testEvent())
	require.NoError(t, err)
	assert.Equal(t, "req-1", gotRequestID)

	var envelope PushMessage
	require.NoError(t, json.Unmarshal(gotBody, &envelope))
	assert.Equal(t, localSubscription, envelope.Subscription)
	assert.Equal(t, service.DeviceEventRegistered, envelope.Message.Attributes["event_type"])
	assert.Equal(t, "fcm_abc_123", envelope.Message.Attributes["device_id"])
	assert.NotEmpty(t, envelope.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	require.NoError(t, err)

	var decoded service.DeviceEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *testEvent(), decoded)
}

func TestLocalHTTPPublisher_PublishDeviceEvent_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishDeviceEvent(context.Background(), testEvent())
	assert.ErrorContains(t, err, "502")
}

func TestNewEventPublisher_Providers(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("unconfigured uses noop", func(t *testing.T) {
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{},
			Logger: logger,
		})
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishDeviceEvent(context.Background(), testEvent()))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}},
			Logger: logger,
		})
		assert.Error(t, err)
	})

	t.Run("google requires topic", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}},
			Logger: logger,
		})
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
			Logger: logger,
		})
		assert.ErrorContains(t, err, "unknown pubsub provider")
	})

	t.Run("local", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     lc,
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://127.0.0.1:1"}},
			Logger: logger,
		})
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
		lc.RequireStart().RequireStop()
	})
}
