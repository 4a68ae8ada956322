package service

import (
	"context"
	"time"
)

// Device lifecycle event types.
const (
	DeviceEventRegistered  = "device.registered"
	DeviceEventDeactivated = "device.deactivated"
)

// DeviceEvent describes a change to a device record for downstream consumers.
type DeviceEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	RecordID   string    `json:"record_id"`
	DeviceID   string    `json:"device_id"`
	UserID     string    `json:"user_id"`
	Platform   string    `json:"platform"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDeviceEvent publishes a device lifecycle event
	PublishDeviceEvent(ctx context.Context, event *DeviceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
