// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceRecord is the backend's durable view of one installation's push registration.
type DeviceRecord struct {
	ID           uuid.UUID `json:"id"`            // Backend-assigned record identifier.
	DeviceID     string    `json:"device_id"`     // Installation identifier reported by the client.
	UserID       string    `json:"user_id"`       // The user this installation is registered for.
	Platform     string    `json:"platform"`      // Push platform family (fcm, apns, ...).
	PushToken    string    `json:"-"`             // Provider token; never returned to clients.
	IsActive     bool      `json:"is_active"`     // Inactive records are not valid registrations.
	Tags         []string  `json:"tags"`          // Free-form targeting tags.
	RegisteredAt time.Time `json:"registered_at"` // Last time the installation (re)registered.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"` // Last modification of the record.
}

// IsFresh reports whether the record was updated within window of now.
func (d *DeviceRecord) IsFresh(now time.Time, window time.Duration) bool {
	return now.Sub(d.UpdatedAt) <= window
}

// IsCleanupCandidate reports whether the record is inactive or registered longer than maxAge ago.
func (d *DeviceRecord) IsCleanupCandidate(now time.Time, maxAge time.Duration) bool {
	return !d.IsActive || now.Sub(d.RegisteredAt) > maxAge
}

// DeviceRegistration carries what an installation reports when it registers.
type DeviceRegistration struct {
	DeviceID  string   `json:"device_id"`
	UserID    string   `json:"user_id"`
	Platform  string   `json:"platform"`
	PushToken string   `json:"push_token"`
	Tags      []string `json:"tags,omitempty"`
}
