package entity

import "time"

// TokenUpdate is emitted whenever the platform hands the installation a new push token.
type TokenUpdate struct {
	Token     string
	Platform  string
	ChangedAt time.Time
}
