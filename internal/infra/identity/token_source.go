package identity

import (
	"sync"
	"time"

	"pushreg/internal/domain/entity"
)

// tokenUpdateBuffer bounds pending rotations; older ones are superseded by newer ones anyway.
const tokenUpdateBuffer = 8

// TokenSource holds the installation's current push token and streams its rotations.
type TokenSource struct {
	mu       sync.RWMutex
	platform string
	token    string
	updates  chan entity.TokenUpdate
	closed   bool
	now      func() time.Time
}

// NewTokenSource starts with the token the platform handed out at launch
func NewTokenSource(platform, token string) *TokenSource {
	return &TokenSource{
		platform: platform,
		token:    token,
		updates:  make(chan entity.TokenUpdate, tokenUpdateBuffer),
		now:      time.Now,
	}
}

// Token returns the current push token
func (s *TokenSource) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Update records a rotated token and publishes it. Unchanged tokens are ignored.
// It reports false when the update was not published.
func (s *TokenSource) Update(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || token == "" || token == s.token {
		return false
	}
	s.token = token

	update := entity.TokenUpdate{Token: token, Platform: s.platform, ChangedAt: s.now()}
	select {
	case s.updates <- update:
		return true
	default:
		// A full buffer already holds a pending re-registration which will read the new token.
		return false
	}
}

// Updates streams token rotations until Close
func (s *TokenSource) Updates() <-chan entity.TokenUpdate {
	return s.updates
}

// Close ends the update stream
func (s *TokenSource) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.updates)
	}
}
