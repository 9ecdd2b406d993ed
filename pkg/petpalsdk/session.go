package petpalsdk

import (
	"sync"
	"time"
)

// Session represents an authenticated PetPal session. It holds the most
// recently issued bearer token and attaches it to every outgoing request.
//
// Tokens are stateless and cannot be refreshed: once the server rejects the
// token, or its expiry window has passed, the session discards it and every
// further call returns ErrSessionExpired. Callers should treat that as the
// signal to send the user back through Login.
type Session struct {
	client *SDKClient

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

// newSession creates a session from a token response.
func newSession(client *SDKClient, tokenResp *TokenResponse) *Session {
	expiresAt := time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	// Small buffer so we stop using the token just before the server would
	// start rejecting it.
	expiresAt = expiresAt.Add(-30 * time.Second)

	return &Session{
		client:    client,
		token:     tokenResp.Token,
		expiresAt: expiresAt,
	}
}

// Token returns the raw bearer token, or an empty string once the session
// has been invalidated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Valid reports whether the session still holds a usable token.
func (s *Session) Valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && time.Now().Before(s.expiresAt)
}

// validToken returns the bearer token or ErrSessionExpired.
func (s *Session) validToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" || !time.Now().Before(s.expiresAt) {
		return "", ErrSessionExpired
	}
	return s.token, nil
}

// invalidate discards the stored token after a server-side rejection.
func (s *Session) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
