package qmsdk

import (
	"sync"
	"time"

	"github.com/IRONalways17/Quiz-Master-APP/pkg/qroute"
)

// Session is the process-wide authority on authentication state. All reads
// and mutations go through it; mutations write through to the store so a
// reload starts from the same truth.
type Session struct {
	mu    sync.RWMutex
	store *SessionStore
	data  SessionData

	now func() time.Time // swapped by tests
}

func NewSession(store *SessionStore) *Session {
	return &Session{store: store, now: time.Now}
}

// Initialize loads the persisted session, run once at process start. A
// token whose expiry claim has passed, or one that cannot be decoded at
// all, is purged silently: expiry discovered here is a consistency repair,
// not a user action failure. This is the only proactive expiry check; in
// flight, expiry surfaces as a 401.
func (s *Session) Initialize() error {
	data, err := s.store.Read()
	if err != nil {
		// Malformed layouts were already purged by the store.
		return nil
	}

	if data.AccessToken != "" {
		claims, cerr := ClaimsFromToken(data.AccessToken)
		if cerr != nil || claims.Expired(s.now()) {
			_ = s.store.Clear()
			data = SessionData{}
		}
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// IsAuthenticated reports whether an access token is held.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.AccessToken != ""
}

// HasToken reports whether any credential is lying around, live or stale.
func (s *Session) HasToken() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.AccessToken != "" || s.data.RefreshToken != ""
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.AccessToken
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.RefreshToken
}

// CurrentUser returns a copy of the profile, or nil when unauthenticated.
func (s *Session) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.User == nil {
		return nil
	}
	u := *s.data.User
	return &u
}

func (s *Session) Role() qroute.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Role
}

// SetAuthenticated installs a freshly issued session and writes it through
// to the store atomically from the perspective of any reader. Call only
// after the server has issued credentials.
func (s *Session) SetAuthenticated(accessToken, refreshToken string, user *User, role qroute.Role) error {
	data := SessionData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		Role:         role,
	}
	if err := s.store.Write(data); err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Clear destroys the session in memory and in the store. Idempotent.
func (s *Session) Clear() {
	_ = s.store.Clear()
	s.mu.Lock()
	s.data = SessionData{}
	s.mu.Unlock()
}

// UpdateProfile swaps only the identity field, leaving tokens untouched.
func (s *Session) UpdateProfile(user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.AccessToken == "" {
		return nil
	}
	s.data.User = user
	return s.store.Write(s.data)
}

var _ qroute.SessionState = (*Session)(nil)
