package qmsdk

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IRONalways17/Quiz-Master-APP/pkg/kv"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qmsdk/qerr"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qroute"
)

// Persisted entry names. All four are present together or absent together;
// a partial layout reads as an empty session and is purged on sight.
const (
	storeKeyToken        = "token"
	storeKeyRefreshToken = "refreshToken"
	storeKeyUser         = "user"
	storeKeyRole         = "role"
)

// SessionData is the durable session record: the token pair, the profile,
// and the role.
type SessionData struct {
	AccessToken  string
	RefreshToken string
	User         *User
	Role         qroute.Role
}

// Empty reports whether no credential is held.
func (d SessionData) Empty() bool {
	return d.AccessToken == "" && d.RefreshToken == "" && d.User == nil && d.Role == qroute.RoleNone
}

// SessionStore persists the session in a key-value area. The user profile
// round-trips through JSON.
type SessionStore struct {
	kv kv.Store
}

func NewSessionStore(store kv.Store) *SessionStore {
	return &SessionStore{kv: store}
}

// Read loads the persisted session. A missing token means no session. Any
// other missing field or an undecodable profile marks the layout malformed:
// the leftovers are purged and an empty session is returned alongside a
// CodeMalformedSession error.
func (s *SessionStore) Read() (SessionData, error) {
	token, err := s.kv.Get(storeKeyToken)
	if errors.Is(err, kv.ErrNotFound) {
		return SessionData{}, nil
	}
	if err != nil {
		return SessionData{}, fmt.Errorf("reading session token: %w", err)
	}

	refresh, rerr := s.kv.Get(storeKeyRefreshToken)
	rawUser, uerr := s.kv.Get(storeKeyUser)
	role, roerr := s.kv.Get(storeKeyRole)
	if rerr != nil || uerr != nil || roerr != nil {
		_ = s.Clear()
		return SessionData{}, qerr.Newf(qerr.CodeMalformedSession, "partial session layout in store")
	}

	var user User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		_ = s.Clear()
		return SessionData{}, qerr.New(qerr.CodeMalformedSession, err)
	}

	return SessionData{
		AccessToken:  token,
		RefreshToken: refresh,
		User:         &user,
		Role:         qroute.Role(role),
	}, nil
}

// Write persists all four fields. The token is written last so a concurrent
// reader keying off its presence never observes a half-written session.
func (s *SessionStore) Write(data SessionData) error {
	rawUser, err := json.Marshal(data.User)
	if err != nil {
		return fmt.Errorf("encoding session user: %w", err)
	}
	if err := s.kv.Set(storeKeyRefreshToken, data.RefreshToken); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	if err := s.kv.Set(storeKeyUser, string(rawUser)); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	if err := s.kv.Set(storeKeyRole, string(data.Role)); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	if err := s.kv.Set(storeKeyToken, data.AccessToken); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	return nil
}

// Clear removes all four fields. The token goes first for the same reason
// Write sets it last. Idempotent.
func (s *SessionStore) Clear() error {
	var firstErr error
	for _, key := range []string{storeKeyToken, storeKeyRefreshToken, storeKeyUser, storeKeyRole} {
		if err := s.kv.Delete(key); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("clearing session: %w", err)
		}
	}
	return firstErr
}
