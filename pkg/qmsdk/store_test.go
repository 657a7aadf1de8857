package qmsdk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IRONalways17/Quiz-Master-APP/pkg/kv"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qmsdk/qerr"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qroute"
)

func testSessionData() SessionData {
	return SessionData{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         &User{ID: 7, Username: "alice", Email: "alice@example.com", FullName: "Alice"},
		Role:         qroute.RoleUser,
	}
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore(kv.NewMemoryStore())

	want := testSessionData()
	require.NoError(t, store.Write(want))

	got, err := store.Read()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSessionStoreClearLeavesNothing(t *testing.T) {
	store := NewSessionStore(kv.NewMemoryStore())

	require.NoError(t, store.Write(testSessionData()))
	require.NoError(t, store.Clear())

	got, err := store.Read()
	require.NoError(t, err)
	require.True(t, got.Empty())

	// Idempotent.
	require.NoError(t, store.Clear())
}

func TestSessionStoreEmptyWhenNeverWritten(t *testing.T) {
	store := NewSessionStore(kv.NewMemoryStore())

	got, err := store.Read()
	require.NoError(t, err)
	require.True(t, got.Empty())
}

func TestSessionStorePurgesPartialLayout(t *testing.T) {
	mem := kv.NewMemoryStore()
	store := NewSessionStore(mem)

	// A token without the other three fields is a malformed layout.
	require.NoError(t, mem.Set("token", "orphaned"))

	_, err := store.Read()
	require.Error(t, err)
	require.True(t, qerr.IsCode(err, qerr.CodeMalformedSession))

	// The leftovers were purged: a second read sees an empty session.
	got, err := store.Read()
	require.NoError(t, err)
	require.True(t, got.Empty())
}

func TestSessionStorePurgesUndecodableUser(t *testing.T) {
	mem := kv.NewMemoryStore()
	store := NewSessionStore(mem)

	require.NoError(t, mem.Set("token", "t"))
	require.NoError(t, mem.Set("refreshToken", "r"))
	require.NoError(t, mem.Set("user", "{not json"))
	require.NoError(t, mem.Set("role", "user"))

	_, err := store.Read()
	require.True(t, qerr.IsCode(err, qerr.CodeMalformedSession))

	got, err := store.Read()
	require.NoError(t, err)
	require.True(t, got.Empty())
}
