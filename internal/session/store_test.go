package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SohamMhatre7788/insurai/internal/domain"
	"github.com/SohamMhatre7788/insurai/internal/events"
	"github.com/SohamMhatre7788/insurai/internal/session"
)

func testUser() domain.User {
	return domain.User{
		ID:        42,
		FirstName: "Priya",
		LastName:  "Shah",
		Email:     "priya@example.com",
		Role:      domain.RoleClient,
	}
}

func newTestStore(t *testing.T) (*session.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := session.NewStore(session.NewStorage(dir), events.NewInMemoryDispatcher(), zap.NewNop())
	return store, dir
}

func TestLoginRoundTrip(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, store.Initialize())

	user := testUser()
	require.NoError(t, store.Login("token-abc", user))

	state := store.Snapshot()
	require.True(t, state.Session.IsAuthenticated())
	assert.Equal(t, "token-abc", state.Session.Token)
	assert.Equal(t, user, *state.Session.User)
	assert.True(t, state.Session.IsClient())
	assert.False(t, state.Session.IsAdmin())

	// A fresh store over the same storage simulates a restart.
	restarted := session.NewStore(session.NewStorage(dir), events.NewInMemoryDispatcher(), zap.NewNop())
	require.NoError(t, restarted.Initialize())

	restored := restarted.Snapshot()
	require.True(t, restored.Session.IsAuthenticated())
	assert.Equal(t, "token-abc", restored.Session.Token)
	assert.Equal(t, user, *restored.Session.User)
}

func TestLoginRejectsPartialCredentials(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Initialize())

	assert.Error(t, store.Login("", testUser()))
	assert.Error(t, store.Login("token-abc", domain.User{}))
	assert.False(t, store.Snapshot().Session.IsAuthenticated())
}

func TestLogoutClearsMemoryAndStorageTogether(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, store.Initialize())
	require.NoError(t, store.Login("token-abc", testUser()))

	require.NoError(t, store.Logout())

	state := store.Snapshot()
	assert.False(t, state.Session.IsAuthenticated())
	assert.Empty(t, state.Session.Token)
	assert.Nil(t, state.Session.User)

	_, err := os.Stat(filepath.Join(dir, "token"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "user"))
	assert.True(t, os.IsNotExist(err))
}

func TestInitializeIgnoresPartialStorage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token"), []byte("orphan-token"), 0o600))

	store := session.NewStore(session.NewStorage(dir), events.NewInMemoryDispatcher(), zap.NewNop())
	require.NoError(t, store.Initialize())

	state := store.Snapshot()
	assert.True(t, state.Initialized)
	assert.False(t, state.Session.IsAuthenticated())
}

func TestInitializeDiscardsExpiredToken(t *testing.T) {
	dir := t.TempDir()
	expired := signedToken(t, time.Now().Add(-time.Hour))
	seed := session.NewStore(session.NewStorage(dir), events.NewInMemoryDispatcher(), zap.NewNop())
	require.NoError(t, seed.Login(expired, testUser()))

	store := session.NewStore(session.NewStorage(dir), events.NewInMemoryDispatcher(), zap.NewNop())
	require.NoError(t, store.Initialize())

	assert.False(t, store.Snapshot().Session.IsAuthenticated())
	_, err := os.Stat(filepath.Join(dir, "token"))
	assert.True(t, os.IsNotExist(err))
}

func TestInvalidateGenerationIgnoresStaleRequests(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Initialize())
	require.NoError(t, store.Login("old-token", testUser()))
	stale := store.Snapshot().Generation

	// The user re-logs in while a request with the old credentials is
	// still in flight.
	require.NoError(t, store.Login("new-token", testUser()))

	// The old request's 401 must not tear down the new session.
	store.InvalidateGeneration(stale)
	state := store.Snapshot()
	require.True(t, state.Session.IsAuthenticated())
	assert.Equal(t, "new-token", state.Session.Token)

	// A 401 against the current credentials does clear it.
	store.InvalidateGeneration(state.Generation)
	assert.False(t, store.Snapshot().Session.IsAuthenticated())

	// And once cleared, replays of the same generation stay cleared.
	store.InvalidateGeneration(state.Generation)
	assert.False(t, store.Snapshot().Session.IsAuthenticated())
}

func TestSubscribersNotifiedSynchronously(t *testing.T) {
	dir := t.TempDir()
	dispatcher := events.NewInMemoryDispatcher()
	store := session.NewStore(session.NewStorage(dir), dispatcher, zap.NewNop())

	var seen []events.EventType
	record := func(_ context.Context, e events.Event) error {
		seen = append(seen, e.Type)
		return nil
	}
	dispatcher.Subscribe(events.EventSessionLoggedIn, record)
	dispatcher.Subscribe(events.EventSessionLoggedOut, record)
	dispatcher.Subscribe(events.EventSessionInvalidated, record)

	require.NoError(t, store.Initialize())
	require.NoError(t, store.Login("token-abc", testUser()))
	require.NoError(t, store.Logout())
	require.NoError(t, store.Login("token-def", testUser()))
	store.InvalidateGeneration(store.Snapshot().Generation)

	assert.Equal(t, []events.EventType{
		events.EventSessionLoggedIn,
		events.EventSessionLoggedOut,
		events.EventSessionLoggedIn,
		events.EventSessionInvalidated,
	}, seen)
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}
