package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SohamMhatre7788/insurai/internal/auth"
	"github.com/SohamMhatre7788/insurai/internal/domain"
	"github.com/SohamMhatre7788/insurai/internal/events"
)

// State is an immutable snapshot of the store, safe to consult without
// holding its lock. Generation identifies the credential pair the snapshot
// carries; it changes whenever the session is replaced or cleared.
type State struct {
	Initialized bool
	Generation  uint64
	Session     domain.Session
}

// Store owns the process-wide authentication state: current user, bearer
// token and the durable copy of both. It performs no network calls. All
// mutations notify subscribers synchronously through the dispatcher.
type Store struct {
	storage    *Storage
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu          sync.RWMutex
	initialized bool
	generation  uint64
	session     domain.Session
}

// NewStore builds a store over the given durable storage.
func NewStore(storage *Storage, dispatcher events.Dispatcher, logger *zap.Logger) *Store {
	return &Store{storage: storage, dispatcher: dispatcher, logger: logger}
}

// Initialize loads any persisted session. It runs once per application
// start, before any guarded screen renders; until then Snapshot reports
// Initialized false and guards hold in the loading state. A persisted token
// that is an already-expired JWT is discarded along with its user half.
func (s *Store) Initialize() error {
	s.mu.RLock()
	done := s.initialized
	s.mu.RUnlock()
	if done {
		return nil
	}

	token, user, err := s.storage.Read()
	if err != nil {
		return err
	}

	if token != "" && auth.TokenExpired(token, time.Now()) {
		s.logger.Info("discarding expired persisted session")
		_ = s.storage.Clear()
		token, user = "", nil
	}

	s.mu.Lock()
	s.initialized = true
	if token != "" && user != nil {
		s.session = domain.Session{Token: token, User: user}
		s.generation++
	}
	restored := s.session
	s.mu.Unlock()

	if restored.IsAuthenticated() {
		s.publish(events.EventSessionRestored, restored.User)
	}
	return nil
}

// Login atomically replaces the session with the authenticated pair and
// persists both halves. Partial credentials are rejected: the store never
// holds a token without a user or vice versa.
func (s *Store) Login(token string, user domain.User) error {
	if token == "" || user.ID == 0 {
		return errors.New("login requires both token and user")
	}

	if err := s.storage.Write(token, &user); err != nil {
		return err
	}

	s.mu.Lock()
	s.initialized = true
	s.session = domain.Session{Token: token, User: &user}
	s.generation++
	s.mu.Unlock()

	s.publish(events.EventSessionLoggedIn, &user)
	return nil
}

// Logout clears in-memory state and durable storage together. It does not
// navigate; callers decide where to go next.
func (s *Store) Logout() error {
	cleared := s.clear()
	if cleared != nil {
		s.publish(events.EventSessionLoggedOut, cleared)
	}
	return nil
}

// InvalidateGeneration clears the session in response to an authorization
// failure, but only if gen still identifies the current credentials. A 401
// for a request that was in flight across a re-login must not tear down the
// newer session, and once cleared, responses to older requests find the
// generation already advanced and become no-ops.
func (s *Store) InvalidateGeneration(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || !s.session.IsAuthenticated() {
		s.mu.Unlock()
		return
	}
	cleared := s.session.User
	s.session = domain.Session{}
	s.generation++
	s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		s.logger.Warn("clearing persisted session", zap.Error(err))
	}
	s.publish(events.EventSessionInvalidated, cleared)
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{Initialized: s.initialized, Generation: s.generation, Session: s.session}
}

func (s *Store) clear() *domain.User {
	s.mu.Lock()
	cleared := s.session.User
	s.session = domain.Session{}
	s.generation++
	s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		s.logger.Warn("clearing persisted session", zap.Error(err))
	}
	return cleared
}

func (s *Store) publish(eventType events.EventType, user *domain.User) {
	if s.dispatcher == nil {
		return
	}
	payload := events.SessionPayload{}
	if user != nil {
		payload = events.SessionPayload{UserID: user.ID, Email: user.Email, Role: user.Role}
	}
	_ = s.dispatcher.Publish(context.Background(), events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
