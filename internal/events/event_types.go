package events

import (
	"time"

	"github.com/SohamMhatre7788/insurai/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionLoggedIn    EventType = "session_logged_in"
	EventSessionLoggedOut   EventType = "session_logged_out"
	EventSessionInvalidated EventType = "session_invalidated"
	EventSessionRestored    EventType = "session_restored"
)

// Event represents a session lifecycle event emitted by the store.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SessionPayload describes the session a lifecycle event refers to. Invalidated
// and logged-out events carry the user that held the cleared session, when known.
type SessionPayload struct {
	UserID int64       `json:"user_id,omitempty"`
	Email  string      `json:"email,omitempty"`
	Role   domain.Role `json:"role,omitempty"`
}
