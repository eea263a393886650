package events

import (
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// EventType names a domain event. The set is closed: consumers switch
// on these constants and payload types rather than ad-hoc strings.
type EventType string

const (
	EventTaskCreated    EventType = "task:created"
	EventTaskUpdated    EventType = "task:updated"
	EventTaskMoved      EventType = "task:moved"
	EventTaskDeleted    EventType = "task:deleted"
	EventTaskAssigned   EventType = "task:assigned"
	EventTaskUnassigned EventType = "task:unassigned"
	EventTaskCompleted  EventType = "task:completed"
	EventTasksPurged    EventType = "tasks:purged"

	EventUserRegistered EventType = "user:registered"
	EventUserLoggedIn   EventType = "user:loggedin"
	EventUserLoggedOut  EventType = "user:loggedout"

	EventThemeChanged EventType = "theme:changed"
	EventSeedLoaded   EventType = "seed:loaded"
)

// Event is a notification emitted after a core mutation. Payload holds
// one of the typed payload structs below, matching Type.
type Event struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// TaskPayload accompanies the task:* events.
type TaskPayload struct {
	Task *models.Task
}

// MovePayload accompanies task:moved.
type MovePayload struct {
	Task *models.Task
	From models.Column
	To   models.Column
}

// AssignmentPayload accompanies task:assigned and task:unassigned.
type AssignmentPayload struct {
	Task   *models.Task
	UserID string
}

// PurgePayload accompanies tasks:purged.
type PurgePayload struct {
	Removed int
}

// UserPayload accompanies the user:* events.
type UserPayload struct {
	User *models.User
}

// ThemePayload accompanies theme:changed.
type ThemePayload struct {
	Theme models.Theme
}

// SeedPayload accompanies seed:loaded.
type SeedPayload struct {
	Loaded int
}

// New builds an event stamped with the current time.
func New(eventType EventType, payload any) Event {
	return Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}
