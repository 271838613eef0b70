package gateway

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SessionEvent represents the base structure for all session events
// pushed to the operator's browser.
type SessionEvent struct {
	ID        string          `json:"id"`         // Event UUID
	SessionID string          `json:"session_id"` // Session UUID
	Type      EventType       `json:"type"`       // Event type
	Timestamp time.Time       `json:"timestamp"`  // Event creation time
	Data      json.RawMessage `json:"data"`       // Event-specific payload
}

// EventType represents the type of session event
type EventType string

const (
	EventTypeSessionCreated EventType = "SessionCreated"
	EventTypePlayerAssigned EventType = "PlayerAssigned"
	EventTypeSlotCleared    EventType = "SlotCleared"
	EventTypeTeamRenamed    EventType = "TeamRenamed"
)

// NewSessionEvent wraps a payload in the event envelope. Marshal errors
// are returned so callers never broadcast a half-built event.
func NewSessionEvent(sessionID uuid.UUID, eventType EventType, payload interface{}) (*SessionEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &SessionEvent{
		ID:        uuid.New().String(),
		SessionID: sessionID.String(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}, nil
}
