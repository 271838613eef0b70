package events

import (
	"time"

	"github.com/mcdev12/auctioneer/go/internal/models"
)

// Event payload types shared between the ledger and gateway packages

// SessionCreatedPayload is the payload for a SessionCreated event
type SessionCreatedPayload struct {
	SessionID string    `json:"session_id"`
	Teams     int       `json:"teams"`
	Budget    int       `json:"budget"`
	CreatedAt time.Time `json:"created_at"`
}

// PlayerAssignedPayload is the payload for a PlayerAssigned event
type PlayerAssignedPayload struct {
	TeamID     int                `json:"team_id"`
	TeamName   string             `json:"team_name"`
	Slot       models.SlotKey     `json:"slot"`
	PlayerName string             `json:"player_name"`
	Cost       int                `json:"cost"`
	Metrics    models.TeamMetrics `json:"metrics"`
	AssignedAt time.Time          `json:"assigned_at"`
}

// SlotClearedPayload is the payload for a SlotCleared event
type SlotClearedPayload struct {
	TeamID    int                `json:"team_id"`
	Slot      models.SlotKey     `json:"slot"`
	Metrics   models.TeamMetrics `json:"metrics"`
	ClearedAt time.Time          `json:"cleared_at"`
}

// TeamRenamedPayload is the payload for a TeamRenamed event
type TeamRenamedPayload struct {
	TeamID    int       `json:"team_id"`
	Name      string    `json:"name"`
	RenamedAt time.Time `json:"renamed_at"`
}
