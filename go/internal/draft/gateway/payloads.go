package gateway

import (
	"time"

	"github.com/mcdev12/auctioneer/go/internal/draft/events"
	"github.com/mcdev12/auctioneer/go/internal/ledger"
	"github.com/mcdev12/auctioneer/go/internal/models"
)

func playerAssignedPayload(team *models.Team, slot models.SlotKey) events.PlayerAssignedPayload {
	rosterSlot := team.Slots[slot]
	payload := events.PlayerAssignedPayload{
		TeamID:   team.ID,
		TeamName: team.Name,
		Slot:     slot,
		Cost:     rosterSlot.Cost,
		Metrics:  ledger.ComputeTeamMetrics(team),
	}
	if rosterSlot.Player != nil {
		payload.PlayerName = rosterSlot.Player.Name
	}
	if rosterSlot.AcquiredAt != nil {
		payload.AssignedAt = *rosterSlot.AcquiredAt
	}
	return payload
}

func slotClearedPayload(team *models.Team, slot models.SlotKey) events.SlotClearedPayload {
	return events.SlotClearedPayload{
		TeamID:    team.ID,
		Slot:      slot,
		Metrics:   ledger.ComputeTeamMetrics(team),
		ClearedAt: time.Now(),
	}
}

func teamRenamedPayload(team *models.Team) events.TeamRenamedPayload {
	return events.TeamRenamedPayload{
		TeamID:    team.ID,
		Name:      team.Name,
		RenamedAt: time.Now(),
	}
}
