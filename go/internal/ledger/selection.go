package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/auctioneer/go/internal/models"
)

// ErrInvalidTransition is returned when a selection step is attempted out
// of order.
var ErrInvalidTransition = errors.New("invalid selection transition")

// SelectionState tracks the assignment-in-progress interaction
type SelectionState string

const (
	SelectionIdle           SelectionState = "IDLE"
	SelectionSlotSelected   SelectionState = "SLOT_SELECTED"
	SelectionPlayerSelected SelectionState = "PLAYER_SELECTED"
)

// Selection correlates a roster slot pick with a pending player pick
// during a live auction. The flow is Idle -> SlotSelected ->
// PlayerSelected -> commit, which assigns and returns to Idle. Cancelling
// from any state returns to Idle without mutating the ledger.
type Selection struct {
	state  SelectionState
	teamID int
	slot   models.SlotKey
	player *models.Player
}

// NewSelection starts in the Idle state
func NewSelection() *Selection {
	return &Selection{state: SelectionIdle}
}

// State returns the current selection state
func (s *Selection) State() SelectionState {
	return s.state
}

// Slot returns the pending team and slot, valid outside Idle
func (s *Selection) Slot() (int, models.SlotKey) {
	return s.teamID, s.slot
}

// Player returns the pending player, valid in PlayerSelected
func (s *Selection) Player() *models.Player {
	return s.player
}

// SelectSlot picks an empty or occupied roster slot. Re-selecting the
// slot already held toggles the selection off. Picking a different slot
// while one is selected switches to it.
func (s *Selection) SelectSlot(teamID int, slot models.SlotKey) error {
	if !slot.Valid() {
		return fmt.Errorf("validation failed: %w", ErrUnknownSlot)
	}

	switch s.state {
	case SelectionIdle:
		s.state = SelectionSlotSelected
		s.teamID = teamID
		s.slot = slot
		return nil
	case SelectionSlotSelected:
		if s.teamID == teamID && s.slot == slot {
			s.reset()
			return nil
		}
		s.teamID = teamID
		s.slot = slot
		return nil
	default:
		return fmt.Errorf("%w: cannot select slot in state %s", ErrInvalidTransition, s.state)
	}
}

// SelectPlayer picks a search result for the pending slot
func (s *Selection) SelectPlayer(player *models.Player) error {
	if player == nil {
		return fmt.Errorf("validation failed: %w", ErrNilPlayer)
	}
	if s.state != SelectionSlotSelected {
		return fmt.Errorf("%w: cannot select player in state %s", ErrInvalidTransition, s.state)
	}
	s.state = SelectionPlayerSelected
	s.player = player
	return nil
}

// Commit assigns the pending player into the pending slot at the given
// cost and returns the selection to Idle. On a validation failure the
// selection is left intact so the operator can correct the input.
func (s *Selection) Commit(ctx context.Context, app *App, sessionID uuid.UUID, cost int) (*models.Team, error) {
	if s.state != SelectionPlayerSelected {
		return nil, fmt.Errorf("%w: cannot commit in state %s", ErrInvalidTransition, s.state)
	}

	team, err := app.AssignPlayer(ctx, sessionID, s.teamID, s.slot, s.player, cost)
	if err != nil {
		return nil, err
	}

	s.reset()
	return team, nil
}

// Cancel returns to Idle from any state without mutating the ledger
func (s *Selection) Cancel() {
	s.reset()
}

func (s *Selection) reset() {
	s.state = SelectionIdle
	s.teamID = 0
	s.slot = ""
	s.player = nil
}
