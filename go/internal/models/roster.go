package models

import "time"

// SlotKey identifies one of the 23 fixed roster slots on every team
type SlotKey string

const (
	SlotCatcher    SlotKey = "C"
	SlotFirstDH1   SlotKey = "1B/DH_1"
	SlotFirstDH2   SlotKey = "1B/DH_2"
	SlotSecond     SlotKey = "2B"
	SlotShort      SlotKey = "SS"
	SlotMiddleInf  SlotKey = "MI"
	SlotThird      SlotKey = "3B"
	SlotThirdCatch SlotKey = "3B/C"
	SlotOutfield1  SlotKey = "OF_1"
	SlotOutfield2  SlotKey = "OF_2"
	SlotOutfield3  SlotKey = "OF_3"
	SlotOutfield4  SlotKey = "OF_4"
	SlotOutfield5  SlotKey = "OF_5"
	SlotUtility    SlotKey = "U"
	SlotPitcher1   SlotKey = "P_1"
	SlotPitcher2   SlotKey = "P_2"
	SlotPitcher3   SlotKey = "P_3"
	SlotPitcher4   SlotKey = "P_4"
	SlotPitcher5   SlotKey = "P_5"
	SlotPitcher6   SlotKey = "P_6"
	SlotPitcher7   SlotKey = "P_7"
	SlotPitcher8   SlotKey = "P_8"
	SlotPitcher9   SlotKey = "P_9"
)

// slotOrder is the fixed display and iteration order of roster slots
var slotOrder = []SlotKey{
	SlotCatcher,
	SlotFirstDH1,
	SlotFirstDH2,
	SlotSecond,
	SlotShort,
	SlotMiddleInf,
	SlotThird,
	SlotThirdCatch,
	SlotOutfield1,
	SlotOutfield2,
	SlotOutfield3,
	SlotOutfield4,
	SlotOutfield5,
	SlotUtility,
	SlotPitcher1,
	SlotPitcher2,
	SlotPitcher3,
	SlotPitcher4,
	SlotPitcher5,
	SlotPitcher6,
	SlotPitcher7,
	SlotPitcher8,
	SlotPitcher9,
}

// SlotOrder returns the fixed ordered set of roster slot keys
func SlotOrder() []SlotKey {
	out := make([]SlotKey, len(slotOrder))
	copy(out, slotOrder)
	return out
}

// TotalSlots is the roster size of every team
const TotalSlots = 23

// HitterSlots and PitcherSlots split the roster by role. They size the
// replacement pools for valuation: teams x slots-for-role.
const (
	HitterSlots  = 14
	PitcherSlots = 9
)

// SlotsForRole returns how many roster slots a role fills per team
func SlotsForRole(role Role) int {
	if role == RolePitcher {
		return PitcherSlots
	}
	return HitterSlots
}

// SlotRole returns which role a slot key is reserved for
func (k SlotKey) SlotRole() Role {
	switch k {
	case SlotPitcher1, SlotPitcher2, SlotPitcher3, SlotPitcher4, SlotPitcher5,
		SlotPitcher6, SlotPitcher7, SlotPitcher8, SlotPitcher9:
		return RolePitcher
	default:
		return RoleHitter
	}
}

// Valid reports whether k is one of the 23 roster slot keys
func (k SlotKey) Valid() bool {
	for _, key := range slotOrder {
		if k == key {
			return true
		}
	}
	return false
}

// RosterSlot is one slot on a team's roster grid. An empty slot has a nil
// player and zero cost.
type RosterSlot struct {
	Player     *Player    `json:"player,omitempty"`
	Cost       int        `json:"cost"`
	AcquiredAt *time.Time `json:"acquired_at,omitempty"`
}

// Filled reports whether the slot holds a player
func (s RosterSlot) Filled() bool {
	return s.Player != nil
}

// Team is one franchise in the draft session
type Team struct {
	ID     int                    `json:"id"`
	Name   string                 `json:"name"`
	Budget int                    `json:"budget"`
	Slots  map[SlotKey]RosterSlot `json:"slots"`
}

// Clone returns a deep copy of the team. Slot players are shared
// references; they are immutable once valued.
func (t *Team) Clone() *Team {
	slots := make(map[SlotKey]RosterSlot, len(t.Slots))
	for key, slot := range t.Slots {
		if slot.AcquiredAt != nil {
			at := *slot.AcquiredAt
			slot.AcquiredAt = &at
		}
		slots[key] = slot
	}
	return &Team{
		ID:     t.ID,
		Name:   t.Name,
		Budget: t.Budget,
		Slots:  slots,
	}
}

// NewTeam builds a team with every roster slot empty
func NewTeam(id int, name string, budget int) *Team {
	slots := make(map[SlotKey]RosterSlot, TotalSlots)
	for _, key := range slotOrder {
		slots[key] = RosterSlot{}
	}
	return &Team{
		ID:     id,
		Name:   name,
		Budget: budget,
		Slots:  slots,
	}
}

// TeamMetrics are the derived per-team financial figures shown during a
// live auction.
type TeamMetrics struct {
	FilledSpots     int     `json:"filled_spots"`
	RemainingSpots  int     `json:"remaining_spots"`
	SpentBudget     int     `json:"spent_budget"`
	RemainingBudget int     `json:"remaining_budget"`
	AvgSpend        float64 `json:"avg_spend"`
	MaxBid          int     `json:"max_bid"`
}
