package models

import (
	"time"

	"github.com/google/uuid"
)

// DraftSession is the full mutable state of one live auction: every team
// with its roster grid and budget. Sessions are memory-resident only;
// reloading the application discards them.
type DraftSession struct {
	ID        uuid.UUID    `json:"id"`
	Config    LeagueConfig `json:"config"`
	Teams     []*Team      `json:"teams"`
	CreatedAt time.Time    `json:"created_at"`
}

// Clone returns a deep copy of the session with every team cloned.
func (s *DraftSession) Clone() *DraftSession {
	teams := make([]*Team, len(s.Teams))
	for i, t := range s.Teams {
		teams[i] = t.Clone()
	}
	return &DraftSession{
		ID:        s.ID,
		Config:    s.Config,
		Teams:     teams,
		CreatedAt: s.CreatedAt,
	}
}

// Team returns the team with the given id, or nil if no such team exists
func (s *DraftSession) Team(teamID int) *Team {
	for _, t := range s.Teams {
		if t.ID == teamID {
			return t
		}
	}
	return nil
}
