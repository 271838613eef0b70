package ledger

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mcdev12/auctioneer/go/internal/models"
)

// SessionRepository defines what the app layer needs from session storage.
// Draft sessions are memory-resident by design (reload discards state);
// the interface leaves a seam for a durable implementation later.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *models.DraftSession) error
	GetSession(ctx context.Context, id uuid.UUID) (*models.DraftSession, error)
	UpdateTeam(ctx context.Context, sessionID uuid.UUID, team *models.Team) error
}

// MemorySessionRepository keeps sessions in process memory. Reads hand
// out deep copies and writes store deep copies, so callers never share
// roster maps with stored state; gateway handlers can encode a snapshot
// while a mutation is in flight.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*models.DraftSession
}

// NewMemorySessionRepository creates an empty in-memory session store
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[uuid.UUID]*models.DraftSession),
	}
}

// CreateSession stores a new session
func (r *MemorySessionRepository) CreateSession(ctx context.Context, session *models.DraftSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session.Clone()
	return nil
}

// GetSession retrieves a snapshot of a session by id. The snapshot is
// detached: later mutations do not show up in it.
func (r *MemorySessionRepository) GetSession(ctx context.Context, id uuid.UUID) (*models.DraftSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrUnknownSession
	}
	return session.Clone(), nil
}

// UpdateTeam replaces a team's state within a session
func (r *MemorySessionRepository) UpdateTeam(ctx context.Context, sessionID uuid.UUID, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return ErrUnknownSession
	}
	for i, t := range session.Teams {
		if t.ID == team.ID {
			session.Teams[i] = team.Clone()
			return nil
		}
	}
	return ErrUnknownTeam
}
