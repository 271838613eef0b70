package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/auctioneer/go/internal/models"
	"github.com/rs/zerolog/log"
)

// App handles draft-session bookkeeping: team budgets, roster slot
// assignment, and the derived financial metrics that answer "what can
// team X still afford".
type App struct {
	repo  SessionRepository
	clock clockwork.Clock
}

// NewApp creates a new ledger App
func NewApp(repo SessionRepository, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// CreateSession builds a fresh session: N teams, every roster slot empty
func (a *App) CreateSession(ctx context.Context, cfg models.LeagueConfig) (*models.DraftSession, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	teams := make([]*models.Team, 0, cfg.Teams)
	for i := 1; i <= cfg.Teams; i++ {
		teams = append(teams, models.NewTeam(i, fmt.Sprintf("Team %d", i), cfg.Budget))
	}

	session := &models.DraftSession{
		ID:        uuid.New(),
		Config:    cfg,
		Teams:     teams,
		CreatedAt: a.clock.Now(),
	}

	if err := a.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info().
		Str("session_id", session.ID.String()).
		Int("teams", len(teams)).
		Int("budget", cfg.Budget).
		Msg("draft session created")
	return session, nil
}

// GetSession retrieves a session by id
func (a *App) GetSession(ctx context.Context, id uuid.UUID) (*models.DraftSession, error) {
	session, err := a.repo.GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// AssignPlayer sets a team's roster slot to {player, cost}. A prior
// occupant is overwritten without restitution; callers wanting a swap
// clear the slot first. The ledger does not enforce cross-team player
// uniqueness — the same name may sit on two rosters, and IsPlayerDrafted
// exposes that to callers who care.
func (a *App) AssignPlayer(ctx context.Context, sessionID uuid.UUID, teamID int, slot models.SlotKey, player *models.Player, cost int) (*models.Team, error) {
	if player == nil {
		return nil, fmt.Errorf("validation failed: %w", ErrNilPlayer)
	}
	if cost <= 0 {
		return nil, fmt.Errorf("validation failed: %w", ErrInvalidCost)
	}
	if !slot.Valid() {
		return nil, fmt.Errorf("validation failed: %w", ErrUnknownSlot)
	}

	team, err := a.team(ctx, sessionID, teamID)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	team.Slots[slot] = models.RosterSlot{
		Player:     player,
		Cost:       cost,
		AcquiredAt: &now,
	}

	if err := a.repo.UpdateTeam(ctx, sessionID, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	log.Info().
		Str("session_id", sessionID.String()).
		Int("team_id", teamID).
		Str("slot", string(slot)).
		Str("player", player.Name).
		Int("cost", cost).
		Msg("player assigned")
	return team, nil
}

// ClearSlot resets a roster slot to empty. Idempotent on an already-empty
// slot.
func (a *App) ClearSlot(ctx context.Context, sessionID uuid.UUID, teamID int, slot models.SlotKey) (*models.Team, error) {
	if !slot.Valid() {
		return nil, fmt.Errorf("validation failed: %w", ErrUnknownSlot)
	}

	team, err := a.team(ctx, sessionID, teamID)
	if err != nil {
		return nil, err
	}

	team.Slots[slot] = models.RosterSlot{}

	if err := a.repo.UpdateTeam(ctx, sessionID, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	log.Info().
		Str("session_id", sessionID.String()).
		Int("team_id", teamID).
		Str("slot", string(slot)).
		Msg("slot cleared")
	return team, nil
}

// RenameTeam updates a team's display name. Pure metadata; budgets and
// rosters are untouched.
func (a *App) RenameTeam(ctx context.Context, sessionID uuid.UUID, teamID int, name string) (*models.Team, error) {
	if name == "" {
		return nil, fmt.Errorf("validation failed: %w", ErrEmptyName)
	}

	team, err := a.team(ctx, sessionID, teamID)
	if err != nil {
		return nil, err
	}

	team.Name = name

	if err := a.repo.UpdateTeam(ctx, sessionID, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	log.Info().
		Str("session_id", sessionID.String()).
		Int("team_id", teamID).
		Str("name", name).
		Msg("team renamed")
	return team, nil
}

// GetTeamMetrics computes the derived financial figures for one team
func (a *App) GetTeamMetrics(ctx context.Context, sessionID uuid.UUID, teamID int) (models.TeamMetrics, error) {
	team, err := a.team(ctx, sessionID, teamID)
	if err != nil {
		return models.TeamMetrics{}, err
	}
	return ComputeTeamMetrics(team), nil
}

// IsPlayerDrafted returns every team currently holding the named player.
// More than one entry means the same player sits on multiple rosters,
// which the ledger deliberately does not prevent.
func (a *App) IsPlayerDrafted(ctx context.Context, sessionID uuid.UUID, name string) ([]*models.Team, error) {
	session, err := a.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var holders []*models.Team
	for _, team := range session.Teams {
		for _, slot := range team.Slots {
			if slot.Filled() && slot.Player.Name == name {
				holders = append(holders, team)
				break
			}
		}
	}
	return holders, nil
}

func (a *App) team(ctx context.Context, sessionID uuid.UUID, teamID int) (*models.Team, error) {
	session, err := a.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	team := session.Team(teamID)
	if team == nil {
		return nil, fmt.Errorf("validation failed: %w", ErrUnknownTeam)
	}
	return team, nil
}

// ComputeTeamMetrics derives the live-auction financial figures from a
// team's roster state. MaxBid reserves exactly $1 for every remaining
// slot other than the one being filled now; it may go negative when a
// team is over-committed, which is surfaced as-is so the operator sees
// the over-budget signal.
func ComputeTeamMetrics(team *models.Team) models.TeamMetrics {
	var filled, spent int
	for _, slot := range team.Slots {
		if slot.Filled() {
			filled++
			spent += slot.Cost
		}
	}

	remainingSpots := models.TotalSlots - filled
	remainingBudget := team.Budget - spent

	var avgSpend float64
	var maxBid int
	if remainingSpots > 0 {
		avgSpend = float64(remainingBudget) / float64(remainingSpots)
		maxBid = remainingBudget - (remainingSpots - 1)
	}

	return models.TeamMetrics{
		FilledSpots:     filled,
		RemainingSpots:  remainingSpots,
		SpentBudget:     spent,
		RemainingBudget: remainingBudget,
		AvgSpend:        avgSpend,
		MaxBid:          maxBid,
	}
}
