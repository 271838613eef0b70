package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/mcdev12/auctioneer/go/internal/filter"
	"github.com/mcdev12/auctioneer/go/internal/ledger"
	"github.com/mcdev12/auctioneer/go/internal/models"
	"github.com/rs/zerolog/log"
)

// Service is the local HTTP surface for the single-operator draft UI. It
// serves the valued player pool (static for the session) and proxies
// ledger mutations, broadcasting each successful one over WebSocket.
type Service struct {
	ledgerApp         *ledger.App
	sessionID         uuid.UUID
	players           map[models.Role][]*models.Player
	connectionManager *ConnectionManager
}

// NewService creates a gateway service for one draft session
func NewService(ledgerApp *ledger.App, sessionID uuid.UUID, players []*models.Player, cm *ConnectionManager) *Service {
	byRole := make(map[models.Role][]*models.Player)
	for _, p := range players {
		byRole[p.Role()] = append(byRole[p.Role()], p)
	}
	return &Service{
		ledgerApp:         ledgerApp,
		sessionID:         sessionID,
		players:           byRole,
		connectionManager: cm,
	}
}

// RegisterRoutes registers the REST routes with an HTTP mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/players", s.handleListPlayers)
	mux.HandleFunc("GET /api/session", s.handleGetSession)
	mux.HandleFunc("GET /api/teams/{id}/metrics", s.handleTeamMetrics)
	mux.HandleFunc("POST /api/teams/{id}/assign", s.handleAssign)
	mux.HandleFunc("POST /api/teams/{id}/clear", s.handleClear)
	mux.HandleFunc("POST /api/teams/{id}/rename", s.handleRename)
	mux.HandleFunc("GET /api/drafted", s.handleDrafted)
	mux.HandleFunc("GET /healthz", s.handleHealth)
}

func (s *Service) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	role := models.RoleHitter
	if r.URL.Query().Get("role") == "pitchers" {
		role = models.RolePitcher
	}

	criteria := filter.Criteria{
		Search:   r.URL.Query().Get("search"),
		Position: r.URL.Query().Get("position"),
		Team:     r.URL.Query().Get("team"),
	}

	matched := filter.Apply(s.players[role], criteria)

	// Bidding guidance view: most valuable first
	sort.SliceStable(matched, func(i, j int) bool {
		vi, vj := matched[i].Valuation, matched[j].Valuation
		if vi.DollarValue != vj.DollarValue {
			return vi.DollarValue > vj.DollarValue
		}
		return vi.TotalZ > vj.TotalZ
	})

	writeJSON(w, http.StatusOK, matched)
}

func (s *Service) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.ledgerApp.GetSession(r.Context(), s.sessionID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Service) handleTeamMetrics(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid team id")
		return
	}

	metrics, err := s.ledgerApp.GetTeamMetrics(r.Context(), s.sessionID, teamID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

type assignRequest struct {
	Slot       models.SlotKey `json:"slot"`
	PlayerName string         `json:"player_name"`
	Role       string         `json:"role"`
	Cost       int            `json:"cost"`
}

func (s *Service) handleAssign(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid team id")
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role := models.RoleHitter
	if req.Role == "pitchers" {
		role = models.RolePitcher
	}
	player := s.findPlayer(role, req.PlayerName)

	team, err := s.ledgerApp.AssignPlayer(r.Context(), s.sessionID, teamID, req.Slot, player, req.Cost)
	if err != nil {
		respondError(w, err)
		return
	}

	s.broadcast(EventTypePlayerAssigned, playerAssignedPayload(team, req.Slot))
	writeJSON(w, http.StatusOK, team)
}

type clearRequest struct {
	Slot models.SlotKey `json:"slot"`
}

func (s *Service) handleClear(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid team id")
		return
	}

	var req clearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	team, err := s.ledgerApp.ClearSlot(r.Context(), s.sessionID, teamID, req.Slot)
	if err != nil {
		respondError(w, err)
		return
	}

	s.broadcast(EventTypeSlotCleared, slotClearedPayload(team, req.Slot))
	writeJSON(w, http.StatusOK, team)
}

type renameRequest struct {
	Name string `json:"name"`
}

func (s *Service) handleRename(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid team id")
		return
	}

	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	team, err := s.ledgerApp.RenameTeam(r.Context(), s.sessionID, teamID, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}

	s.broadcast(EventTypeTeamRenamed, teamRenamedPayload(team))
	writeJSON(w, http.StatusOK, team)
}

func (s *Service) handleDrafted(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	holders, err := s.ledgerApp.IsPlayerDrafted(r.Context(), s.sessionID, name)
	if err != nil {
		respondError(w, err)
		return
	}
	if holders == nil {
		holders = []*models.Team{}
	}
	writeJSON(w, http.StatusOK, holders)
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// findPlayer looks up a valued player by role and name. Returns nil when
// absent; the ledger rejects nil players, so an unknown name surfaces as
// a validation error rather than a silent no-op.
func (s *Service) findPlayer(role models.Role, name string) *models.Player {
	for _, p := range s.players[role] {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (s *Service) broadcast(eventType EventType, payload interface{}) {
	if s.connectionManager == nil {
		return
	}
	event, err := NewSessionEvent(s.sessionID, eventType, payload)
	if err != nil {
		log.Error().Err(err).Str("event_type", string(eventType)).Msg("failed to build session event")
		return
	}
	s.connectionManager.BroadcastToSession(s.sessionID, event)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, ledger.ErrUnknownSession), errors.Is(err, ledger.ErrUnknownTeam):
		status = http.StatusNotFound
	}
	writeError(w, status, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
