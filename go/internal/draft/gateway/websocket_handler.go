package gateway

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/auctioneer/go/internal/draft/events"
	"github.com/mcdev12/auctioneer/go/internal/models"
)

// WebSocketHandler handles WebSocket upgrade requests for session event
// streams.
type WebSocketHandler struct {
	connectionManager *ConnectionManager
	session           *models.DraftSession
}

// NewWebSocketHandler creates a new WebSocket handler. The session is the
// process's single draft session; its id is used when the client omits
// one, and its creation details seed the initial frame every new tab
// receives.
func NewWebSocketHandler(cm *ConnectionManager, session *models.DraftSession) *WebSocketHandler {
	return &WebSocketHandler{
		connectionManager: cm,
		session:           session,
	}
}

// HandleSessionConnection handles WebSocket connections for a session.
// Every new connection is greeted with a SessionCreated event so a tab
// opened mid-draft learns the session id, team count and budget without
// a separate fetch.
func (h *WebSocketHandler) HandleSessionConnection(w http.ResponseWriter, r *http.Request) {
	sessionID := h.session.ID
	if raw := r.URL.Query().Get("session_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid session_id format", http.StatusBadRequest)
			return
		}
		sessionID = parsed
	}

	conn, err := h.connectionManager.UpgradeConnection(w, r, sessionID)
	if err != nil {
		log.Error().
			Err(err).
			Str("session_id", sessionID.String()).
			Msg("failed to upgrade WebSocket connection")
		http.Error(w, "failed to upgrade connection", http.StatusInternalServerError)
		return
	}

	event, err := NewSessionEvent(sessionID, EventTypeSessionCreated, events.SessionCreatedPayload{
		SessionID: h.session.ID.String(),
		Teams:     len(h.session.Teams),
		Budget:    h.session.Config.Budget,
		CreatedAt: h.session.CreatedAt,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to build session created event")
		return
	}
	h.connectionManager.SendToConnection(conn, event)
}

// HandleConnectionStats returns statistics about active connections
func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	total, sessions := h.connectionManager.ConnectionCount()

	writeJSON(w, http.StatusOK, connectionStats{
		TotalConnections: total,
		ActiveSessions:   sessions,
	})
}

type connectionStats struct {
	TotalConnections int `json:"total_connections"`
	ActiveSessions   int `json:"active_sessions"`
}

// RegisterRoutes registers WebSocket routes with an HTTP mux
func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/draft", h.HandleSessionConnection)
	mux.HandleFunc("/ws/stats", h.HandleConnectionStats)
}
