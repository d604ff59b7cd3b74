package feed

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/dynasty-contracts/go/internal/caller"
)

// WebSocketHandler serves league feed subscriptions
type WebSocketHandler struct {
	connectionManager *ConnectionManager
}

func NewWebSocketHandler(cm *ConnectionManager) *WebSocketHandler {
	return &WebSocketHandler{connectionManager: cm}
}

// HandleLeagueConnection subscribes the client to ?league_id=. Browsers
// cannot set headers on a websocket handshake, so the user may also be given
// as ?user_id=.
func (h *WebSocketHandler) HandleLeagueConnection(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("league_id")
	if raw == "" {
		http.Error(w, "league_id is required", http.StatusBadRequest)
		return
	}
	leagueID, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, "invalid league_id format", http.StatusBadRequest)
		return
	}

	userID := r.Header.Get(caller.HeaderUserID)
	if userID == "" {
		userID = r.URL.Query().Get("user_id")
	}
	if userID == "" {
		userID = "anonymous"
	}

	// Upgrade writes its own error response on failure.
	if err := h.connectionManager.UpgradeConnection(w, r, userID, leagueID); err != nil {
		log.Error().
			Err(err).
			Str("league_id", leagueID.String()).
			Str("user_id", userID).
			Msg("failed to upgrade websocket connection")
	}
}

func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.connectionManager.Stats()); err != nil {
		log.Error().Err(err).Msg("failed to write connection stats")
	}
}

func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /ws/league", h.HandleLeagueConnection)
	mux.HandleFunc("GET /ws/stats", h.HandleConnectionStats)
}
