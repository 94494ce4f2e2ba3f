package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/erikmg100/sesame-retell-integration/internal/logger"
	"github.com/erikmg100/sesame-retell-integration/internal/types"
)

// Retell connects from its own infrastructure, never a browser.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// HandleCall serves one Retell call over its websocket. The loop is strictly
// sequential per call: read one frame, maybe write one reply. Unparseable
// frames are dropped and the loop continues; connection loss is the only
// exit, and it releases the call's session immediately.
func (h *Handler) HandleCall(w http.ResponseWriter, r *http.Request) {
	callID := chi.URLParam(r, "call_id")
	log := logger.New().WithCall(callID)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	log.Info("call started")

	defer func() {
		conn.Close()
		h.agent.EndCall(callID)
		log.Info("call cleaned up")
	}()

	// Greet before Retell sends anything, response_id 0 by convention.
	if err := conn.WriteJSON(h.agent.ConnectGreeting(callID)); err != nil {
		log.WithError(err).Warn("failed to send greeting")
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("call ended abnormally")
			} else {
				log.Info("call ended")
			}
			return
		}

		var ev types.Event
		if err := json.Unmarshal(data, &ev); err != nil {
			log.WithError(err).Warn("dropping unparseable frame")
			continue
		}

		reply := h.agent.HandleEvent(callID, ev)
		if reply == nil {
			continue
		}
		if err := conn.WriteJSON(reply); err != nil {
			log.WithError(err).Warn("failed to write reply")
			return
		}
		log.WithField("interaction", ev.InteractionType).Debug("reply sent")
	}
}
