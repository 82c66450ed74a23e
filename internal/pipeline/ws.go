package pipeline

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Message   string `json:"message"`
	Language  string `json:"language"`
	SessionID string `json:"sessionId"`
}

// wsResponse wraps a turn result for the socket. Type is "response" or
// "error".
type wsResponse struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	ChatResponse
}

// RegisterWebSocket mounts the streaming chat endpoint. One connection
// serves one visitor; the session id is assigned on the first turn and
// reused for the rest of the connection.
func RegisterWebSocket(r chi.Router, p *Pipeline) {
	r.Get("/ws/chat", wsHandler(p))
}

func wsHandler(p *Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("pipeline: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		sessionID := ""
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("pipeline: websocket read: %v", err)
				}
				return
			}

			var req wsRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendWSError(conn, sessionID, "invalid message format")
				continue
			}

			if req.SessionID != "" {
				sessionID = req.SessionID
			}
			if sessionID == "" {
				sessionID = uuid.New().String()
			}

			resp := p.Process(r.Context(), ChatRequest{
				Message:   req.Message,
				Language:  req.Language,
				SessionID: sessionID,
			})
			send := wsResponse{Type: "response", SessionID: sessionID, ChatResponse: resp}
			if err := conn.WriteJSON(send); err != nil {
				log.Printf("pipeline: websocket write: %v", err)
				return
			}
		}
	}
}

func sendWSError(conn *websocket.Conn, sessionID, message string) {
	resp := wsResponse{
		Type:      "error",
		SessionID: sessionID,
	}
	resp.Message = message
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("pipeline: websocket write error: %v", err)
	}
}
