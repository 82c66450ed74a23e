package pipeline

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// RegisterRoutes mounts the chat API endpoints on the given router.
func RegisterRoutes(r chi.Router, p *Pipeline) {
	r.Post("/api/chat", chatHandler(p))
	r.Get("/api/chat/{sessionID}/history", historyHandler(p))
	r.Delete("/api/chat/{sessionID}", clearHandler(p))
}

func chatHandler(p *Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
			return
		}
		if req.SessionID == "" {
			req.SessionID = uuid.New().String()
		}

		resp := p.Process(r.Context(), req)
		writeJSON(w, http.StatusOK, struct {
			SessionID string `json:"sessionId"`
			ChatResponse
		}{req.SessionID, resp})
	}
}

func historyHandler(p *Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sctx, err := p.sessions.Get(chi.URLParam(r, "sessionID"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
			return
		}
		writeJSON(w, http.StatusOK, sctx)
	}
}

func clearHandler(p *Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.sessions.Clear(chi.URLParam(r, "sessionID"))
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
