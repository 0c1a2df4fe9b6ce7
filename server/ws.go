package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/sparkfel/schedule1-reverse-search/search"
)

// ProcessUpdate is one frame of the WebSocket search protocol. Type is
// "progress", "result" or "error"; ID ties every frame to one search.
type ProcessUpdate struct {
	Type     string          `json:"type"`
	ID       string          `json:"id"`
	Progress *ProgressUpdate `json:"progress,omitempty"`
	Result   *SearchResult   `json:"result,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// ProgressUpdate mirrors one engine progress snapshot.
type ProgressUpdate struct {
	Depth          int     `json:"depth"`
	States         int     `json:"states"`
	MaxDepth       int     `json:"maxDepth"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
}

// wsClient serializes writes to one WebSocket connection; search frames
// and read-loop errors come from different goroutines.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) send(update ProcessUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(update)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	client := &wsClient{conn: conn}

	for {
		var req SearchRequest
		if err := conn.ReadJSON(&req); err != nil {
			log.Printf("Error reading message: %v", err)
			break
		}

		log.Printf("Received search via WebSocket: effects=%v, mode=%s", req.Effects, req.Mode)
		go s.runSearch(client, req)
	}
}

// runSearch executes one search for a WebSocket client, streaming the
// engine's progress snapshots and finishing with a result or error frame.
func (s *Server) runSearch(client *wsClient, req SearchRequest) {
	id := uuid.NewString()

	progress := func(p search.Progress) {
		err := client.send(ProcessUpdate{
			Type: "progress",
			ID:   id,
			Progress: &ProgressUpdate{
				Depth:          p.Depth,
				States:         p.States,
				MaxDepth:       p.MaxDepth,
				ElapsedSeconds: p.Elapsed.Seconds(),
			},
		})
		if err != nil {
			log.Printf("Error sending progress: %v", err)
		}
	}

	engineReq, err := s.buildRequest(&req, progress)
	if err != nil {
		s.sendError(client, id, err.Error())
		return
	}

	started := time.Now()
	sol, err := search.Search(engineReq)
	if err != nil {
		s.sendError(client, id, err.Error())
		return
	}

	result := s.buildResult(id, sol, req.BaseProduct, time.Since(started))
	if err := client.send(ProcessUpdate{Type: "result", ID: id, Result: &result}); err != nil {
		log.Printf("Error sending result: %v", err)
	}
}

func (s *Server) sendError(client *wsClient, id, message string) {
	if err := client.send(ProcessUpdate{Type: "error", ID: id, Error: message}); err != nil {
		log.Printf("Error sending error message: %v", err)
	}
}
