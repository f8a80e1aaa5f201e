package websocket

import (
	"log"
	"net/http"

	"scriptstudio/db"
	"scriptstudio/models"
	"scriptstudio/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// In production, adjust the CheckOrigin function to allow only trusted origins.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatRequest is one refinement turn from the client: the research
// parameters it generated with, plus a free-text instruction.
type ChatRequest struct {
	Params      models.ResearchParams `json:"params"`
	Instruction string                `json:"instruction"`
}

// ChatResponse carries either the replacement script or an error back to
// the client.
type ChatResponse struct {
	Type   string         `json:"type"` // "script" or "error"
	Script *models.Script `json:"script,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// RefineChatHandler runs a conversational refinement session over a
// WebSocket. Each incoming instruction is applied against the latest stored
// version of the script, and the replacement script is persisted and sent
// back, so consecutive turns build on each other.
func RefineChatHandler(c *gin.Context) {
	scriptID := c.Param("id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var req ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Chat connection error for script %s: %v", scriptID, err)
			}
			return
		}
		if req.Instruction == "" {
			writeResponse(conn, ChatResponse{Type: "error", Error: "Instruction is required"})
			continue
		}

		current, err := db.GetScript(c.Request.Context(), scriptID)
		if err != nil {
			writeResponse(conn, ChatResponse{Type: "error", Error: err.Error()})
			continue
		}

		refined, err := services.RefineScript(c.Request.Context(), req.Params, current, req.Instruction)
		if err != nil {
			log.Printf("Chat refinement failed for script %s: %v", scriptID, err)
			writeResponse(conn, ChatResponse{Type: "error", Error: err.Error()})
			continue
		}

		if err := db.ReplaceScript(c.Request.Context(), scriptID, refined); err != nil {
			writeResponse(conn, ChatResponse{Type: "error", Error: "Failed to save refined script"})
			continue
		}

		writeResponse(conn, ChatResponse{Type: "script", Script: refined})
	}
}

func writeResponse(conn *websocket.Conn, resp ChatResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("Error sending chat response: %v", err)
	}
}
