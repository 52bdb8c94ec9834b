package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/impact-vault/assistant"
	"github.com/AlexZinkM/impact-vault/internal/model"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// upgrader keeps gorilla's default origin check: browsers may only open the
// socket from a page served by this host.
var upgrader = websocket.Upgrader{}

// wsMessage is the websocket envelope in both directions.
// Type is "message" inbound and "response" or "error" outbound.
type wsMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	Content   string `json:"content"`
	AI        bool   `json:"ai,omitempty"`
}

// ChatHandler serves the chat widget
type ChatHandler struct {
	assistant *assistant.Assistant
	log       *zap.Logger
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(a *assistant.Assistant, log *zap.Logger) (*ChatHandler, error) {
	if a == nil {
		return nil, errors.New("assistant is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatHandler{assistant: a, log: log}, nil
}

// Chat handles POST /api/chat
// @Summary      Chat
// @Description  Answers from the keyword table, or from the remote model in AI mode
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body      model.ChatRequest  true  "Message"
// @Success      200      {object}  model.ChatResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	resp, err := h.assistant.Reply(r.Context(), req.SessionID, req.Message)
	if err != nil {
		writeDomainError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// WebSocket handles GET /ws/chat. One session lives as long as the socket.
func (h *ChatHandler) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	var sessionID string
	defer func() {
		if sessionID != "" {
			h.assistant.Forget(sessionID)
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		var in wsMessage
		if err := json.Unmarshal(raw, &in); err != nil {
			h.send(conn, wsMessage{Type: "error", SessionID: sessionID, Content: "invalid message format"})
			continue
		}
		if in.Type != "message" {
			h.send(conn, wsMessage{Type: "error", SessionID: sessionID, Content: "unknown message type: " + in.Type})
			continue
		}

		resp, err := h.assistant.Reply(r.Context(), sessionID, in.Content)
		if err != nil {
			h.send(conn, wsMessage{Type: "error", SessionID: sessionID, Content: err.Error()})
			continue
		}
		sessionID = resp.SessionID
		h.send(conn, wsMessage{Type: "response", SessionID: resp.SessionID, Content: resp.Reply, AI: resp.AI})
	}
}

func (h *ChatHandler) send(conn *websocket.Conn, msg wsMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		h.log.Warn("websocket write failed", zap.Error(err))
	}
}
