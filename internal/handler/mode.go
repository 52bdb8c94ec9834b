package handler

import (
	"net/http"

	"github.com/AlexZinkM/impact-vault/assistant"
	"github.com/AlexZinkM/impact-vault/internal/model"
	"github.com/AlexZinkM/impact-vault/vault"

	"go.uber.org/zap"
)

// ModeHandler serves the mock and AI toggles
type ModeHandler struct {
	session   *vault.Session
	assistant *assistant.Assistant
	log       *zap.Logger
}

// NewModeHandler creates a new ModeHandler
func NewModeHandler(session *vault.Session, a *assistant.Assistant, log *zap.Logger) *ModeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ModeHandler{session: session, assistant: a, log: log}
}

func (h *ModeHandler) current() model.ModeResponse {
	mock := h.session.Mock()
	ai := h.assistant.AI()
	return model.ModeResponse{
		Mock:      mock,
		MockLabel: vault.MockLabel(mock),
		AI:        ai,
		AILabel:   assistant.AILabel(ai),
	}
}

// Get handles GET /api/mode
// @Summary      Current modes
// @Tags         mode
// @Produce      json
// @Success      200  {object}  model.ModeResponse
// @Router       /api/mode [get]
func (h *ModeHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, h.current())
}

// ToggleMock handles POST /api/mode/mock
// @Summary      Toggle mock transactions
// @Tags         mode
// @Produce      json
// @Success      200  {object}  model.ModeResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /api/mode/mock [post]
func (h *ModeHandler) ToggleMock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if _, err := h.session.ToggleMock(); err != nil {
		writeDomainError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.current())
}

// ToggleAI handles POST /api/mode/ai
// @Summary      Toggle AI chat replies
// @Tags         mode
// @Produce      json
// @Success      200  {object}  model.ModeResponse
// @Router       /api/mode/ai [post]
func (h *ModeHandler) ToggleAI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	h.assistant.ToggleAI()
	writeJSON(w, http.StatusOK, h.current())
}
