package api

import (
	_ "embed"
	"net/http"

	"github.com/AlexZinkM/impact-vault/assistant"
	_ "github.com/AlexZinkM/impact-vault/docs"
	"github.com/AlexZinkM/impact-vault/internal/handler"
	"github.com/AlexZinkM/impact-vault/internal/logger"
	"github.com/AlexZinkM/impact-vault/vault"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

//go:embed index.html
var indexHTML []byte

// SetupRouter sets up router with handlers
func SetupRouter(session *vault.Session, chat *assistant.Assistant, log *zap.Logger) (http.Handler, error) {
	if log == nil {
		log = zap.NewNop()
	}

	vaultHandler, err := handler.NewVaultHandler(session, log)
	if err != nil {
		return nil, err
	}
	chatHandler, err := handler.NewChatHandler(chat, log)
	if err != nil {
		return nil, err
	}
	modeHandler := handler.NewModeHandler(session, chat, log)

	mux := http.NewServeMux()

	// Page
	mux.HandleFunc("/", serveIndex)

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/api/wallet/connect", vaultHandler.Connect)
	mux.HandleFunc("/api/wallet/generate", vaultHandler.Generate)
	mux.HandleFunc("/api/wallet/balance", vaultHandler.Balance)

	// Vault endpoints
	mux.HandleFunc("/api/vault/deposit", vaultHandler.Deposit)
	mux.HandleFunc("/api/vault/yield", vaultHandler.SimulateYield)
	mux.HandleFunc("/api/vault/harvest", vaultHandler.Harvest)
	mux.HandleFunc("/api/vault/donation-wallet", vaultHandler.DonationWallet)
	mux.HandleFunc("/api/dashboard", vaultHandler.Dashboard)

	// Mode toggles
	mux.HandleFunc("/api/mode", modeHandler.Get)
	mux.HandleFunc("/api/mode/mock", modeHandler.ToggleMock)
	mux.HandleFunc("/api/mode/ai", modeHandler.ToggleAI)

	// Chat
	mux.HandleFunc("/api/chat", chatHandler.Chat)
	mux.HandleFunc("/ws/chat", chatHandler.WebSocket)

	return logger.Middleware(log, mux), nil
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}
