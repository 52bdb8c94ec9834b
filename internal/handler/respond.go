package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/impact-vault/assistant"
	"github.com/AlexZinkM/impact-vault/internal/model"
	"github.com/AlexZinkM/impact-vault/vault"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, model.ErrorResponse{Error: message, Code: code})
}

// writeDomainError maps vault and assistant errors to HTTP statuses.
// Unexpected failures are logged; the page shows the message as an alert.
func writeDomainError(w http.ResponseWriter, log *zap.Logger, err error) {
	var chatInput *assistant.InputError
	switch {
	case vault.IsInputError(err), errors.As(err, &chatInput):
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, vault.ErrNoWallet):
		writeError(w, http.StatusPreconditionFailed, "no_wallet", err.Error())
	case errors.Is(err, vault.ErrNoPassword):
		writeError(w, http.StatusPreconditionFailed, "no_password", err.Error())
	case vault.IsFileExistsError(err):
		writeError(w, http.StatusConflict, "wallet_exists", err.Error())
	case errors.Is(err, vault.ErrNotConnected):
		writeError(w, http.StatusConflict, "not_connected", err.Error())
	case errors.Is(err, vault.ErrContractNotConfigured):
		writeError(w, http.StatusConflict, "contract_not_configured", err.Error())
	case errors.Is(err, vault.ErrWrongMode):
		writeError(w, http.StatusConflict, "mock_mode", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "cancelled", err.Error())
	case errors.Is(err, vault.ErrConnectFailed):
		writeError(w, http.StatusBadGateway, "connect_failed", err.Error())
	default:
		log.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
	}
}

func methodNotAllowed(w http.ResponseWriter, want string) {
	w.Header().Set("Allow", want)
	http.Error(w, "Method not allowed. Should be "+want, http.StatusMethodNotAllowed)
}
