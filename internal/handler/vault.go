package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/impact-vault/internal/model"
	"github.com/AlexZinkM/impact-vault/vault"

	"go.uber.org/zap"
)

// VaultHandler serves wallet and vault operations
type VaultHandler struct {
	session *vault.Session
	log     *zap.Logger
}

// NewVaultHandler creates a new VaultHandler
func NewVaultHandler(session *vault.Session, log *zap.Logger) (*VaultHandler, error) {
	if session == nil {
		return nil, errors.New("vault session is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &VaultHandler{session: session, log: log}, nil
}

// Connect handles POST /api/wallet/connect
// @Summary      Connect wallet
// @Description  Unlocks the wallet key file; in real mode also binds the vault contract
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.ConnectResponse
// @Failure      412  {object}  model.ErrorResponse
// @Router       /api/wallet/connect [post]
func (h *VaultHandler) Connect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	resp, err := h.session.Connect(r.Context())
	if err != nil {
		writeDomainError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Generate handles POST /api/wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a new Ethereum key and saves it encrypted to the .vaultkey file
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      409  {object}  model.ErrorResponse
// @Failure      412  {object}  model.ErrorResponse
// @Router       /api/wallet/generate [post]
func (h *VaultHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	address, err := h.session.GenerateWallet()
	if err != nil {
		writeDomainError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: address,
	})
}

// Balance handles GET /api/wallet/balance
// @Summary      Get wallet balance (USD = ETH * rate)
// @Description  Gets the connected account's ETH balance with the ETH/USD rate. Real mode only.
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /api/wallet/balance [get]
func (h *VaultHandler) Balance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	resp, err := h.session.Balance(r.Context())
	if err != nil {
		writeDomainError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Deposit handles POST /api/vault/deposit
// @Summary      Deposit
// @Description  Deposits ETH into the vault (or simulates it in mock mode)
// @Tags         vault
// @Accept       json
// @Produce      json
// @Param        request  body      model.ActionRequest  true  "Amount in ETH"
// @Success      200      {object}  model.ActionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/vault/deposit [post]
func (h *VaultHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req model.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	resp, err := h.session.Deposit(r.Context(), req.Amount)
	if err != nil {
		writeDomainError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SimulateYield handles POST /api/vault/yield
// @Summary      Simulate yield
// @Description  Credits simulated yield to the vault (or fakes it in mock mode)
// @Tags         vault
// @Accept       json
// @Produce      json
// @Param        request  body      model.ActionRequest  true  "Yield amount in ETH"
// @Success      200      {object}  model.ActionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/vault/yield [post]
func (h *VaultHandler) SimulateYield(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req model.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	resp, err := h.session.SimulateYield(r.Context(), req.Amount)
	if err != nil {
		writeDomainError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Harvest handles POST /api/vault/harvest
// @Summary      Harvest
// @Description  Collects the yield and forwards it to the donation wallet
// @Tags         vault
// @Produce      json
// @Success      200  {object}  model.ActionResponse
// @Router       /api/vault/harvest [post]
func (h *VaultHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	resp, err := h.session.Harvest(r.Context())
	if err != nil {
		writeDomainError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// DonationWallet handles GET /api/vault/donation-wallet
// @Summary      Donation wallet
// @Description  Reads the vault's donation target. Real mode only.
// @Tags         vault
// @Produce      json
// @Success      200  {object}  model.DonationWalletResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /api/vault/donation-wallet [get]
func (h *VaultHandler) DonationWallet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	resp, err := h.session.DonationWallet(r.Context())
	if err != nil {
		writeDomainError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Dashboard handles GET /api/dashboard
// @Summary      Refresh dashboard
// @Description  Returns fresh random display values
// @Tags         vault
// @Produce      json
// @Success      200  {object}  model.Dashboard
// @Router       /api/dashboard [get]
func (h *VaultHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, h.session.Dashboard())
}
