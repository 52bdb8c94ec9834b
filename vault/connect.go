package vault

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/AlexZinkM/impact-vault/internal/common"
	"github.com/AlexZinkM/impact-vault/internal/crypto"
	"github.com/AlexZinkM/impact-vault/internal/model"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	mockConnectedLabel = "✅ Mock Connected"
	connectedLabel     = "✅ Connected"
)

// Connect requests account access from the wallet key file.
// In mock mode the contract is not bound; in real mode the key is unlocked,
// the RPC provider is dialed and the contract bound. No retry.
func (s *Session) Connect(ctx context.Context) (*model.ConnectResponse, error) {
	address, err := crypto.ReadWalletAddress(s.opts.WalletFilePath)
	if err != nil {
		if errors.Is(err, crypto.ErrNoKeyFile) {
			return nil, ErrNoWallet
		}
		s.log.Error("wallet connection failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}

	resp := &model.ConnectResponse{
		Connected:    true,
		Address:      address,
		ShortAddress: common.ShortAddress(address),
	}

	qr, err := generateQRCode(address)
	if err != nil {
		s.log.Warn("failed to render address QR code", zap.Error(err))
	}
	resp.QR = qr

	if s.Mock() {
		s.setConnected(address, nil)
		resp.Mock = true
		resp.Label = mockConnectedLabel
		resp.Dashboard = s.dashboard.Refresh()
		s.log.Info("wallet connected", zap.String("address", address), zap.Bool("mock", true))
		return resp, nil
	}

	if !contractConfigured(s.opts.ContractAddress) {
		return nil, ErrContractNotConfigured
	}

	// Unlocking proves the password and that the key matches the address
	key, err := s.unlockKey(address)
	if err != nil {
		s.log.Error("wallet connection failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}
	zeroKey(key)

	contract, err := s.opts.Dial(ctx, s.opts.RPCURL, s.opts.ContractAddress)
	if err != nil {
		s.log.Error("wallet connection failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}

	s.setConnected(address, contract)
	resp.Label = connectedLabel
	resp.ChainID = contract.ChainID().String()
	resp.Dashboard = s.dashboard.Refresh()
	s.log.Info("wallet connected",
		zap.String("address", address),
		zap.String("chainId", resp.ChainID),
		zap.Bool("mock", false),
	)
	return resp, nil
}

func (s *Session) setConnected(address string, contract Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.contract != nil && s.contract != contract {
		s.contract.Close()
	}
	s.connected = true
	s.address = address
	s.contract = contract
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
