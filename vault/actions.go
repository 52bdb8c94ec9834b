package vault

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/AlexZinkM/impact-vault/internal/common"
	"github.com/AlexZinkM/impact-vault/internal/model"

	"go.uber.org/zap"
)

// Deposit puts amount ETH into the vault for the connected account
func (s *Session) Deposit(ctx context.Context, amount string) (*model.ActionResponse, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, &InputError{Message: "Enter an amount"}
	}

	if s.Mock() {
		return s.mockAction(ctx, "deposit", fmt.Sprintf("💰 Mock deposit of %s ETH successful", amount))
	}

	wei, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}
	return s.realAction(ctx, "deposit", "💰 Deposit successful", func(c Contract, key *ecdsa.PrivateKey, address string) (*model.TxReceipt, error) {
		return c.Deposit(ctx, key, wei, address)
	})
}

// SimulateYield asks the vault to credit amount ETH of simulated yield
func (s *Session) SimulateYield(ctx context.Context, amount string) (*model.ActionResponse, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, &InputError{Message: "Enter yield amount"}
	}

	if s.Mock() {
		return s.mockAction(ctx, "simulateYield", fmt.Sprintf("⚡ Simulated %s ETH yield", amount))
	}

	wei, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}
	return s.realAction(ctx, "simulateYield", "⚡ Yield simulated", func(c Contract, key *ecdsa.PrivateKey, _ string) (*model.TxReceipt, error) {
		return c.SimulateYield(ctx, key, wei)
	})
}

// Harvest collects the yield and forwards it to the donation wallet
func (s *Session) Harvest(ctx context.Context) (*model.ActionResponse, error) {
	if s.Mock() {
		return s.mockAction(ctx, "harvest", "💚 Mock harvest complete — Donation simulated!")
	}
	return s.realAction(ctx, "harvest", "💚 Harvest complete — Donation sent!", func(c Contract, key *ecdsa.PrivateKey, _ string) (*model.TxReceipt, error) {
		return c.Harvest(ctx, key)
	})
}

func parseAmount(amount string) (*big.Int, error) {
	wei, err := common.EtherToWei(amount)
	if err != nil {
		return nil, &InputError{Message: fmt.Sprintf("Invalid amount %q", amount)}
	}
	return wei, nil
}

func (s *Session) mockAction(ctx context.Context, action, status string) (*model.ActionResponse, error) {
	if err := s.simulateDelay(ctx); err != nil {
		return nil, err
	}
	s.log.Info("mock action", zap.String("action", action))
	return &model.ActionResponse{
		Status:    status,
		Mock:      true,
		Dashboard: s.dashboard.Refresh(),
	}, nil
}

func (s *Session) realAction(ctx context.Context, action, status string, call func(Contract, *ecdsa.PrivateKey, string) (*model.TxReceipt, error)) (*model.ActionResponse, error) {
	contract, address, err := s.realTarget(ctx)
	if err != nil {
		return nil, err
	}

	key, err := s.unlockKey(address)
	if err != nil {
		return nil, err
	}
	defer zeroKey(key) // Always clear private key from memory

	receipt, err := call(contract, key, address)
	if err != nil {
		s.log.Error("vault transaction failed", zap.String("action", action), zap.Error(err))
		return nil, err
	}

	s.log.Info("vault transaction confirmed",
		zap.String("action", action),
		zap.String("txHash", receipt.TxHash),
		zap.Uint64("block", receipt.BlockNumber),
		zap.Uint64("gasUsed", receipt.GasUsed),
	)
	return &model.ActionResponse{
		Status:      status,
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber,
		Dashboard:   s.dashboard.Refresh(),
	}, nil
}
