package vault

import (
	"context"
	"fmt"
	"math/big"

	"github.com/AlexZinkM/impact-vault/internal/common"
	"github.com/AlexZinkM/impact-vault/internal/model"
)

// Balance gets the connected account's ETH balance with its USD value
func (s *Session) Balance(ctx context.Context) (*model.BalanceResponse, error) {
	if s.Mock() {
		return nil, ErrWrongMode
	}

	contract, address, err := s.realTarget(ctx)
	if err != nil {
		return nil, err
	}

	wei, err := contract.BalanceAt(ctx, address)
	if err != nil {
		return nil, err
	}
	eth := common.WeiToEther(wei)

	rate, err := s.opts.Rates.GetETHToUSDRate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate: %w", err)
	}

	// Float only for display, never for amounts sent on chain
	ethFloat, ethOK := new(big.Float).SetString(eth)
	rateFloat, rateOK := new(big.Float).SetString(rate)
	if !ethOK || !rateOK {
		return nil, fmt.Errorf("failed to compute USD value of %s ETH at %s", eth, rate)
	}
	usd := new(big.Float).Mul(ethFloat, rateFloat)

	return &model.BalanceResponse{
		Address: address,
		ETH:     eth,
		Rate:    rate,
		USD:     usd.Text('f', 2),
	}, nil
}

// DonationWallet reads the vault's donation target
func (s *Session) DonationWallet(ctx context.Context) (*model.DonationWalletResponse, error) {
	if s.Mock() {
		return nil, ErrWrongMode
	}

	contract, _, err := s.realTarget(ctx)
	if err != nil {
		return nil, err
	}

	wallet, err := contract.DonationWallet(ctx)
	if err != nil {
		return nil, err
	}
	return &model.DonationWalletResponse{DonationWallet: wallet}, nil
}
