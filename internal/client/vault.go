package client

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/AlexZinkM/impact-vault/internal/model"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// vaultABI describes the four vault methods the page uses:
//
//	deposit(uint256,address)
//	simulateYield(uint256)
//	harvest()
//	donationWallet() view returns (address)
const vaultABI = `[
	{"type":"function","name":"deposit","stateMutability":"nonpayable",
	 "inputs":[{"name":"assets","type":"uint256"},{"name":"receiver","type":"address"}],"outputs":[]},
	{"type":"function","name":"simulateYield","stateMutability":"nonpayable",
	 "inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"harvest","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"donationWallet","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"address"}]}
]`

// ErrTxReverted is returned when a transaction is mined with a failed status
var ErrTxReverted = errors.New("transaction reverted")

// Backend is the chain access the vault client needs. *ethclient.Client
// satisfies it, as does the simulated backend's client.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// VaultClient is a client for the impact vault contract over EVM JSON-RPC
type VaultClient struct {
	backend  Backend
	closer   func()
	contract *bind.BoundContract
	address  common.Address
	chainID  *big.Int
}

// NewVaultClient dials rpcURL and binds the vault contract at contractAddress.
func NewVaultClient(ctx context.Context, rpcURL, contractAddress string) (*VaultClient, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", contractAddress)
	}

	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	c, err := newVaultClient(eth, chainID, contractAddress, eth.Close)
	if err != nil {
		eth.Close()
		return nil, err
	}
	return c, nil
}

// newVaultClient binds the vault contract on an already connected backend.
func newVaultClient(backend Backend, chainID *big.Int, contractAddress string, closer func()) (*VaultClient, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", contractAddress)
	}

	parsed, err := abi.JSON(strings.NewReader(vaultABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse vault ABI: %w", err)
	}

	address := common.HexToAddress(contractAddress)
	return &VaultClient{
		backend:  backend,
		closer:   closer,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
		address:  address,
		chainID:  chainID,
	}, nil
}

// ChainID returns the chain id read at dial time
func (c *VaultClient) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// Close releases the RPC connection
func (c *VaultClient) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// Deposit calls deposit(amount, receiver) and waits for one confirmation
func (c *VaultClient) Deposit(ctx context.Context, key *ecdsa.PrivateKey, amount *big.Int, receiver string) (*model.TxReceipt, error) {
	if !common.IsHexAddress(receiver) {
		return nil, fmt.Errorf("invalid receiver address %q", receiver)
	}
	return c.transact(ctx, key, "deposit", amount, common.HexToAddress(receiver))
}

// SimulateYield calls simulateYield(amount) and waits for one confirmation
func (c *VaultClient) SimulateYield(ctx context.Context, key *ecdsa.PrivateKey, amount *big.Int) (*model.TxReceipt, error) {
	return c.transact(ctx, key, "simulateYield", amount)
}

// Harvest calls harvest() and waits for one confirmation
func (c *VaultClient) Harvest(ctx context.Context, key *ecdsa.PrivateKey) (*model.TxReceipt, error) {
	return c.transact(ctx, key, "harvest")
}

// DonationWallet reads donationWallet()
func (c *VaultClient) DonationWallet(ctx context.Context) (string, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "donationWallet"); err != nil {
		return "", fmt.Errorf("failed to call donationWallet: %w", err)
	}
	if len(out) != 1 {
		return "", fmt.Errorf("unexpected donationWallet result: %v", out)
	}
	addr, ok := out[0].(common.Address)
	if !ok {
		return "", fmt.Errorf("unexpected donationWallet result type %T", out[0])
	}
	return addr.Hex(), nil
}

// BalanceAt returns the latest balance of address in wei
func (c *VaultClient) BalanceAt(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid address %q", address)
	}
	balance, err := c.backend.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// transact signs and sends a contract call, then blocks until it is mined.
// Gas and fees are left to the node's estimation.
func (c *VaultClient) transact(ctx context.Context, key *ecdsa.PrivateKey, method string, params ...interface{}) (*model.TxReceipt, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(key, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx

	tx, err := c.contract.Transact(auth, method, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s transaction: %w", method, err)
	}

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for %s transaction %s: %w", method, tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%s transaction %s: %w", method, tx.Hash().Hex(), ErrTxReverted)
	}

	var block uint64
	if receipt.BlockNumber != nil {
		block = receipt.BlockNumber.Uint64()
	}
	return &model.TxReceipt{
		TxHash:      tx.Hash().Hex(),
		BlockNumber: block,
		GasUsed:     receipt.GasUsed,
	}, nil
}
