package vault

import (
	"context"
	"crypto/ecdsa"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/AlexZinkM/impact-vault/internal/client"
	"github.com/AlexZinkM/impact-vault/internal/config"
	"github.com/AlexZinkM/impact-vault/internal/crypto"
	"github.com/AlexZinkM/impact-vault/internal/model"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

const (
	mockOnLabel  = "🧪 Mock Mode: ON"
	mockOffLabel = "⛓️ Mock Mode: OFF"
)

// Contract is the vault contract as seen by the session
type Contract interface {
	ChainID() *big.Int
	Deposit(ctx context.Context, key *ecdsa.PrivateKey, amount *big.Int, receiver string) (*model.TxReceipt, error)
	SimulateYield(ctx context.Context, key *ecdsa.PrivateKey, amount *big.Int) (*model.TxReceipt, error)
	Harvest(ctx context.Context, key *ecdsa.PrivateKey) (*model.TxReceipt, error)
	DonationWallet(ctx context.Context) (string, error)
	BalanceAt(ctx context.Context, address string) (*big.Int, error)
	Close()
}

// Dialer connects to the RPC provider and binds the contract
type Dialer func(ctx context.Context, rpcURL, contractAddress string) (Contract, error)

// RateSource provides the ETH/USD rate for the balance view
type RateSource interface {
	GetETHToUSDRate(ctx context.Context) (string, error)
}

// DialVaultClient is the Dialer backed by go-ethereum
func DialVaultClient(ctx context.Context, rpcURL, contractAddress string) (Contract, error) {
	c, err := client.NewVaultClient(ctx, rpcURL, contractAddress)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Options configures a Session
type Options struct {
	WalletFilePath  string
	RPCURL          string
	ContractAddress string
	MockTxDelay     time.Duration
	Mock            bool
	// KeyScryptN is the scrypt cost for generated key files; 0 means crypto.StandardScryptN
	KeyScryptN int
	// Password returns a copy of the wallet password; the session zeroes it after use
	Password  func() ([]byte, error)
	Dial      Dialer
	Rates     RateSource
	Dashboard *Dashboard
	Logger    *zap.Logger
}

// Session holds the page-lifetime state: connection handle and mock flag.
// Nothing is persisted; a restart resets everything to the defaults.
type Session struct {
	opts      Options
	dashboard *Dashboard
	log       *zap.Logger

	mu        sync.Mutex
	mock      bool
	connected bool
	address   string
	contract  Contract
}

// NewSession creates a session. Missing options fall back to defaults.
func NewSession(opts Options) *Session {
	if opts.Dial == nil {
		opts.Dial = DialVaultClient
	}
	if opts.Rates == nil {
		opts.Rates = client.NewCoinGeckoClient()
	}
	if opts.Password == nil {
		opts.Password = config.GetWalletPasswordBytes
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.KeyScryptN == 0 {
		opts.KeyScryptN = crypto.StandardScryptN
	}
	dashboard := opts.Dashboard
	if dashboard == nil {
		dashboard = NewDashboard(nil)
	}
	return &Session{
		opts:      opts,
		dashboard: dashboard,
		log:       opts.Logger,
		mock:      opts.Mock || !contractConfigured(opts.ContractAddress),
	}
}

// NewSessionFromConfig creates a session from the global configuration
func NewSessionFromConfig(log *zap.Logger) *Session {
	return NewSession(Options{
		WalletFilePath:  config.GetWalletFilePath(),
		RPCURL:          config.GetEthRPCURL(),
		ContractAddress: config.GetContractAddress(),
		MockTxDelay:     config.GetMockTxDelay(),
		Mock:            config.Get().MockByDefault(),
		Logger:          log,
	})
}

func contractConfigured(address string) bool {
	return address != "" && address != config.ZeroAddress
}

// MockLabel is the toggle text for a mock flag value
func MockLabel(mock bool) string {
	if mock {
		return mockOnLabel
	}
	return mockOffLabel
}

// Mock reports whether actions are simulated
func (s *Session) Mock() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mock
}

// ToggleMock flips mock mode and returns the new value.
// Leaving mock mode needs a configured contract address.
func (s *Session) ToggleMock() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mock && !contractConfigured(s.opts.ContractAddress) {
		return s.mock, ErrContractNotConfigured
	}
	s.mock = !s.mock

	// A binding made for real mode is rebuilt on demand
	if s.contract != nil {
		s.contract.Close()
		s.contract = nil
	}
	s.log.Info("mock mode toggled", zap.Bool("mock", s.mock))
	return s.mock, nil
}

// Connected returns the connected account address, if any
func (s *Session) Connected() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address, s.connected
}

// Dashboard returns fresh display values
func (s *Session) Dashboard() model.Dashboard {
	return s.dashboard.Refresh()
}

// Close releases the contract binding, if any
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.contract != nil {
		s.contract.Close()
		s.contract = nil
	}
}

// realTarget returns the bound contract and the connected address,
// dialing lazily when the binding was dropped by a mode switch.
func (s *Session) realTarget(ctx context.Context) (Contract, string, error) {
	s.mu.Lock()
	connected, address, contract := s.connected, s.address, s.contract
	s.mu.Unlock()

	if !connected {
		return nil, "", ErrNotConnected
	}
	if contract != nil {
		return contract, address, nil
	}

	contract, err := s.opts.Dial(ctx, s.opts.RPCURL, s.opts.ContractAddress)
	if err != nil {
		return nil, "", fmt.Errorf("failed to bind vault contract: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.contract != nil {
		// Another request bound it first
		contract.Close()
		return s.contract, address, nil
	}
	s.contract = contract
	return contract, address, nil
}

// unlockKey decrypts the wallet key and checks it belongs to address.
// Caller must zeroKey the result.
func (s *Session) unlockKey(address string) (*ecdsa.PrivateKey, error) {
	password, err := s.password()
	if err != nil {
		return nil, err
	}
	defer clear(password) // Always clear password from memory

	_, walletData, err := crypto.DecryptWallet(s.opts.WalletFilePath, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt wallet: %w", err)
	}
	defer clear(walletData.PrivateKey)

	key, err := ethcrypto.ToECDSA(walletData.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	derived := ethcrypto.PubkeyToAddress(key.PublicKey).Hex()
	if subtle.ConstantTimeCompare([]byte(strings.ToLower(derived)), []byte(strings.ToLower(address))) != 1 {
		zeroKey(key)
		return nil, fmt.Errorf("private key does not match address")
	}
	return key, nil
}

// password returns a copy of the wallet password. Caller must clear it.
func (s *Session) password() ([]byte, error) {
	password, err := s.opts.Password()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPassword, err)
	}
	if len(password) == 0 {
		return nil, ErrNoPassword
	}
	return password, nil
}

// zeroKey wipes the private scalar in place.
func zeroKey(k *ecdsa.PrivateKey) {
	if k == nil || k.D == nil {
		return
	}
	b := k.D.Bits()
	for i := range b {
		b[i] = 0
	}
}

// simulateDelay is the mock stand-in for waiting on a confirmation
func (s *Session) simulateDelay(ctx context.Context) error {
	if s.opts.MockTxDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.opts.MockTxDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
