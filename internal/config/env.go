package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// ZeroAddress is the placeholder contract address. While it is configured the
// vault can only run in mock mode.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// Config contains all configuration parameters for the application.
// Note: Password is prompted at runtime and stored in memory - use GetWalletPasswordBytes()
type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	WalletFilePath  string        `envconfig:"WALLET_FILE_PATH" default:"wallet.vaultkey"`
	EthRPCURL       string        `envconfig:"ETH_RPC_URL" default:"https://ethereum-sepolia-rpc.publicnode.com"`
	ContractAddress string        `envconfig:"VAULT_CONTRACT_ADDRESS" default:"0x0000000000000000000000000000000000000000"`
	MockTxDelay     time.Duration `envconfig:"MOCK_TX_DELAY" default:"1500ms"`
	ChatAPIKey      string        `envconfig:"CHAT_API_KEY"`
	ChatBaseURL     string        `envconfig:"CHAT_BASE_URL"`
	ChatModel       string        `envconfig:"CHAT_MODEL" default:"gpt-4o-mini"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment  bool          `envconfig:"LOG_DEVELOPMENT" default:"false"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
// A .env file in the working directory is read first when present;
// variables already set in the environment win.
func Init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetWalletFilePath returns path to the .vaultkey file from configuration
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

// GetEthRPCURL returns the EVM JSON-RPC URL from configuration
func GetEthRPCURL() string {
	return Get().EthRPCURL
}

// GetContractAddress returns the vault contract address from configuration
func GetContractAddress() string {
	return Get().ContractAddress
}

// GetMockTxDelay returns how long a mock transaction pretends to take
func GetMockTxDelay() time.Duration {
	return Get().MockTxDelay
}

// MockByDefault reports whether the vault starts in mock mode.
func (c *Config) MockByDefault() bool {
	return c.ContractAddress == "" || c.ContractAddress == ZeroAddress
}

var passwordBytes []byte

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	raw, err := ReadPassword("Enter wallet password: ")
	if err != nil {
		return err
	}
	defer clear(raw)
	SetWalletPassword(raw)
	return nil
}

// ReadPassword reads one hidden line from the terminal.
// Caller must zero the returned slice after use.
func ReadPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return raw, nil
}

// SetWalletPassword stores a copy of password in memory.
func SetWalletPassword(password []byte) {
	clear(passwordBytes)
	passwordBytes = make([]byte, len(password))
	copy(passwordBytes, password)
}

// GetWalletPasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetWalletPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
