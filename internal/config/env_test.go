package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, Init())
	c := Get()

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "wallet.vaultkey", c.WalletFilePath)
	assert.Equal(t, ZeroAddress, c.ContractAddress)
	assert.Equal(t, 1500*time.Millisecond, c.MockTxDelay)
	assert.Equal(t, "gpt-4o-mini", c.ChatModel)
	assert.True(t, c.MockByDefault())
}

func TestInitFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("VAULT_CONTRACT_ADDRESS", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	t.Setenv("MOCK_TX_DELAY", "20ms")

	require.NoError(t, Init())

	assert.Equal(t, "9090", GetPort())
	assert.Equal(t, 20*time.Millisecond, GetMockTxDelay())
	assert.False(t, Get().MockByDefault())
}

func TestInitRejectsBadDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MOCK_TX_DELAY", "soon")

	assert.Error(t, Init())
}

func TestWalletPasswordCopy(t *testing.T) {
	SetWalletPassword([]byte("secret"))

	got, err := GetWalletPasswordBytes()
	require.NoError(t, err)
	assert.Equal(t, "secret", string(got))

	clear(got)
	again, err := GetWalletPasswordBytes()
	require.NoError(t, err)
	assert.Equal(t, "secret", string(again))
}
