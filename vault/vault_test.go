package vault

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math"
	"math/big"
	"math/rand/v2"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/AlexZinkM/impact-vault/internal/config"
	"github.com/AlexZinkM/impact-vault/internal/crypto"
	"github.com/AlexZinkM/impact-vault/internal/model"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

type fakeContract struct {
	mu       sync.Mutex
	calls    []string
	amount   *big.Int
	receiver string
	signer   string
	closed   bool
	err      error
}

func (f *fakeContract) record(call string, key *ecdsa.PrivateKey) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	if key != nil {
		f.signer = ethcrypto.PubkeyToAddress(key.PublicKey).Hex()
	}
}

func (f *fakeContract) receipt() (*model.TxReceipt, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.TxReceipt{TxHash: "0xfeed", BlockNumber: 42, GasUsed: 21000}, nil
}

func (f *fakeContract) ChainID() *big.Int { return big.NewInt(11155111) }

func (f *fakeContract) Deposit(_ context.Context, key *ecdsa.PrivateKey, amount *big.Int, receiver string) (*model.TxReceipt, error) {
	f.record("deposit", key)
	f.amount, f.receiver = amount, receiver
	return f.receipt()
}

func (f *fakeContract) SimulateYield(_ context.Context, key *ecdsa.PrivateKey, amount *big.Int) (*model.TxReceipt, error) {
	f.record("simulateYield", key)
	f.amount = amount
	return f.receipt()
}

func (f *fakeContract) Harvest(_ context.Context, key *ecdsa.PrivateKey) (*model.TxReceipt, error) {
	f.record("harvest", key)
	return f.receipt()
}

func (f *fakeContract) DonationWallet(context.Context) (string, error) {
	f.record("donationWallet", nil)
	return "0x000000000000000000000000000000000000dEaD", nil
}

func (f *fakeContract) BalanceAt(context.Context, string) (*big.Int, error) {
	f.record("balanceAt", nil)
	return big.NewInt(1_500_000_000_000_000_000), nil
}

func (f *fakeContract) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeContract) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fixedRate string

func (r fixedRate) GetETHToUSDRate(context.Context) (string, error) { return string(r), nil }

type testEnv struct {
	session *Session
	fake    *fakeContract
	dials   int
	address string
	path    string
}

func newTestEnv(t *testing.T, contract string, withWallet bool) *testEnv {
	t.Helper()
	env := &testEnv{
		fake: &fakeContract{},
		path: filepath.Join(t.TempDir(), "wallet"+crypto.KeyFileExt),
	}
	if withWallet {
		addr, err := GenerateWallet(env.path, []byte("pw"), crypto.LightScryptN)
		require.NoError(t, err)
		env.address = addr
	}
	env.session = NewSession(Options{
		WalletFilePath:  env.path,
		RPCURL:          "http://rpc.invalid",
		ContractAddress: contract,
		Password:        func() ([]byte, error) { return []byte("pw"), nil },
		Dial: func(context.Context, string, string) (Contract, error) {
			env.dials++
			return env.fake, nil
		},
		Rates:     fixedRate("2000.00"),
		Dashboard: NewDashboard(rand.NewPCG(1, 2)),
	})
	return env
}

func TestConnectWithoutWallet(t *testing.T) {
	env := newTestEnv(t, "", false)

	_, err := env.session.Connect(t.Context())
	assert.ErrorIs(t, err, ErrNoWallet)

	_, connected := env.session.Connected()
	assert.False(t, connected)
}

func TestConnectMock(t *testing.T) {
	env := newTestEnv(t, "", true)

	resp, err := env.session.Connect(t.Context())
	require.NoError(t, err)
	assert.True(t, resp.Mock)
	assert.Equal(t, "✅ Mock Connected", resp.Label)
	assert.Equal(t, env.address, resp.Address)
	assert.NotEmpty(t, resp.QR)
	assert.Zero(t, env.dials)

	addr, connected := env.session.Connected()
	assert.True(t, connected)
	assert.Equal(t, env.address, addr)
}

func TestConnectReal(t *testing.T) {
	env := newTestEnv(t, testContract, true)
	require.False(t, env.session.Mock())

	resp, err := env.session.Connect(t.Context())
	require.NoError(t, err)
	assert.False(t, resp.Mock)
	assert.Equal(t, "✅ Connected", resp.Label)
	assert.Equal(t, "11155111", resp.ChainID)
	assert.Equal(t, 1, env.dials)
}

func TestConnectRealWrongPassword(t *testing.T) {
	env := newTestEnv(t, testContract, true)
	env.session.opts.Password = func() ([]byte, error) { return []byte("nope"), nil }

	_, err := env.session.Connect(t.Context())
	assert.ErrorIs(t, err, ErrConnectFailed)
	assert.ErrorIs(t, err, crypto.ErrInvalidPassword)
	assert.Zero(t, env.dials)
}

func TestConnectRealDialFailure(t *testing.T) {
	env := newTestEnv(t, testContract, true)
	env.session.opts.Dial = func(context.Context, string, string) (Contract, error) {
		return nil, errors.New("connection refused")
	}

	_, err := env.session.Connect(t.Context())
	assert.ErrorIs(t, err, ErrConnectFailed)
}

func TestEmptyAmountMakesNoCall(t *testing.T) {
	for _, mock := range []bool{true, false} {
		contract := testContract
		if mock {
			contract = ""
		}
		env := newTestEnv(t, contract, true)
		_, err := env.session.Connect(t.Context())
		require.NoError(t, err)

		_, err = env.session.Deposit(t.Context(), "  ")
		require.True(t, IsInputError(err))
		assert.EqualError(t, err, "Enter an amount")

		_, err = env.session.SimulateYield(t.Context(), "")
		require.True(t, IsInputError(err))
		assert.EqualError(t, err, "Enter yield amount")

		assert.Empty(t, env.fake.Calls())
	}
}

func TestMockActions(t *testing.T) {
	env := newTestEnv(t, "", false)
	ctx := t.Context()

	resp, err := env.session.Deposit(ctx, "1.5")
	require.NoError(t, err)
	assert.True(t, resp.Mock)
	assert.Equal(t, "💰 Mock deposit of 1.5 ETH successful", resp.Status)

	resp, err = env.session.SimulateYield(ctx, "0.2")
	require.NoError(t, err)
	assert.Equal(t, "⚡ Simulated 0.2 ETH yield", resp.Status)

	resp, err = env.session.Harvest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "💚 Mock harvest complete — Donation simulated!", resp.Status)

	assert.Empty(t, env.fake.Calls())
}

func TestMockDelayHonoursContext(t *testing.T) {
	env := newTestEnv(t, "", false)
	env.session.opts.MockTxDelay = time.Hour

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()

	_, err := env.session.Harvest(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRealActionRequiresConnection(t *testing.T) {
	env := newTestEnv(t, testContract, true)

	_, err := env.session.Deposit(t.Context(), "1")
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = env.session.Harvest(t.Context())
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Empty(t, env.fake.Calls())
}

func TestRealDeposit(t *testing.T) {
	env := newTestEnv(t, testContract, true)
	_, err := env.session.Connect(t.Context())
	require.NoError(t, err)

	resp, err := env.session.Deposit(t.Context(), "0.25")
	require.NoError(t, err)
	assert.Equal(t, "💰 Deposit successful", resp.Status)
	assert.Equal(t, "0xfeed", resp.TxHash)
	assert.Equal(t, uint64(42), resp.BlockNumber)
	assert.False(t, resp.Mock)

	assert.Equal(t, []string{"deposit"}, env.fake.Calls())
	assert.Equal(t, "250000000000000000", env.fake.amount.String())
	assert.Equal(t, env.address, env.fake.receiver)
	assert.Equal(t, env.address, env.fake.signer)
}

func TestRealYieldAndHarvest(t *testing.T) {
	env := newTestEnv(t, testContract, true)
	_, err := env.session.Connect(t.Context())
	require.NoError(t, err)

	resp, err := env.session.SimulateYield(t.Context(), "2")
	require.NoError(t, err)
	assert.Equal(t, "⚡ Yield simulated", resp.Status)
	assert.Equal(t, "2000000000000000000", env.fake.amount.String())

	resp, err = env.session.Harvest(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "💚 Harvest complete — Donation sent!", resp.Status)

	assert.Equal(t, []string{"simulateYield", "harvest"}, env.fake.Calls())
}

func TestRealInvalidAmount(t *testing.T) {
	env := newTestEnv(t, testContract, true)
	_, err := env.session.Connect(t.Context())
	require.NoError(t, err)

	_, err = env.session.Deposit(t.Context(), "lots")
	assert.True(t, IsInputError(err))
	assert.Empty(t, env.fake.Calls())
}

func TestRealTransactionFailure(t *testing.T) {
	env := newTestEnv(t, testContract, true)
	env.fake.err = errors.New("execution reverted")
	_, err := env.session.Connect(t.Context())
	require.NoError(t, err)

	_, err = env.session.Harvest(t.Context())
	assert.EqualError(t, err, "execution reverted")
}

func TestToggleMockWithoutContract(t *testing.T) {
	env := newTestEnv(t, "", false)
	require.True(t, env.session.Mock())

	mock, err := env.session.ToggleMock()
	assert.ErrorIs(t, err, ErrContractNotConfigured)
	assert.True(t, mock)
	assert.True(t, env.session.Mock())
}

func TestToggleMockLabels(t *testing.T) {
	env := newTestEnv(t, testContract, true)

	mock, err := env.session.ToggleMock()
	require.NoError(t, err)
	assert.True(t, mock)
	assert.Equal(t, "🧪 Mock Mode: ON", MockLabel(mock))

	mock, err = env.session.ToggleMock()
	require.NoError(t, err)
	assert.False(t, mock)
	assert.Equal(t, "⛓️ Mock Mode: OFF", MockLabel(mock))
}

func TestToggleDropsBindingAndRedials(t *testing.T) {
	env := newTestEnv(t, testContract, true)
	_, err := env.session.Connect(t.Context())
	require.NoError(t, err)
	require.Equal(t, 1, env.dials)

	_, err = env.session.ToggleMock()
	require.NoError(t, err)
	assert.True(t, env.fake.closed)

	_, err = env.session.ToggleMock()
	require.NoError(t, err)

	_, err = env.session.Harvest(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, env.dials)
}

func TestDashboardRanges(t *testing.T) {
	d := NewDashboard(nil)
	for i := 0; i < 1000; i++ {
		v := d.Refresh()

		bal, err := strconv.ParseFloat(v.UserBalance, 64)
		require.NoError(t, err)
		donated, err := strconv.ParseFloat(v.TotalDonated, 64)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, bal, 0.0)
		assert.Less(t, bal, 100.0)
		assert.GreaterOrEqual(t, donated, 0.0)
		assert.Less(t, donated, 50.0)
		assert.Equal(t, bal, v.BalanceBarPercent)
		assert.Equal(t, donated, v.DonationBarPercent)

		assert.GreaterOrEqual(t, v.Impact.TreesPlanted, 0)
		assert.Less(t, v.Impact.TreesPlanted, 500)
		assert.Less(t, v.Impact.MealsFunded, 1000)
		assert.Less(t, v.Impact.CO2OffsetKg, 2000)
	}
}

// topSource always yields the largest value a source can produce
type topSource struct{}

func (topSource) Uint64() uint64 { return math.MaxUint64 }

func TestDashboardStaysBelowMax(t *testing.T) {
	v := NewDashboard(topSource{}).Refresh()

	assert.Equal(t, "99.99", v.UserBalance)
	assert.Equal(t, "49.99", v.TotalDonated)
	assert.Less(t, v.BalanceBarPercent, 100.0)
	assert.Less(t, v.DonationBarPercent, 50.0)
	assert.Equal(t, 499, v.Impact.TreesPlanted)
}

func TestDashboardSeeded(t *testing.T) {
	a := NewDashboard(rand.NewPCG(7, 7)).Refresh()
	b := NewDashboard(rand.NewPCG(7, 7)).Refresh()
	assert.Equal(t, a, b)
}

func TestBalance(t *testing.T) {
	env := newTestEnv(t, testContract, true)
	_, err := env.session.Connect(t.Context())
	require.NoError(t, err)

	resp, err := env.session.Balance(t.Context())
	require.NoError(t, err)
	assert.Equal(t, env.address, resp.Address)
	assert.Equal(t, "1.500000000000000000", resp.ETH)
	assert.Equal(t, "2000.00", resp.Rate)
	assert.Equal(t, "3000.00", resp.USD)
}

func TestChainReadsInMockMode(t *testing.T) {
	env := newTestEnv(t, "", true)
	_, err := env.session.Connect(t.Context())
	require.NoError(t, err)

	_, err = env.session.Balance(t.Context())
	assert.ErrorIs(t, err, ErrWrongMode)
	_, err = env.session.DonationWallet(t.Context())
	assert.ErrorIs(t, err, ErrWrongMode)
}

func TestDonationWallet(t *testing.T) {
	env := newTestEnv(t, testContract, true)
	_, err := env.session.Connect(t.Context())
	require.NoError(t, err)

	resp, err := env.session.DonationWallet(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "0x000000000000000000000000000000000000dEaD", resp.DonationWallet)
}

func TestGenerateWallet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w"+crypto.KeyFileExt)

	addr, err := GenerateWallet(path, []byte("pw"), crypto.LightScryptN)
	require.NoError(t, err)

	stored, err := crypto.ReadWalletAddress(path)
	require.NoError(t, err)
	assert.Equal(t, addr, stored)

	_, err = GenerateWallet(path, []byte("pw"), crypto.LightScryptN)
	assert.True(t, IsFileExistsError(err))

	_, err = GenerateWallet(filepath.Join(t.TempDir(), "w.txt"), []byte("pw"), crypto.LightScryptN)
	assert.Error(t, err)
}

func TestRekeyWallet(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old"+crypto.KeyFileExt)
	dst := filepath.Join(dir, "new"+crypto.KeyFileExt)

	addr, err := GenerateWallet(src, []byte("old"), crypto.LightScryptN)
	require.NoError(t, err)

	got, err := RekeyWallet(src, dst, []byte("old"), []byte("new"), crypto.LightScryptN)
	require.NoError(t, err)
	assert.Equal(t, addr, got)

	_, _, err = crypto.DecryptWallet(dst, []byte("old"))
	assert.ErrorIs(t, err, crypto.ErrInvalidPassword)

	keyFile, walletData, err := crypto.DecryptWallet(dst, []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, addr, keyFile.Address)
	key, err := ethcrypto.ToECDSA(walletData.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, addr, ethcrypto.PubkeyToAddress(key.PublicKey).Hex())

	// source still opens with the old password
	_, _, err = crypto.DecryptWallet(src, []byte("old"))
	assert.NoError(t, err)
}

func TestRekeyWalletErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "old"+crypto.KeyFileExt)

	_, err := RekeyWallet(src, filepath.Join(dir, "new"+crypto.KeyFileExt), []byte("x"), []byte("y"), crypto.LightScryptN)
	assert.ErrorIs(t, err, ErrNoWallet)

	_, err = GenerateWallet(src, []byte("old"), crypto.LightScryptN)
	require.NoError(t, err)

	_, err = RekeyWallet(src, filepath.Join(dir, "new"+crypto.KeyFileExt), []byte("wrong"), []byte("y"), crypto.LightScryptN)
	assert.ErrorIs(t, err, crypto.ErrInvalidPassword)

	_, err = RekeyWallet(src, src, []byte("old"), []byte("y"), crypto.LightScryptN)
	assert.True(t, IsFileExistsError(err))
}

func TestNewSessionFromConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WALLET_FILE_PATH", "mine"+crypto.KeyFileExt)
	t.Setenv("MOCK_TX_DELAY", "0s")
	require.NoError(t, config.Init())

	s := NewSessionFromConfig(nil)
	assert.True(t, s.Mock())
	assert.Equal(t, "mine"+crypto.KeyFileExt, s.opts.WalletFilePath)
	assert.Equal(t, config.GetEthRPCURL(), s.opts.RPCURL)
	assert.Equal(t, crypto.StandardScryptN, s.opts.KeyScryptN)

	t.Setenv("VAULT_CONTRACT_ADDRESS", testContract)
	require.NoError(t, config.Init())
	s = NewSessionFromConfig(nil)
	assert.False(t, s.Mock())
	assert.Equal(t, testContract, s.opts.ContractAddress)
}

func TestSessionGenerateWallet(t *testing.T) {
	env := newTestEnv(t, config.ZeroAddress, false)
	env.session.opts.KeyScryptN = crypto.LightScryptN

	addr, err := env.session.GenerateWallet()
	require.NoError(t, err)

	resp, err := env.session.Connect(t.Context())
	require.NoError(t, err)
	assert.Equal(t, addr, resp.Address)

	_, err = env.session.GenerateWallet()
	assert.True(t, IsFileExistsError(err))
}

func TestSessionGenerateWalletWithoutPassword(t *testing.T) {
	env := newTestEnv(t, config.ZeroAddress, false)
	env.session.opts.Password = func() ([]byte, error) { return nil, errors.New("password not set") }

	_, err := env.session.GenerateWallet()
	assert.ErrorIs(t, err, ErrNoPassword)

	env.session.opts.Password = func() ([]byte, error) { return []byte{}, nil }
	_, err = env.session.GenerateWallet()
	assert.ErrorIs(t, err, ErrNoPassword)
}
