package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AlexZinkM/impact-vault/internal/crypto"
	"github.com/AlexZinkM/impact-vault/internal/model"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

const (
	networkEthereum = "ethereum"
)

// GenerateWallet generates a new secp256k1 wallet and saves it to a .vaultkey file
// encrypted with the given scrypt N (crypto.StandardScryptN for real keys).
// Returns the generated address on success.
// password must be []byte for security (caller should zero it after use)
func GenerateWallet(filePath string, password []byte, scryptN int) (address string, err error) {
	if filepath.Ext(filePath) != crypto.KeyFileExt {
		return "", fmt.Errorf("file must have %s extension", crypto.KeyFileExt)
	}

	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return "", &FileExistsError{Message: "file is not empty"}
	}

	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	defer zeroKey(key)

	address = ethcrypto.PubkeyToAddress(key.PublicKey).Hex()

	qrCode, err := generateQRCode(address)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	walletData := &model.WalletData{
		PrivateKey: ethcrypto.FromECDSA(key),
		CreatedAt:  time.Now().Format(time.RFC3339),
	}
	defer clear(walletData.PrivateKey)

	if err := crypto.EncryptWalletN(filePath, networkEthereum, address, qrCode, walletData, password, scryptN); err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", &FileExistsError{Message: "file is not empty"}
		}
		return "", fmt.Errorf("failed to encrypt wallet: %w", err)
	}

	return address, nil
}

// GenerateWallet creates the session's wallet key file under the server-held
// password. The file must not exist yet.
func (s *Session) GenerateWallet() (string, error) {
	password, err := s.password()
	if err != nil {
		return "", err
	}
	defer clear(password) // Always clear password from memory

	address, err := GenerateWallet(s.opts.WalletFilePath, password, s.opts.KeyScryptN)
	if err != nil {
		return "", err
	}
	s.log.Info("wallet generated", zap.String("address", address))
	return address, nil
}
