package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlexZinkM/impact-vault/internal/crypto"
	"github.com/AlexZinkM/impact-vault/internal/model"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// RekeyWallet decrypts srcPath with oldPassword and writes the same key to
// dstPath under newPassword and scryptN. The source file is left untouched.
// Returns the wallet address.
func RekeyWallet(srcPath, dstPath string, oldPassword, newPassword []byte, scryptN int) (string, error) {
	if filepath.Ext(dstPath) != crypto.KeyFileExt {
		return "", fmt.Errorf("file must have %s extension", crypto.KeyFileExt)
	}

	keyFile, walletData, err := crypto.DecryptWallet(srcPath, oldPassword)
	if err != nil {
		if errors.Is(err, crypto.ErrNoKeyFile) {
			return "", ErrNoWallet
		}
		return "", fmt.Errorf("failed to decrypt wallet: %w", err)
	}
	defer clear(walletData.PrivateKey)

	key, err := ethcrypto.ToECDSA(walletData.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("invalid private key: %w", err)
	}
	defer zeroKey(key)

	address := ethcrypto.PubkeyToAddress(key.PublicKey).Hex()
	if !strings.EqualFold(address, keyFile.Address) {
		return "", fmt.Errorf("key file address %s does not match key", keyFile.Address)
	}

	qrCode := keyFile.QR
	if qrCode == "" {
		if qrCode, err = generateQRCode(address); err != nil {
			return "", fmt.Errorf("failed to generate QR code: %w", err)
		}
	}

	rekeyed := &model.WalletData{
		PrivateKey: walletData.PrivateKey,
		CreatedAt:  walletData.CreatedAt,
	}
	if err := crypto.EncryptWalletN(dstPath, networkEthereum, address, qrCode, rekeyed, newPassword, scryptN); err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", &FileExistsError{Message: "file is not empty"}
		}
		return "", fmt.Errorf("failed to encrypt wallet: %w", err)
	}
	return address, nil
}
