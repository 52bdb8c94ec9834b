package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/AlexZinkM/impact-vault/internal/config"
	"github.com/AlexZinkM/impact-vault/internal/crypto"
	"github.com/AlexZinkM/impact-vault/vault"

	"github.com/spf13/cobra"
)

var keygenOut string

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an encrypted wallet key file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(); err != nil {
			return err
		}
		path := keygenOut
		if path == "" {
			path = config.GetWalletFilePath()
		}

		password, err := readNewPassword()
		if err != nil {
			return err
		}
		defer clear(password)

		address, err := vault.GenerateWallet(path, password, crypto.StandardScryptN)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wallet %s saved to %s\n", address, path)
		return nil
	},
}

// readNewPassword asks twice and returns the password when both entries match.
func readNewPassword() ([]byte, error) {
	first, err := config.ReadPassword("New wallet password: ")
	if err != nil {
		return nil, err
	}
	second, err := config.ReadPassword("Repeat password: ")
	if err != nil {
		clear(first)
		return nil, err
	}
	defer clear(second)

	if !bytes.Equal(first, second) {
		clear(first)
		return nil, errors.New("passwords do not match")
	}
	return first, nil
}

func init() {
	keygenCmd.Flags().StringVarP(&keygenOut, "out", "o", "", "key file path (default WALLET_FILE_PATH)")
	rootCmd.AddCommand(keygenCmd)
}
