package cmd

import (
	"fmt"

	"github.com/AlexZinkM/impact-vault/internal/config"
	"github.com/AlexZinkM/impact-vault/internal/crypto"
	"github.com/AlexZinkM/impact-vault/vault"

	"github.com/spf13/cobra"
)

var rekeyCmd = &cobra.Command{
	Use:   "rekey <new-file>",
	Short: "Re-encrypt the wallet key file under a new password",
	Long: `Decrypts WALLET_FILE_PATH with the current password and writes the same
key to <new-file> under a new password with standard scrypt parameters.
The original file is not modified.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(); err != nil {
			return err
		}

		oldPassword, err := config.ReadPassword("Current wallet password: ")
		if err != nil {
			return err
		}
		defer clear(oldPassword)

		newPassword, err := readNewPassword()
		if err != nil {
			return err
		}
		defer clear(newPassword)

		address, err := vault.RekeyWallet(config.GetWalletFilePath(), args[0], oldPassword, newPassword, crypto.StandardScryptN)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wallet %s re-encrypted to %s\n", address, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rekeyCmd)
}
