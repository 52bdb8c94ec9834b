package main

import (
	"os"

	"github.com/AlexZinkM/impact-vault/cmd"
)

// @title        Impact Vault API
// @version      1.0
// @description  Wallet, vault and chat endpoints behind the Impact Vault page.
// @BasePath     /
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
