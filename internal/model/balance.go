package model

// BalanceResponse represents response for GET /api/wallet/balance
type BalanceResponse struct {
	Address string `json:"address"`
	ETH     string `json:"eth"`
	Rate    string `json:"rate"`
	USD     string `json:"eth_amount_in_usd"`
}

// DonationWalletResponse represents response for GET /api/vault/donation-wallet
type DonationWalletResponse struct {
	DonationWallet string `json:"donationWallet"`
}
