package model

// ActionRequest represents request for POST /api/vault/deposit and /api/vault/yield
type ActionRequest struct {
	Amount string `json:"amount"`
}

// ActionResponse represents response for the vault actions.
// Status is the toast message shown by the page.
type ActionResponse struct {
	Status      string    `json:"status"`
	Mock        bool      `json:"mock"`
	TxHash      string    `json:"txHash,omitempty"`
	BlockNumber uint64    `json:"blockNumber,omitempty"`
	Dashboard   Dashboard `json:"dashboard"`
}

// TxReceipt is the part of a mined transaction the vault reports back
type TxReceipt struct {
	TxHash      string
	BlockNumber uint64
	GasUsed     uint64
}

// Dashboard holds the cosmetic display values of the progress dashboard
type Dashboard struct {
	UserBalance        string        `json:"userBalance"`
	TotalDonated       string        `json:"totalDonated"`
	BalanceBarPercent  float64       `json:"balanceBar"`
	DonationBarPercent float64       `json:"donationBar"`
	Impact             ImpactMetrics `json:"impact"`
}

// ImpactMetrics are the counters shown under the progress bars
type ImpactMetrics struct {
	TreesPlanted int `json:"treesPlanted"`
	MealsFunded  int `json:"mealsFunded"`
	CO2OffsetKg  int `json:"co2OffsetKg"`
}

// ModeResponse represents response for GET /api/mode and the toggles
type ModeResponse struct {
	Mock      bool   `json:"mock"`
	MockLabel string `json:"mockLabel"`
	AI        bool   `json:"ai"`
	AILabel   string `json:"aiLabel"`
}
