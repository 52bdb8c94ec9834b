package model

// KeyFile represents .vaultkey file structure
type KeyFile struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	ScryptN    int    `json:"scryptN,omitempty"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletData represents decrypted wallet data
type WalletData struct {
	PrivateKey []byte `json:"privateKey"` // 32-byte secp256k1 scalar (stored as base64 in JSON)
	CreatedAt  string `json:"createdAt"`
}

// ConnectResponse represents response for POST /api/wallet/connect
type ConnectResponse struct {
	Connected    bool      `json:"connected"`
	Mock         bool      `json:"mock"`
	Label        string    `json:"label"`
	Address      string    `json:"address"`
	ShortAddress string    `json:"shortAddress"`
	ChainID      string    `json:"chainId,omitempty"`
	QR           string    `json:"QR,omitempty"`
	Dashboard    Dashboard `json:"dashboard"`
}
