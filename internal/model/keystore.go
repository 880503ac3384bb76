package model

// Keystore represents an encrypted wallet blob returned by POST /export-wallet.
// The gateway never stores it; the caller owns the file.
type Keystore struct {
	Network    string `json:"network"`
	PublicKey  string `json:"publicKey"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// ExportWalletRequest represents request for POST /export-wallet
type ExportWalletRequest struct {
	PrivateKey string `json:"privateKey"`
	Password   string `json:"password"`
}

// Validate validates ExportWalletRequest required fields.
func (r *ExportWalletRequest) Validate() error {
	var missing []string
	if r.PrivateKey == "" {
		missing = append(missing, "privateKey")
	}
	if r.Password == "" {
		missing = append(missing, "password")
	}
	return requiredError(missing)
}

// ImportWalletRequest represents request for POST /import-wallet
type ImportWalletRequest struct {
	Keystore *Keystore `json:"keystore"`
	Password string    `json:"password"`
}

// Validate validates ImportWalletRequest required fields.
func (r *ImportWalletRequest) Validate() error {
	var missing []string
	if r.Keystore == nil {
		missing = append(missing, "keystore")
	}
	if r.Password == "" {
		missing = append(missing, "password")
	}
	return requiredError(missing)
}
