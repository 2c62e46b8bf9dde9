package model

import "time"

// KeyRecord is the on-disk record of the account wallet (.wgk file).
// Only sealed key material is stored; the private key never touches disk in clear.
type KeyRecord struct {
	Address   string            `json:"address"`
	PublicKey string            `json:"publicKey"`
	QR        string            `json:"QR,omitempty"`
	Key       *EncryptedKeyBlob `json:"key"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Keypair is a freshly generated account keypair.
type Keypair struct {
	PublicKey  []byte
	PrivateKey []byte // 64 bytes, ed25519 seed || public key
}

// KDFParams describes how the symmetric key of a blob was derived.
type KDFParams struct {
	Name   string `json:"name"`
	Salt   []byte `json:"salt"`
	N      int    `json:"n"`
	R      int    `json:"r"`
	P      int    `json:"p"`
	KeyLen int    `json:"keyLen"`
}

// EncryptedKeyBlob is a private key sealed under a user secret.
type EncryptedKeyBlob struct {
	CipherText []byte    `json:"cipherText"`
	Nonce      []byte    `json:"nonce"`
	KDF        KDFParams `json:"kdf"`
}

// WalletResponse represents response for GET /wallet
type WalletResponse struct {
	Address   string    `json:"address"`
	PublicKey string    `json:"publicKey"`
	QR        string    `json:"QR,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
