package model

import "time"

const (
	// BackupType tags a JSON document as a walletguard backup.
	BackupType = "walletguard-backup"
	// BackupVersion is the only backup layout this build reads and writes.
	BackupVersion = 1
	// BackupWarning is embedded in every export.
	BackupWarning = "This file contains your encrypted private key. Keep it offline and never share it or its export password."
)

// WalletBackupFile is the portable, self-verifying export of a sealed key.
// ExportPassword holds an argon2id PHC hash, never the password.
type WalletBackupFile struct {
	Version             int               `json:"version"`
	Type                string            `json:"type"`
	WalletAddress       string            `json:"walletAddress"`
	PublicKey           string            `json:"publicKey"`
	EncryptedPrivateKey *EncryptedKeyBlob `json:"encryptedPrivateKey"`
	ExportPassword      string            `json:"exportPassword"`
	CreatedAt           time.Time         `json:"createdAt"`
	Warning             string            `json:"warning,omitempty"`
}

// ImportedWallet is what a verified backup yields for the caller to persist.
type ImportedWallet struct {
	WalletAddress string
	PublicKey     string
	Key           *EncryptedKeyBlob
}

// ExportRequest represents request for POST /wallet/export
type ExportRequest struct {
	ExportPassword Secret `json:"exportPassword"`
}

// ImportRequest represents request for POST /wallet/import
// CurrentPassword must open the existing wallet when Overwrite replaces it.
type ImportRequest struct {
	File            []byte `json:"file" swaggertype:"string" format:"base64"`
	ExportPassword  Secret `json:"exportPassword"`
	CurrentPassword Secret `json:"currentPassword,omitempty"`
	Overwrite       bool   `json:"overwrite"`
}

// RekeyRequest represents request for POST /wallet/rekey
type RekeyRequest struct {
	CurrentPassword Secret `json:"currentPassword"`
	NewPassword     Secret `json:"newPassword"`
}
