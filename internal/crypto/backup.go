package crypto

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AlexZinkM/walletguard/internal/common"
	"github.com/AlexZinkM/walletguard/internal/model"
)

// ExportBackup binds an already sealed key to a self-verifying backup file.
// The blob is carried as is; only a hash of exportPassword is stored.
// exportPassword must be []byte for security (caller should zero it after use)
func (v *Vault) ExportBackup(walletAddress, publicKey string, blob *model.EncryptedKeyBlob, exportPassword []byte) (*model.WalletBackupFile, error) {
	if len(exportPassword) == 0 {
		return nil, errors.New("export password cannot be empty")
	}
	if !MatchesAddress(publicKey, walletAddress) {
		return nil, errors.New("public key does not match wallet address")
	}
	if err := ValidateBlob(blob); err != nil {
		return nil, err
	}

	passwordHash, err := HashPassword(v.export, exportPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash export password: %w", err)
	}

	return &model.WalletBackupFile{
		Version:             model.BackupVersion,
		Type:                model.BackupType,
		WalletAddress:       walletAddress,
		PublicKey:           publicKey,
		EncryptedPrivateKey: blob,
		ExportPassword:      passwordHash,
		CreatedAt:           time.Now().UTC(),
		Warning:             model.BackupWarning,
	}, nil
}

// ImportBackup checks the type tag first, then the remaining structure, then the
// export password, and only then hands the sealed key back. It never re-encrypts,
// so the original account password is not needed.
func (v *Vault) ImportBackup(data []byte, exportPassword []byte) (*model.ImportedWallet, error) {
	data = common.TrimBOM(data)

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("backup is not a JSON object: %w", model.ErrInvalidFormat)
	}
	if head.Type != model.BackupType {
		return nil, fmt.Errorf("unknown backup type %q: %w", head.Type, model.ErrInvalidFormat)
	}

	var file model.WalletBackupFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal backup: %w", model.ErrInvalidFormat)
	}
	if err := validateBackup(&file); err != nil {
		return nil, err
	}

	if !VerifyPassword(exportPassword, file.ExportPassword) {
		return nil, model.ErrWrongExportPassword
	}

	return &model.ImportedWallet{
		WalletAddress: file.WalletAddress,
		PublicKey:     file.PublicKey,
		Key:           file.EncryptedPrivateKey,
	}, nil
}

func validateBackup(f *model.WalletBackupFile) error {
	switch {
	case f.Version == 0:
		return fmt.Errorf("missing version: %w", model.ErrInvalidFormat)
	case f.Version != model.BackupVersion:
		return fmt.Errorf("unsupported backup version %d: %w", f.Version, model.ErrInvalidFormat)
	case f.WalletAddress == "":
		return fmt.Errorf("missing walletAddress: %w", model.ErrInvalidFormat)
	case f.PublicKey == "":
		return fmt.Errorf("missing publicKey: %w", model.ErrInvalidFormat)
	case f.ExportPassword == "":
		return fmt.Errorf("missing exportPassword: %w", model.ErrInvalidFormat)
	case f.CreatedAt.IsZero():
		return fmt.Errorf("missing createdAt: %w", model.ErrInvalidFormat)
	}
	if !MatchesAddress(f.PublicKey, f.WalletAddress) {
		return fmt.Errorf("public key does not match wallet address: %w", model.ErrInvalidFormat)
	}
	if !ValidPasswordHash(f.ExportPassword) {
		return fmt.Errorf("malformed export password hash: %w", model.ErrInvalidFormat)
	}
	return ValidateBlob(f.EncryptedPrivateKey)
}
