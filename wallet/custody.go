package wallet

import (
	"fmt"
	"time"

	"github.com/AlexZinkM/walletguard/internal/crypto"
	"github.com/AlexZinkM/walletguard/internal/logger"
	"github.com/AlexZinkM/walletguard/internal/model"
	"github.com/AlexZinkM/walletguard/internal/paycode"
)

// Generate creates the account keypair and writes the sealed record.
// Returns the generated public address on success.
// password must be []byte for security (caller should zero it after use)
func (s *Service) Generate(password []byte) (address string, err error) {
	if err := s.checkPassword(password); err != nil {
		return "", err
	}

	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return "", err
	}
	defer clear(kp.PrivateKey)

	address, err = crypto.Address(kp.PublicKey)
	if err != nil {
		return "", err
	}

	qr, err := paycode.QRCode(address)
	if err != nil {
		return "", err
	}

	blob, err := s.vault.Encrypt(kp.PrivateKey, password)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt key: %w", err)
	}

	rec := &model.KeyRecord{
		Address:   address,
		PublicKey: crypto.EncodePublicKey(kp.PublicKey),
		QR:        qr,
		Key:       blob,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(rec, false); err != nil {
		return "", err
	}

	s.log.Info("wallet generated", logger.Address(address))
	return address, nil
}

// Wallet returns the public part of the record without opening the key.
func (s *Service) Wallet() (*model.WalletResponse, error) {
	rec, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return &model.WalletResponse{
		Address:   rec.Address,
		PublicKey: rec.PublicKey,
		QR:        rec.QR,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// WithPrivateKey opens the key for the duration of fn and wipes it afterwards.
func (s *Service) WithPrivateKey(password []byte, fn func(privateKey []byte) error) error {
	rec, err := s.store.Load()
	if err != nil {
		return err
	}
	pub, err := crypto.DecodePublicKey(rec.PublicKey)
	if err != nil {
		return err
	}
	return s.vault.WithPrivateKey(rec.Key, password, func(privateKey []byte) error {
		if !crypto.PrivateKeyMatches(privateKey, pub) {
			return fmt.Errorf("private key does not match address: %w", model.ErrInvalidFormat)
		}
		return fn(privateKey)
	})
}

// Export produces a backup protected by exportPassword. The sealed key is
// copied as is; the account password is not needed.
func (s *Service) Export(exportPassword []byte) (*model.WalletBackupFile, error) {
	if err := s.checkPassword(exportPassword); err != nil {
		return nil, err
	}
	rec, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	file, err := s.vault.ExportBackup(rec.Address, rec.PublicKey, rec.Key, exportPassword)
	if err != nil {
		return nil, err
	}
	s.log.Info("wallet exported", logger.Address(rec.Address))
	return file, nil
}

// Import verifies a backup completely and only then writes it. An existing
// record is replaced only when overwrite is set and currentPassword opens it.
func (s *Service) Import(data, exportPassword, currentPassword []byte, overwrite bool) (string, error) {
	imported, err := s.vault.ImportBackup(data, exportPassword)
	if err != nil {
		return "", err
	}
	if overwrite {
		if err := s.checkReplace(currentPassword); err != nil {
			return "", err
		}
	}

	qr, err := paycode.QRCode(imported.WalletAddress)
	if err != nil {
		return "", err
	}
	rec := &model.KeyRecord{
		Address:   imported.WalletAddress,
		PublicKey: imported.PublicKey,
		QR:        qr,
		Key:       imported.Key,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(rec, overwrite); err != nil {
		return "", err
	}

	s.log.Info("wallet imported", logger.Address(rec.Address))
	return rec.Address, nil
}

// checkReplace proves the caller may replace the current record. A missing
// record needs no proof.
func (s *Service) checkReplace(currentPassword []byte) error {
	exists, err := s.store.Exists()
	if err != nil || !exists {
		return err
	}
	if len(currentPassword) == 0 {
		return fmt.Errorf("current account password required to replace the wallet: %w", model.ErrWrongSecret)
	}
	if err := s.WithPrivateKey(currentPassword, func([]byte) error { return nil }); err != nil {
		return fmt.Errorf("failed to open current wallet: %w", err)
	}
	return nil
}

// Rekey re-seals the key under a new account password.
func (s *Service) Rekey(oldPassword, newPassword []byte) error {
	if err := s.checkPassword(newPassword); err != nil {
		return err
	}
	rec, err := s.store.Load()
	if err != nil {
		return err
	}
	blob, err := s.vault.Rekey(rec.Key, oldPassword, newPassword)
	if err != nil {
		return err
	}
	rec.Key = blob
	if err := s.store.Save(rec, true); err != nil {
		return err
	}
	s.log.Info("wallet password changed", logger.Address(rec.Address))
	return nil
}
