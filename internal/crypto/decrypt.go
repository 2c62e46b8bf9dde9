package crypto

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/walletguard/internal/model"
)

// Upper bounds on KDF cost accepted from a blob, so a crafted file cannot
// make us allocate gigabytes.
const (
	maxScryptN = 1 << 20
	maxScryptR = 32
	maxScryptP = 16
)

// Decrypt opens a sealed key. Any authentication failure is ErrWrongSecret;
// partial plaintext is never returned.
// secret must be []byte for security (caller should zero it after use and
// clear the returned key as soon as possible)
func (v *Vault) Decrypt(blob *model.EncryptedKeyBlob, secret []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, errors.New("secret cannot be empty")
	}
	if err := ValidateBlob(blob); err != nil {
		return nil, err
	}

	aesGCM, err := newGCM(secret, blob.KDF)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, blob.Nonce, blob.CipherText, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open key: %w", model.ErrWrongSecret)
	}
	return plaintext, nil
}

// WithPrivateKey opens the key, hands it to fn and wipes it when fn returns.
// fn must not retain the slice.
func (v *Vault) WithPrivateKey(blob *model.EncryptedKeyBlob, secret []byte, fn func(privateKey []byte) error) error {
	privateKey, err := v.Decrypt(blob, secret)
	if err != nil {
		return err
	}
	defer clear(privateKey) // wipe decrypted bytes from memory

	return fn(privateKey)
}

// Rekey re-seals the key under newSecret. The old blob is left untouched so
// the caller can persist the new one atomically.
func (v *Vault) Rekey(blob *model.EncryptedKeyBlob, oldSecret, newSecret []byte) (*model.EncryptedKeyBlob, error) {
	var out *model.EncryptedKeyBlob
	err := v.WithPrivateKey(blob, oldSecret, func(privateKey []byte) error {
		sealed, err := v.Encrypt(privateKey, newSecret)
		if err != nil {
			return err
		}
		out = sealed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ValidateBlob checks the structure and KDF bounds of a sealed key without opening it.
func ValidateBlob(blob *model.EncryptedKeyBlob) error {
	if blob == nil {
		return fmt.Errorf("missing key blob: %w", model.ErrInvalidFormat)
	}
	kdf := blob.KDF
	switch {
	case kdf.Name != kdfScrypt:
		return fmt.Errorf("unsupported kdf %q: %w", kdf.Name, model.ErrInvalidFormat)
	case len(kdf.Salt) < 16:
		return fmt.Errorf("salt too short: %w", model.ErrInvalidFormat)
	case kdf.N < 2 || kdf.N > maxScryptN || kdf.N&(kdf.N-1) != 0:
		return fmt.Errorf("scrypt N out of range: %w", model.ErrInvalidFormat)
	case kdf.R < 1 || kdf.R > maxScryptR, kdf.P < 1 || kdf.P > maxScryptP:
		return fmt.Errorf("scrypt r/p out of range: %w", model.ErrInvalidFormat)
	case kdf.KeyLen != keyLen:
		return fmt.Errorf("unsupported key length: %w", model.ErrInvalidFormat)
	case len(blob.Nonce) != nonceLen:
		return fmt.Errorf("invalid nonce length: %w", model.ErrInvalidFormat)
	case len(blob.CipherText) <= 16:
		return fmt.Errorf("ciphertext too short: %w", model.ErrInvalidFormat)
	}
	return nil
}
