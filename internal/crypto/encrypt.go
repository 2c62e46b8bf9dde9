package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/AlexZinkM/walletguard/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	kdfScrypt = "scrypt"
	saltLen   = 32
	nonceLen  = 12
	keyLen    = 32
)

// ScryptParams are the cost parameters used when sealing a key.
type ScryptParams struct {
	N int
	R int
	P int
}

// DefaultScrypt prioritizes security over performance.
//
// N=2^18 (~256MB RAM, 0.5-2s) - optimal balance:
//   - Maximum security while remaining compatible with mobile devices
//   - Brute-force attacks remain extremely expensive
//
// Note: N=2^20 (~1GB) fails on mobile due to per-app memory limits.
var DefaultScrypt = ScryptParams{N: 1 << 18, R: 8, P: 1}

// Vault seals and opens account private keys and produces portable backups.
// It keeps no key material between calls and is safe for concurrent use.
type Vault struct {
	scrypt ScryptParams
	export PasswordParams
}

// NewVault returns a Vault sealing with the given scrypt cost and hashing
// export passwords with the given argon2id cost.
func NewVault(scrypt ScryptParams, export PasswordParams) *Vault {
	return &Vault{scrypt: scrypt, export: export}
}

// Encrypt seals privateKey under secret.
// secret must be []byte for security (caller should zero it after use)
func (v *Vault) Encrypt(privateKey, secret []byte) (*model.EncryptedKeyBlob, error) {
	if len(secret) == 0 {
		return nil, errors.New("secret cannot be empty")
	}
	if len(privateKey) == 0 {
		return nil, errors.New("private key cannot be empty")
	}

	// Generate salt and nonce
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	kdf := model.KDFParams{
		Name:   kdfScrypt,
		Salt:   salt,
		N:      v.scrypt.N,
		R:      v.scrypt.R,
		P:      v.scrypt.P,
		KeyLen: keyLen,
	}

	aesGCM, err := newGCM(secret, kdf)
	if err != nil {
		return nil, err
	}

	return &model.EncryptedKeyBlob{
		CipherText: aesGCM.Seal(nil, nonce, privateKey, nil),
		Nonce:      nonce,
		KDF:        kdf,
	}, nil
}

// newGCM derives the symmetric key from secret and wraps it in AES-256-GCM.
// The derived key is wiped once the cipher has been expanded.
func newGCM(secret []byte, kdf model.KDFParams) (cipher.AEAD, error) {
	key, err := scrypt.Key(secret, kdf.Salt, kdf.N, kdf.R, kdf.P, kdf.KeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
