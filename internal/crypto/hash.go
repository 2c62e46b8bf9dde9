package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/argon2"
)

// Purpose separates digests of the same secret used for different credentials.
type Purpose string

const (
	PurposeTransactionPIN Purpose = "transaction-pin"
	PurposeWalletPIN      Purpose = "wallet-pin"
)

// HashContext salts a secret with the account and the credential purpose.
type HashContext struct {
	AccountID string
	Purpose   Purpose
}

func (c HashContext) salt() []byte {
	h := sha256.New()
	h.Write([]byte("walletguard/secret-hash/v1"))
	for _, part := range []string{c.AccountID, string(c.Purpose)} {
		h.Write([]byte{0})
		h.Write([]byte(part))
	}
	return h.Sum(nil)
}

// Hasher is a deterministic, context-salted one-way transform for PINs.
type Hasher struct {
	params PasswordParams
}

func NewHasher(p PasswordParams) *Hasher {
	return &Hasher{params: p}
}

// Hash digests secret under ctx. The same secret under two contexts yields unrelated digests.
func (h *Hasher) Hash(secret []byte, ctx HashContext) ([]byte, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty secret")
	}
	if ctx.AccountID == "" || ctx.Purpose == "" {
		return nil, errors.New("hash context requires account id and purpose")
	}
	return argon2.IDKey(secret, ctx.salt(), h.params.Time, h.params.Memory, h.params.Parallelism, h.params.KeyLen), nil
}

// Verify recomputes the digest and compares it in constant time.
func (h *Hasher) Verify(secret []byte, ctx HashContext, expected []byte) bool {
	digest, err := h.Hash(secret, ctx)
	if err != nil {
		return false
	}
	defer clear(digest)
	return subtle.ConstantTimeCompare(digest, expected) == 1
}
