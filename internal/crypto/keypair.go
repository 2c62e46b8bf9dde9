package crypto

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/AlexZinkM/walletguard/internal/model"

	"github.com/gagliardetto/solana-go"
)

// GenerateKeypair creates a fresh ed25519 account keypair from crypto/rand.
// The caller owns PrivateKey and must clear it once it has been sealed.
func GenerateKeypair() (*model.Keypair, error) {
	priv, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}

	return &model.Keypair{
		PublicKey:  priv.PublicKey().Bytes(),
		PrivateKey: []byte(priv),
	}, nil
}

// Address returns the base58 wallet address of a 32-byte public key.
func Address(publicKey []byte) (string, error) {
	if len(publicKey) != solana.PublicKeyLength {
		return "", fmt.Errorf("invalid public key length: %w", model.ErrInvalidFormat)
	}
	return solana.PublicKeyFromBytes(publicKey).String(), nil
}

// EncodePublicKey is the textual public key used in key records and backups.
func EncodePublicKey(publicKey []byte) string {
	return hex.EncodeToString(publicKey)
}

// DecodePublicKey parses EncodePublicKey output.
func DecodePublicKey(s string) ([]byte, error) {
	pub, err := hex.DecodeString(s)
	if err != nil || len(pub) != solana.PublicKeyLength {
		return nil, fmt.Errorf("invalid public key: %w", model.ErrInvalidFormat)
	}
	return pub, nil
}

// MatchesAddress reports whether publicKey (hex) is the key behind address.
func MatchesAddress(publicKey, address string) bool {
	pub, err := DecodePublicKey(publicKey)
	if err != nil {
		return false
	}
	addr, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return false
	}
	return bytes.Equal(pub, addr.Bytes())
}

// PrivateKeyMatches reports whether a 64-byte private key belongs to publicKey.
func PrivateKeyMatches(privateKey, publicKey []byte) bool {
	if len(privateKey) != 64 {
		return false
	}
	return solana.PrivateKey(privateKey).PublicKey().Equals(solana.PublicKeyFromBytes(publicKey))
}
