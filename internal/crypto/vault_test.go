package crypto

import (
	"bytes"
	"testing"

	"github.com/AlexZinkM/walletguard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testScrypt   = ScryptParams{N: 1 << 10, R: 8, P: 1}
	testPassword = PasswordParams{Memory: 64, Time: 1, Parallelism: 1, KeyLen: 32}
)

func newTestVault() *Vault {
	return NewVault(testScrypt, testPassword)
}

func TestVault_RoundTrip(t *testing.T) {
	v := newTestVault()
	kp, err := GenerateKeypair()
	require.NoError(t, err)

	blob, err := v.Encrypt(kp.PrivateKey, []byte("correct horse"))
	require.NoError(t, err)
	assert.NotContains(t, string(blob.CipherText), string(kp.PrivateKey))

	got, err := v.Decrypt(blob, []byte("correct horse"))
	require.NoError(t, err)
	assert.Equal(t, kp.PrivateKey, got)
	assert.True(t, PrivateKeyMatches(got, kp.PublicKey))
}

func TestVault_WrongSecret(t *testing.T) {
	v := newTestVault()
	blob, err := v.Encrypt([]byte("private key bytes"), []byte("right"))
	require.NoError(t, err)

	got, err := v.Decrypt(blob, []byte("wrong"))
	assert.ErrorIs(t, err, model.ErrWrongSecret)
	assert.Nil(t, got)
}

func TestVault_FreshCiphertextPerCall(t *testing.T) {
	v := newTestVault()
	a, err := v.Encrypt([]byte("same key"), []byte("same secret"))
	require.NoError(t, err)
	b, err := v.Encrypt([]byte("same key"), []byte("same secret"))
	require.NoError(t, err)

	assert.NotEqual(t, a.CipherText, b.CipherText)
	assert.NotEqual(t, a.Nonce, b.Nonce)
	assert.NotEqual(t, a.KDF.Salt, b.KDF.Salt)
}

func TestVault_EmptyInputs(t *testing.T) {
	v := newTestVault()
	_, err := v.Encrypt([]byte("key"), nil)
	assert.Error(t, err)
	_, err = v.Encrypt(nil, []byte("secret"))
	assert.Error(t, err)

	blob, err := v.Encrypt([]byte("key"), []byte("secret"))
	require.NoError(t, err)
	_, err = v.Decrypt(blob, []byte{})
	assert.Error(t, err)
}

func TestVault_TamperDetected(t *testing.T) {
	v := newTestVault()
	blob, err := v.Encrypt([]byte("private key bytes"), []byte("secret"))
	require.NoError(t, err)

	blob.CipherText[0] ^= 0xFF
	_, err = v.Decrypt(blob, []byte("secret"))
	assert.ErrorIs(t, err, model.ErrWrongSecret)
}

func TestValidateBlob(t *testing.T) {
	v := newTestVault()
	good, err := v.Encrypt([]byte("private key bytes"), []byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(b *model.EncryptedKeyBlob)
	}{
		{"unknown kdf", func(b *model.EncryptedKeyBlob) { b.KDF.Name = "pbkdf2" }},
		{"short salt", func(b *model.EncryptedKeyBlob) { b.KDF.Salt = b.KDF.Salt[:4] }},
		{"N not power of two", func(b *model.EncryptedKeyBlob) { b.KDF.N = 1000 }},
		{"N too large", func(b *model.EncryptedKeyBlob) { b.KDF.N = 1 << 30 }},
		{"r zero", func(b *model.EncryptedKeyBlob) { b.KDF.R = 0 }},
		{"p too large", func(b *model.EncryptedKeyBlob) { b.KDF.P = 1000 }},
		{"key length", func(b *model.EncryptedKeyBlob) { b.KDF.KeyLen = 16 }},
		{"nonce length", func(b *model.EncryptedKeyBlob) { b.Nonce = b.Nonce[:8] }},
		{"empty ciphertext", func(b *model.EncryptedKeyBlob) { b.CipherText = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := *good
			b.KDF.Salt = append([]byte(nil), good.KDF.Salt...)
			b.Nonce = append([]byte(nil), good.Nonce...)
			tt.mutate(&b)

			assert.ErrorIs(t, ValidateBlob(&b), model.ErrInvalidFormat)
			_, err := v.Decrypt(&b, []byte("secret"))
			assert.ErrorIs(t, err, model.ErrInvalidFormat)
		})
	}

	assert.ErrorIs(t, ValidateBlob(nil), model.ErrInvalidFormat)
	assert.NoError(t, ValidateBlob(good))
}

func TestVault_WithPrivateKeyClears(t *testing.T) {
	v := newTestVault()
	key := []byte("0123456789abcdef0123456789abcdef")
	blob, err := v.Encrypt(key, []byte("secret"))
	require.NoError(t, err)

	var seen []byte
	err = v.WithPrivateKey(blob, []byte("secret"), func(pk []byte) error {
		assert.Equal(t, key, pk)
		seen = pk
		return nil
	})
	require.NoError(t, err)
	assert.True(t, bytes.Equal(seen, make([]byte, len(key))), "plaintext must be zeroed after use")
}

func TestVault_Rekey(t *testing.T) {
	v := newTestVault()
	key := []byte("0123456789abcdef0123456789abcdef")
	blob, err := v.Encrypt(key, []byte("old password"))
	require.NoError(t, err)

	_, err = v.Rekey(blob, []byte("not it"), []byte("new password"))
	assert.ErrorIs(t, err, model.ErrWrongSecret)

	rekeyed, err := v.Rekey(blob, []byte("old password"), []byte("new password"))
	require.NoError(t, err)

	_, err = v.Decrypt(rekeyed, []byte("old password"))
	assert.ErrorIs(t, err, model.ErrWrongSecret)
	got, err := v.Decrypt(rekeyed, []byte("new password"))
	require.NoError(t, err)
	assert.Equal(t, key, got)

	// old blob still opens with the old password
	got, err = v.Decrypt(blob, []byte("old password"))
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestKeypair_Address(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)
	require.Len(t, kp.PrivateKey, 64)

	addr, err := Address(kp.PublicKey)
	require.NoError(t, err)
	pub := EncodePublicKey(kp.PublicKey)

	assert.True(t, MatchesAddress(pub, addr))

	other, err := GenerateKeypair()
	require.NoError(t, err)
	assert.False(t, MatchesAddress(EncodePublicKey(other.PublicKey), addr))
	assert.False(t, PrivateKeyMatches(other.PrivateKey, kp.PublicKey))

	_, err = Address([]byte{1, 2, 3})
	assert.ErrorIs(t, err, model.ErrInvalidFormat)
	_, err = DecodePublicKey("zz")
	assert.ErrorIs(t, err, model.ErrInvalidFormat)
}
