package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_Deterministic(t *testing.T) {
	h := NewHasher(testPassword)
	ctx := HashContext{AccountID: "acc-1", Purpose: PurposeTransactionPIN}

	a, err := h.Hash([]byte("7392"), ctx)
	require.NoError(t, err)
	b, err := h.Hash([]byte("7392"), ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.True(t, h.Verify([]byte("7392"), ctx, a))
	assert.False(t, h.Verify([]byte("7393"), ctx, a))
	assert.False(t, h.Verify([]byte("7392"), ctx, a[:len(a)-1]))
}

func TestHasher_ContextSeparation(t *testing.T) {
	h := NewHasher(testPassword)
	pin := []byte("7392")

	tx, err := h.Hash(pin, HashContext{AccountID: "acc-1", Purpose: PurposeTransactionPIN})
	require.NoError(t, err)
	wallet, err := h.Hash(pin, HashContext{AccountID: "acc-1", Purpose: PurposeWalletPIN})
	require.NoError(t, err)
	otherAccount, err := h.Hash(pin, HashContext{AccountID: "acc-2", Purpose: PurposeTransactionPIN})
	require.NoError(t, err)

	assert.NotEqual(t, tx, wallet)
	assert.NotEqual(t, tx, otherAccount)
	assert.False(t, h.Verify(pin, HashContext{AccountID: "acc-1", Purpose: PurposeWalletPIN}, tx))
}

func TestHasher_RejectsIncompleteInput(t *testing.T) {
	h := NewHasher(testPassword)
	_, err := h.Hash(nil, HashContext{AccountID: "a", Purpose: PurposeWalletPIN})
	assert.Error(t, err)
	_, err = h.Hash([]byte("1"), HashContext{Purpose: PurposeWalletPIN})
	assert.Error(t, err)
	_, err = h.Hash([]byte("1"), HashContext{AccountID: "a"})
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	phc, err := HashPassword(testPassword, []byte("export-pass"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(phc, "$argon2id$v=19$m=64,t=1,p=1$"))
	assert.True(t, ValidPasswordHash(phc))

	assert.True(t, VerifyPassword([]byte("export-pass"), phc))
	assert.False(t, VerifyPassword([]byte("export-pasS"), phc))
	assert.False(t, VerifyPassword(nil, phc))

	other, err := HashPassword(testPassword, []byte("export-pass"))
	require.NoError(t, err)
	assert.NotEqual(t, phc, other, "salt must be random")

	_, err = HashPassword(testPassword, nil)
	assert.Error(t, err)
}

func TestPasswordHash_Malformed(t *testing.T) {
	good, err := HashPassword(testPassword, []byte("pw"))
	require.NoError(t, err)
	parts := strings.Split(good, "$")

	tests := []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=64,t=1,p=1$" + parts[4] + "$" + parts[5],
		"$argon2id$v=18$m=64,t=1,p=1$" + parts[4] + "$" + parts[5],
		"$argon2id$v=19$m=64,t=1$" + parts[4] + "$" + parts[5] + "$extra",
		"$argon2id$v=19$m=99999999,t=1,p=1$" + parts[4] + "$" + parts[5],
		"$argon2id$v=19$m=64,t=0,p=1$" + parts[4] + "$" + parts[5],
		"$argon2id$v=19$m=64,t=1,x=1$" + parts[4] + "$" + parts[5],
		"$argon2id$v=19$m=64,t=1,p=1$!!$" + parts[5],
		"$argon2id$v=19$m=64,t=1,p=1$" + parts[4] + "$AAAA",
	}
	for _, phc := range tests {
		assert.False(t, ValidPasswordHash(phc), phc)
		assert.False(t, VerifyPassword([]byte("pw"), phc), phc)
	}
}
