package keystore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/AlexZinkM/walletguard/internal/crypto"
	"github.com/AlexZinkM/walletguard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T) *model.KeyRecord {
	t.Helper()
	v := crypto.NewVault(crypto.ScryptParams{N: 1 << 10, R: 8, P: 1}, crypto.DefaultPassword)
	kp, err := crypto.GenerateKeypair()
	require.NoError(t, err)
	addr, err := crypto.Address(kp.PublicKey)
	require.NoError(t, err)
	blob, err := v.Encrypt(kp.PrivateKey, []byte("password"))
	require.NoError(t, err)
	return &model.KeyRecord{Address: addr, PublicKey: crypto.EncodePublicKey(kp.PublicKey), Key: blob, CreatedAt: time.Now().UTC()}
}

func TestNew_Extension(t *testing.T) {
	_, err := New("wallet.cwt")
	assert.Error(t, err)
	_, err = New("wallet.wgk")
	assert.NoError(t, err)
}

func TestStore_SaveLoad(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "wallet.wgk"))
	require.NoError(t, err)

	_, err = s.Load()
	assert.ErrorIs(t, err, ErrNotFound)
	exists, err := s.Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	rec := newRecord(t)
	require.NoError(t, s.Save(rec, false))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, rec.Address, got.Address)
	assert.Equal(t, rec.Key.CipherText, got.Key.CipherText)

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, raw[:3])
}

func TestStore_NoSilentOverwrite(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "wallet.wgk"))
	require.NoError(t, err)
	first := newRecord(t)
	require.NoError(t, s.Save(first, false))

	err = s.Save(newRecord(t), false)
	assert.True(t, IsFileExistsError(err))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, first.Address, got.Address)

	second := newRecord(t)
	require.NoError(t, s.Save(second, true))
	got, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, second.Address, got.Address)
}

func TestStore_ConcurrentSaveKeepsOne(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "wallet.wgk"))
	require.NoError(t, err)

	const writers = 8
	recs := make([]*model.KeyRecord, writers)
	for i := range recs {
		recs[i] = newRecord(t)
	}

	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := range recs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Save(recs[i], false)
		}(i)
	}
	wg.Wait()

	winner := -1
	for i, err := range errs {
		if err == nil {
			assert.Equal(t, -1, winner, "only one writer may succeed")
			winner = i
			continue
		}
		assert.True(t, IsFileExistsError(err), err)
	}
	require.NotEqual(t, -1, winner)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, recs[winner].Address, got.Address)
}

func TestStore_EmptyFileIsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.wgk")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	s, err := New(path)
	require.NoError(t, err)

	require.NoError(t, s.Save(newRecord(t), false))
}

func TestStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.wgk")
	require.NoError(t, os.WriteFile(path, []byte(`{"address":"x"}`), 0o600))
	s, err := New(path)
	require.NoError(t, err)

	_, err = s.Load()
	assert.ErrorIs(t, err, model.ErrInvalidFormat)
}
