package crypto

import (
	"encoding/json"
	"testing"

	"github.com/AlexZinkM/walletguard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backupFixture struct {
	vault   *Vault
	address string
	pubKey  string
	blob    *model.EncryptedKeyBlob
	key     []byte
}

func newBackupFixture(t *testing.T) backupFixture {
	t.Helper()
	v := newTestVault()
	kp, err := GenerateKeypair()
	require.NoError(t, err)
	addr, err := Address(kp.PublicKey)
	require.NoError(t, err)
	blob, err := v.Encrypt(kp.PrivateKey, []byte("account password"))
	require.NoError(t, err)
	return backupFixture{vault: v, address: addr, pubKey: EncodePublicKey(kp.PublicKey), blob: blob, key: kp.PrivateKey}
}

func (f backupFixture) export(t *testing.T) []byte {
	t.Helper()
	file, err := f.vault.ExportBackup(f.address, f.pubKey, f.blob, []byte("export password"))
	require.NoError(t, err)
	data, err := json.Marshal(file)
	require.NoError(t, err)
	return data
}

func TestBackup_RoundTrip(t *testing.T) {
	f := newBackupFixture(t)

	file, err := f.vault.ExportBackup(f.address, f.pubKey, f.blob, []byte("export password"))
	require.NoError(t, err)
	assert.Equal(t, model.BackupVersion, file.Version)
	assert.Equal(t, model.BackupType, file.Type)
	assert.NotContains(t, file.ExportPassword, "export password")
	assert.Equal(t, f.blob, file.EncryptedPrivateKey)
	assert.NotEmpty(t, file.Warning)

	data, err := json.Marshal(file)
	require.NoError(t, err)

	imported, err := f.vault.ImportBackup(data, []byte("export password"))
	require.NoError(t, err)
	assert.Equal(t, f.address, imported.WalletAddress)
	assert.Equal(t, f.pubKey, imported.PublicKey)

	// the sealed key still opens with the account password, not the export password
	got, err := f.vault.Decrypt(imported.Key, []byte("account password"))
	require.NoError(t, err)
	assert.Equal(t, f.key, got)
	_, err = f.vault.Decrypt(imported.Key, []byte("export password"))
	assert.ErrorIs(t, err, model.ErrWrongSecret)
}

func TestBackup_ExportRejects(t *testing.T) {
	f := newBackupFixture(t)

	_, err := f.vault.ExportBackup(f.address, f.pubKey, f.blob, nil)
	assert.Error(t, err)

	other, err := GenerateKeypair()
	require.NoError(t, err)
	_, err = f.vault.ExportBackup(f.address, EncodePublicKey(other.PublicKey), f.blob, []byte("pw"))
	assert.Error(t, err)
}

func TestBackup_WrongExportPassword(t *testing.T) {
	f := newBackupFixture(t)
	data := f.export(t)

	_, err := f.vault.ImportBackup(data, []byte("export passwort"))
	assert.ErrorIs(t, err, model.ErrWrongExportPassword)
}

func TestBackup_WrongTypeFirst(t *testing.T) {
	f := newBackupFixture(t)

	// every other field is garbage, the tag alone decides
	data := []byte(`{"type":"other-wallet","version":"x","encryptedPrivateKey":42}`)
	_, err := f.vault.ImportBackup(data, []byte("export password"))
	assert.ErrorIs(t, err, model.ErrInvalidFormat)

	_, err = f.vault.ImportBackup([]byte(`not json`), []byte("export password"))
	assert.ErrorIs(t, err, model.ErrInvalidFormat)
}

func TestBackup_Structure(t *testing.T) {
	f := newBackupFixture(t)
	data := f.export(t)

	mutate := func(fn func(m map[string]any)) []byte {
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		fn(m)
		out, err := json.Marshal(m)
		require.NoError(t, err)
		return out
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"missing version", mutate(func(m map[string]any) { delete(m, "version") })},
		{"future version", mutate(func(m map[string]any) { m["version"] = 2 })},
		{"missing address", mutate(func(m map[string]any) { delete(m, "walletAddress") })},
		{"missing public key", mutate(func(m map[string]any) { delete(m, "publicKey") })},
		{"missing key", mutate(func(m map[string]any) { delete(m, "encryptedPrivateKey") })},
		{"missing password hash", mutate(func(m map[string]any) { delete(m, "exportPassword") })},
		{"missing createdAt", mutate(func(m map[string]any) { delete(m, "createdAt") })},
		{"plaintext password", mutate(func(m map[string]any) { m["exportPassword"] = "export password" })},
		{"address mismatch", mutate(func(m map[string]any) { m["walletAddress"] = "11111111111111111111111111111111" })},
		{"bad kdf", mutate(func(m map[string]any) {
			m["encryptedPrivateKey"].(map[string]any)["kdf"].(map[string]any)["n"] = 3
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.vault.ImportBackup(tt.data, []byte("export password"))
			assert.ErrorIs(t, err, model.ErrInvalidFormat)
		})
	}
}

func TestBackup_UnknownFieldsAndBOM(t *testing.T) {
	f := newBackupFixture(t)
	data := f.export(t)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	m["comment"] = "made on my laptop"
	extended, err := json.Marshal(m)
	require.NoError(t, err)

	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, extended...)
	imported, err := f.vault.ImportBackup(withBOM, []byte("export password"))
	require.NoError(t, err)
	assert.Equal(t, f.address, imported.WalletAddress)
}
