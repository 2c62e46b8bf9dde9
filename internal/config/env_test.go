package config

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Defaults(t *testing.T) {
	t.Setenv("WALLET_FILE_PATH", "/tmp/wallet.wgk")

	require.NoError(t, Init())
	c := Get()
	assert.Equal(t, "8080", c.Port)
	assert.True(t, c.HighValueThreshold.Equal(decimal.NewFromInt(1000)))
	assert.True(t, c.HighValueVerification)
	assert.True(t, c.BiometricEnabled)
	assert.Equal(t, 5*time.Minute, c.AuthIdleTimeout)
	assert.Equal(t, 5, c.PinMaxAttempts)
	assert.Equal(t, 15*time.Minute, c.PinLockout)
	assert.Equal(t, []string{"http://localhost:3000"}, c.CORSOrigins)
	assert.Empty(t, c.ShellToken)
	assert.Equal(t, "relay", c.BiometricProvider)
	assert.Equal(t, "/tmp/wallet.wgk", GetWalletFilePath())
}

func TestInit_RequiresWalletPath(t *testing.T) {
	t.Setenv("WALLET_FILE_PATH", "")
	os.Unsetenv("WALLET_FILE_PATH")
	assert.Error(t, Init())
}

func TestInit_DotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("HIGH_VALUE_THRESHOLD=250.50\nPIN_VERIFIER=backend\n"), 0o600))
	t.Setenv("WALLET_FILE_PATH", "/tmp/w.wgk")
	t.Setenv("HIGH_VALUE_THRESHOLD", "")
	os.Unsetenv("HIGH_VALUE_THRESHOLD")
	t.Setenv("PIN_VERIFIER", "")
	os.Unsetenv("PIN_VERIFIER")

	require.NoError(t, Init(path))
	assert.Equal(t, "250.5", Get().HighValueThreshold.String())
	assert.Equal(t, "backend", Get().PinVerifier)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			HighValueThreshold: decimal.NewFromInt(1000),
			AuthIdleTimeout:    time.Minute,
			MinPasswordLength:  8,
			BiometricProvider:  "relay",
			PinVerifier:        "local",
			PinStore:           "memory",
			PinMaxAttempts:     5,
			PinLockout:         time.Minute,
			CapabilityTTL:      time.Minute,
		}
	}
	good := base()
	require.NoError(t, good.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative threshold", func(c *Config) { c.HighValueThreshold = decimal.NewFromInt(-1) }},
		{"zero idle timeout", func(c *Config) { c.AuthIdleTimeout = 0 }},
		{"unknown verifier", func(c *Config) { c.PinVerifier = "ldap" }},
		{"unknown store", func(c *Config) { c.PinStore = "etcd" }},
		{"unknown biometric provider", func(c *Config) { c.BiometricProvider = "retina" }},
		{"zero attempts", func(c *Config) { c.PinMaxAttempts = 0 }},
		{"wildcard origin", func(c *Config) { c.CORSOrigins = []string{"http://localhost:3000", "*"} }},
		{"credential not base64", func(c *Config) { c.BiometricCredential = "%%%" }},
		{"credential wrong size", func(c *Config) { c.BiometricCredential = base64.StdEncoding.EncodeToString([]byte("short")) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestBiometricCredentialKey(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	c := Config{BiometricCredential: base64.StdEncoding.EncodeToString(pub)}
	key, err := c.BiometricCredentialKey()
	require.NoError(t, err)
	assert.Equal(t, pub, key)

	key, err = (&Config{}).BiometricCredentialKey()
	require.NoError(t, err)
	assert.Nil(t, key)
}

func TestPasswordBytes(t *testing.T) {
	SetPassword([]byte("hunter22"))
	pw, err := GetPasswordBytes()
	require.NoError(t, err)
	assert.Equal(t, "hunter22", string(pw))

	clear(pw)
	again, err := GetPasswordBytes()
	require.NoError(t, err)
	assert.Equal(t, "hunter22", string(again), "callers get a copy")
}
