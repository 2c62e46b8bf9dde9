package config

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config contains all configuration parameters for the application.
// Note: the account password is prompted at runtime and kept in memory - use GetPasswordBytes()
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	WalletFilePath string `envconfig:"WALLET_FILE_PATH" required:"true"`
	AccountID      string `envconfig:"ACCOUNT_ID" default:"local"`
	PayCooldown    int    `envconfig:"PAY_COOLDOWN_MINUTES" default:"0"`

	HighValueThreshold    decimal.Decimal `envconfig:"HIGH_VALUE_THRESHOLD" default:"1000"`
	HighValueVerification bool            `envconfig:"HIGH_VALUE_VERIFICATION" default:"true"`
	BiometricEnabled      bool            `envconfig:"BIOMETRIC_ENABLED" default:"true"`
	BiometricProvider     string          `envconfig:"BIOMETRIC_PROVIDER" default:"relay"`
	BiometricCredential   string          `envconfig:"BIOMETRIC_CREDENTIAL_KEY"`
	AuthIdleTimeout       time.Duration   `envconfig:"AUTH_IDLE_TIMEOUT" default:"5m"`
	MinPasswordLength     int             `envconfig:"MIN_PASSWORD_LENGTH" default:"8"`

	PinVerifier       string        `envconfig:"PIN_VERIFIER" default:"local"`
	PinStore          string        `envconfig:"PIN_STORE" default:"memory"`
	PinMaxAttempts    int           `envconfig:"PIN_MAX_ATTEMPTS" default:"5"`
	PinLockout        time.Duration `envconfig:"PIN_LOCKOUT" default:"15m"`
	PinCredentialPath string        `envconfig:"PIN_CREDENTIAL_PATH"`
	RedisAddr         string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`

	BackendURL   string `envconfig:"BACKEND_URL" default:"http://localhost:8081"`
	BackendToken string `envconfig:"BACKEND_TOKEN"`

	CapabilityKey string        `envconfig:"CAPABILITY_KEY"`
	CapabilityTTL time.Duration `envconfig:"CAPABILITY_TTL" default:"2m"`

	ShellToken  string   `envconfig:"SHELL_TOKEN"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	LogEnv      string   `envconfig:"LOG_ENV" default:"dev"`
	LogLevel    string   `envconfig:"LOG_LEVEL" default:"info"`
}

// Validate checks values envconfig cannot express.
func (c *Config) Validate() error {
	switch {
	case c.HighValueThreshold.IsNegative():
		return errors.New("HIGH_VALUE_THRESHOLD must be >= 0")
	case c.PayCooldown < 0:
		return errors.New("PAY_COOLDOWN_MINUTES must be >= 0")
	case c.AuthIdleTimeout <= 0:
		return errors.New("AUTH_IDLE_TIMEOUT must be positive")
	case c.MinPasswordLength < 1:
		return errors.New("MIN_PASSWORD_LENGTH must be >= 1")
	case c.PinMaxAttempts < 1:
		return errors.New("PIN_MAX_ATTEMPTS must be >= 1")
	case c.PinLockout <= 0:
		return errors.New("PIN_LOCKOUT must be positive")
	case c.CapabilityTTL <= 0:
		return errors.New("CAPABILITY_TTL must be positive")
	}
	switch c.PinVerifier {
	case "local", "backend":
	default:
		return fmt.Errorf("PIN_VERIFIER must be local or backend, got %q", c.PinVerifier)
	}
	switch c.BiometricProvider {
	case "relay", "stub":
	default:
		return fmt.Errorf("BIOMETRIC_PROVIDER must be relay or stub, got %q", c.BiometricProvider)
	}
	switch c.PinStore {
	case "memory", "redis":
	default:
		return fmt.Errorf("PIN_STORE must be memory or redis, got %q", c.PinStore)
	}
	for _, o := range c.CORSOrigins {
		if strings.Contains(o, "*") {
			return fmt.Errorf("CORS_ORIGINS must list explicit origins, got %q", o)
		}
	}
	if _, err := c.BiometricCredentialKey(); err != nil {
		return err
	}
	return nil
}

// BiometricCredentialKey decodes BIOMETRIC_CREDENTIAL_KEY, the shell
// authenticator's base64 ed25519 public key. It is nil when unset.
func (c *Config) BiometricCredentialKey() (ed25519.PublicKey, error) {
	if c.BiometricCredential == "" {
		return nil, nil
	}
	key, err := base64.StdEncoding.DecodeString(c.BiometricCredential)
	if err != nil || len(key) != ed25519.PublicKeySize {
		return nil, errors.New("BIOMETRIC_CREDENTIAL_KEY must be a base64 ed25519 public key")
	}
	return ed25519.PublicKey(key), nil
}

// cfg is the global configuration instance
var cfg *Config

// Init loads .env files (if present) and then configuration from environment variables.
// Variables already set in the environment win over .env values.
func Init(envFiles ...string) error {
	if err := loadDotEnv(envFiles...); err != nil {
		return err
	}

	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = c
	return nil
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("failed to load %s: %w", strings.Join(files, ", "), err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetPayCooldown returns cooldown in minutes from configuration
func GetPayCooldown() int {
	return Get().PayCooldown
}

// GetWalletFilePath returns path to .wgk file from configuration
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

// GetMinPasswordLength returns the minimum account/export password length
func GetMinPasswordLength() int {
	return Get().MinPasswordLength
}
