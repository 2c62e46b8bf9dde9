package main

import (
	"errors"
	"time"

	"github.com/AlexZinkM/walletguard/internal/authorizer"
	"github.com/AlexZinkM/walletguard/internal/biometric"
	"github.com/AlexZinkM/walletguard/internal/capability"
	"github.com/AlexZinkM/walletguard/internal/client"
	"github.com/AlexZinkM/walletguard/internal/config"
	"github.com/AlexZinkM/walletguard/internal/crypto"
	"github.com/AlexZinkM/walletguard/internal/keystore"
	"github.com/AlexZinkM/walletguard/internal/logger"
	"github.com/AlexZinkM/walletguard/internal/pinservice"
	"github.com/AlexZinkM/walletguard/wallet"

	"github.com/redis/go-redis/v9"
)

const redisPrefix = "walletguard:pin:"

// app is the wired process. pins is nil when PIN verification is delegated to
// the backend; relay is nil unless the relay provider is in use.
type app struct {
	cfg     *config.Config
	wallet  *wallet.Service
	pins    *pinservice.Service
	relay   *biometric.Relay
	bridge  *biometric.Bridge
	closers []func() error
}

func newApp(cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	store, err := keystore.New(config.GetWalletFilePath())
	if err != nil {
		return nil, err
	}
	signer, err := capability.NewSigner(cfg.CapabilityKey, cfg.CapabilityTTL)
	if err != nil {
		return nil, err
	}
	backend := client.NewBackendClient(cfg.BackendURL, cfg.BackendToken)

	var verifier authorizer.PinVerifier = backend
	if cfg.PinVerifier == "local" {
		a.pins = a.localPins()
		verifier = a.pins
	}

	provider, err := a.biometricProvider()
	if err != nil {
		return nil, err
	}
	a.bridge = biometric.NewBridge(provider)

	a.wallet, err = wallet.New(wallet.Deps{
		Vault:     crypto.NewVault(crypto.DefaultScrypt, crypto.DefaultPassword),
		Store:     store,
		Pins:      verifier,
		Biometric: a.bridge,
		Resolver:  backend,
		Executor:  backend,
		Signer:    signer,
	}, wallet.Options{
		Policy: authorizer.Policy{
			HighValueThreshold:    cfg.HighValueThreshold,
			HighValueVerification: cfg.HighValueVerification,
			BiometricEnabled:      cfg.BiometricEnabled,
		},
		IdleTimeout:       cfg.AuthIdleTimeout,
		MinPasswordLength: config.GetMinPasswordLength(),
		Cooldown:          time.Duration(config.GetPayCooldown()) * time.Minute,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) localPins() *pinservice.Service {
	var creds pinservice.CredentialStore = pinservice.NewMemoryCredentials()
	if a.cfg.PinCredentialPath != "" {
		creds = pinservice.NewFileCredentials(a.cfg.PinCredentialPath)
	}

	var attempts pinservice.AttemptStore = pinservice.NewMemoryAttempts()
	if a.cfg.PinStore == "redis" {
		rdb := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})
		a.closers = append(a.closers, rdb.Close)
		attempts = pinservice.NewRedisAttempts(rdb, redisPrefix)
	}

	return pinservice.New(a.cfg.AccountID, crypto.NewHasher(crypto.DefaultPassword), creds, attempts, pinservice.Options{
		MaxAttempts: a.cfg.PinMaxAttempts,
		Lockout:     a.cfg.PinLockout,
		Purpose:     crypto.PurposeTransactionPIN,
	})
}

// newRelay binds the relay to the shell's registered authenticator key.
func (a *app) newRelay() (*biometric.Relay, error) {
	key, err := a.cfg.BiometricCredentialKey()
	if err != nil {
		return nil, err
	}
	if key == nil {
		logger.Named("biometric").Warn("BIOMETRIC_CREDENTIAL_KEY is not set, biometric proofs fall back to the PIN")
	}
	a.relay, err = biometric.NewRelay(a.cfg.AuthIdleTimeout, key)
	if err != nil {
		return nil, err
	}
	return a.relay, nil
}

func (a *app) requirePins() (*pinservice.Service, error) {
	if a.pins == nil {
		return nil, errors.New("PIN is managed by the backend (PIN_VERIFIER=backend)")
	}
	return a.pins, nil
}

func (a *app) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
