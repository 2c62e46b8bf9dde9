// Package wallet orchestrates key custody (generate, view, export, import,
// rekey) and the authorized money-movement flow on top of it.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AlexZinkM/walletguard/internal/authorizer"
	"github.com/AlexZinkM/walletguard/internal/capability"
	"github.com/AlexZinkM/walletguard/internal/crypto"
	"github.com/AlexZinkM/walletguard/internal/keystore"
	"github.com/AlexZinkM/walletguard/internal/logger"
	"github.com/AlexZinkM/walletguard/internal/model"

	"go.uber.org/zap"
)

var (
	ErrPasswordTooShort = errors.New("password too short")
	ErrIntentNotFound   = errors.New("intent not found")
	ErrCooldown         = errors.New("cooldown active")
)

// TransferExecutor moves money for an authorized intent.
type TransferExecutor interface {
	Execute(ctx context.Context, req model.TransferRequest, capabilityToken string) (*model.TransferResult, error)
}

// RecipientResolver maps user input to a recipient; model.ErrRecipientNotFound when unknown.
type RecipientResolver interface {
	Resolve(ctx context.Context, input string) (model.RecipientRef, error)
}

type Deps struct {
	Vault     *crypto.Vault
	Store     *keystore.Store
	Pins      authorizer.PinVerifier
	Biometric authorizer.AssertionRequester // optional
	Resolver  RecipientResolver
	Executor  TransferExecutor
	Signer    *capability.Signer
}

type Options struct {
	Policy            authorizer.Policy
	IdleTimeout       time.Duration
	MinPasswordLength int
	Cooldown          time.Duration
}

type Service struct {
	vault    *crypto.Vault
	store    *keystore.Store
	pins     authorizer.PinVerifier
	bio      authorizer.AssertionRequester
	resolver RecipientResolver
	executor TransferExecutor
	signer   *capability.Signer
	intents  *authorizer.Registry
	opts     Options

	payMu   sync.Mutex
	lastPay time.Time
	now     func() time.Time
	log     *zap.Logger
}

func New(d Deps, opts Options) (*Service, error) {
	switch {
	case d.Vault == nil:
		return nil, errors.New("vault is required")
	case d.Store == nil:
		return nil, errors.New("key store is required")
	case d.Pins == nil:
		return nil, errors.New("pin verifier is required")
	case d.Resolver == nil:
		return nil, errors.New("recipient resolver is required")
	case d.Executor == nil:
		return nil, errors.New("transfer executor is required")
	case d.Signer == nil:
		return nil, errors.New("capability signer is required")
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = authorizer.DefaultIdleTimeout
	}
	if opts.MinPasswordLength <= 0 {
		opts.MinPasswordLength = 8
	}
	return &Service{
		vault:    d.Vault,
		store:    d.Store,
		pins:     d.Pins,
		bio:      d.Biometric,
		resolver: d.Resolver,
		executor: d.Executor,
		signer:   d.Signer,
		intents:  authorizer.NewRegistry(opts.IdleTimeout),
		opts:     opts,
		now:      time.Now,
		log:      logger.Named("wallet"),
	}, nil
}

func (s *Service) checkPassword(pw []byte) error {
	if len(pw) < s.opts.MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters required", ErrPasswordTooShort, s.opts.MinPasswordLength)
	}
	return nil
}
