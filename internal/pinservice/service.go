// Package pinservice is the local PIN verification service: it stores PIN
// digests, counts failed attempts and locks the PIN out after too many.
package pinservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AlexZinkM/walletguard/internal/crypto"
	"github.com/AlexZinkM/walletguard/internal/logger"
	"github.com/AlexZinkM/walletguard/internal/model"

	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts = 5
	DefaultLockout     = 15 * time.Minute
)

var ErrPinAlreadySet = errors.New("pin already set")

// CredentialStore keeps PIN credentials per account and purpose.
type CredentialStore interface {
	// Get returns model.ErrPinNotSet when nothing is stored under key.
	Get(ctx context.Context, key string) (*model.PinCredential, error)
	Put(ctx context.Context, key string, cred *model.PinCredential) error
}

// AttemptStore counts attempts and holds lockouts.
type AttemptStore interface {
	// Fail records an attempt and returns the attempts in the current window.
	// The count must be atomic across every process sharing the store.
	Fail(ctx context.Context, key string, window time.Duration) (int, error)
	Lock(ctx context.Context, key string, until time.Time) error
	// LockedUntil returns the zero time when key is not locked.
	LockedUntil(ctx context.Context, key string) (time.Time, error)
	Reset(ctx context.Context, key string) error
}

type Options struct {
	MaxAttempts int
	Lockout     time.Duration
	Purpose     crypto.Purpose
}

// Service implements set, change and verify for one account PIN.
// Verifications through one Service run one at a time.
type Service struct {
	mu       sync.Mutex
	key      string
	hctx     crypto.HashContext
	hasher   *crypto.Hasher
	creds    CredentialStore
	attempts AttemptStore
	max      int
	lockout  time.Duration
	now      func() time.Time
	log      *zap.Logger
}

func New(accountID string, hasher *crypto.Hasher, creds CredentialStore, attempts AttemptStore, opts Options) *Service {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Lockout <= 0 {
		opts.Lockout = DefaultLockout
	}
	if opts.Purpose == "" {
		opts.Purpose = crypto.PurposeTransactionPIN
	}
	hctx := crypto.HashContext{AccountID: accountID, Purpose: opts.Purpose}
	return &Service{
		key:      accountID + ":" + string(opts.Purpose),
		hctx:     hctx,
		hasher:   hasher,
		creds:    creds,
		attempts: attempts,
		max:      opts.MaxAttempts,
		lockout:  opts.Lockout,
		now:      time.Now,
		log:      logger.Named("pinservice").With(zap.String("account", accountID), zap.String("purpose", string(opts.Purpose))),
	}
}

// IsSet reports whether an enabled PIN exists.
func (s *Service) IsSet(ctx context.Context) (bool, error) {
	cred, err := s.creds.Get(ctx, s.key)
	if errors.Is(err, model.ErrPinNotSet) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return cred.Enabled, nil
}

// SetPin stores the first PIN after the strength policy accepted it.
func (s *Service) SetPin(ctx context.Context, pin []byte) error {
	set, err := s.IsSet(ctx)
	if err != nil {
		return err
	}
	if set {
		return ErrPinAlreadySet
	}
	return s.store(ctx, pin)
}

// ChangePin replaces the PIN. The new PIN must pass policy and the current one
// must verify; a wrong current PIN counts as a failed attempt.
func (s *Service) ChangePin(ctx context.Context, current, next []byte) (model.PinCheckResult, error) {
	if err := crypto.CheckPinStrength(next); err != nil {
		return model.PinCheckResult{}, err
	}
	res, err := s.VerifyPin(ctx, current)
	if err != nil {
		return res, err
	}
	if !res.Success {
		if res.Locked() {
			return res, model.ErrRateLimited
		}
		return res, fmt.Errorf("current pin: %w", model.ErrWrongSecret)
	}
	return res, s.store(ctx, next)
}

// VerifyPin checks pin, maintaining the attempt counter and lockout.
// Each guess is counted before it is evaluated and guesses beyond the limit
// are refused unevaluated, so no more than MaxAttempts guesses are checked per
// window even when several processes share the attempt store.
func (s *Service) VerifyPin(ctx context.Context, pin []byte) (model.PinCheckResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, err := s.creds.Get(ctx, s.key)
	if err != nil {
		return model.PinCheckResult{}, err
	}
	if !cred.Enabled {
		return model.PinCheckResult{}, model.ErrPinNotSet
	}

	until, err := s.attempts.LockedUntil(ctx, s.key)
	if err != nil {
		return model.PinCheckResult{}, fmt.Errorf("failed to read lockout: %w", err)
	}
	if !until.IsZero() && s.now().Before(until) {
		return lockedResult(until), nil
	}

	attempt, err := s.attempts.Fail(ctx, s.key, s.lockout)
	if err != nil {
		return model.PinCheckResult{}, fmt.Errorf("failed to record attempt: %w", err)
	}
	if attempt > s.max {
		return s.lock(ctx)
	}

	if s.hasher.Verify(pin, s.hctx, cred.Hash) {
		if err := s.attempts.Reset(ctx, s.key); err != nil {
			return model.PinCheckResult{}, fmt.Errorf("failed to reset attempts: %w", err)
		}
		return model.PinCheckResult{Success: true}, nil
	}

	remaining := s.max - attempt
	if remaining > 0 {
		return model.PinCheckResult{AttemptsRemaining: &remaining}, nil
	}
	return s.lock(ctx)
}

func (s *Service) lock(ctx context.Context) (model.PinCheckResult, error) {
	until := s.now().Add(s.lockout).UTC()
	if err := s.attempts.Lock(ctx, s.key, until); err != nil {
		return model.PinCheckResult{}, fmt.Errorf("failed to lock pin: %w", err)
	}
	s.log.Warn("pin locked", zap.Time("until", until))
	return lockedResult(until), nil
}

func (s *Service) store(ctx context.Context, pin []byte) error {
	if err := crypto.CheckPinStrength(pin); err != nil {
		return err
	}
	digest, err := s.hasher.Hash(pin, s.hctx)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}
	if err := s.creds.Put(ctx, s.key, &model.PinCredential{Hash: digest, Enabled: true}); err != nil {
		return fmt.Errorf("failed to store pin: %w", err)
	}
	return s.attempts.Reset(ctx, s.key)
}

func lockedResult(until time.Time) model.PinCheckResult {
	zero := 0
	return model.PinCheckResult{AttemptsRemaining: &zero, LockedUntil: &until}
}
