// Package biometric requests platform biometric assertions. It never sees
// biometric data; providers only report whether the user was verified.
package biometric

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/AlexZinkM/walletguard/internal/logger"
	"github.com/AlexZinkM/walletguard/internal/metrics"
	"github.com/AlexZinkM/walletguard/internal/model"

	"go.uber.org/zap"
)

// Kind is the biometric modality the platform offers.
type Kind string

const (
	KindUnknown     Kind = "unknown"
	KindFingerprint Kind = "fingerprint"
	KindFace        Kind = "face"
)

// Capability is what Probe reports.
type Capability struct {
	Available bool `json:"available"`
	Kind      Kind `json:"kind"`
}

// Outcome of a single assertion.
type Outcome string

const (
	OutcomeVerified    Outcome = "verified"
	OutcomeCancelled   Outcome = "cancelled"
	OutcomeUnavailable Outcome = "unavailable"
)

// ErrBusy is returned when an assertion is already in flight.
var ErrBusy = errors.New("biometric prompt already in progress")

// Provider performs the platform prompt.
type Provider interface {
	Probe(ctx context.Context) Capability
	Assert(ctx context.Context, reason string) (Outcome, error)
}

// Bridge serializes assertions against one Provider: at most one prompt is
// outstanding at any time.
type Bridge struct {
	provider Provider
	busy     atomic.Bool
	log      *zap.Logger
}

func NewBridge(p Provider) *Bridge {
	return &Bridge{provider: p, log: logger.Named("biometric")}
}

// Probe reports capability without prompting.
func (b *Bridge) Probe(ctx context.Context) Capability {
	c := b.provider.Probe(ctx)
	if c.Kind == "" {
		c.Kind = KindUnknown
	}
	return c
}

// RequestAssertion prompts exactly once. Cancelling ctx returns OutcomeCancelled
// immediately; the bridge stays busy until the provider itself returns.
func (b *Bridge) RequestAssertion(ctx context.Context, reason string) (Outcome, error) {
	if !b.busy.CompareAndSwap(false, true) {
		return "", ErrBusy
	}

	type result struct {
		outcome Outcome
		err     error
	}
	done := make(chan result, 1)
	go func() {
		defer b.busy.Store(false)
		o, err := b.provider.Assert(ctx, reason)
		done <- result{o, err}
	}()

	var (
		outcome Outcome
		err     error
	)
	select {
	case r := <-done:
		outcome, err = r.outcome, r.err
	case <-ctx.Done():
		outcome = OutcomeCancelled
	}

	if err != nil {
		b.log.Warn("biometric provider failed", zap.Error(err))
		outcome, err = OutcomeUnavailable, fmt.Errorf("%w: %v", model.ErrBiometricUnavailable, err)
	}
	switch outcome {
	case OutcomeVerified, OutcomeCancelled, OutcomeUnavailable:
	default:
		outcome = OutcomeUnavailable
	}

	metrics.BiometricAssertions.WithLabelValues(string(outcome)).Inc()
	return outcome, err
}
