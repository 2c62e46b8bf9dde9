// Package authorizer gates every money movement behind a PIN or biometric
// proof plus, for high-value amounts, an explicit confirmation.
package authorizer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/AlexZinkM/walletguard/internal/biometric"
	"github.com/AlexZinkM/walletguard/internal/common"
	"github.com/AlexZinkM/walletguard/internal/logger"
	"github.com/AlexZinkM/walletguard/internal/metrics"
	"github.com/AlexZinkM/walletguard/internal/model"

	"go.uber.org/zap"
)

const (
	DefaultIdleTimeout = 5 * time.Minute

	ReasonLocked      = "locked"
	ReasonIdleTimeout = "idle timeout"
	ReasonDeclined    = "high-value confirmation declined"
	ReasonCancelled   = "cancelled"
)

// PinVerifier is the PIN verification service. It owns attempt counting and lockout.
type PinVerifier interface {
	VerifyPin(ctx context.Context, pin []byte) (model.PinCheckResult, error)
}

// AssertionRequester is the biometric bridge as seen by the authorizer.
type AssertionRequester interface {
	Probe(ctx context.Context) biometric.Capability
	RequestAssertion(ctx context.Context, reason string) (biometric.Outcome, error)
}

// Acknowledgement answers the high-value confirmation. The zero value is not an answer.
type Acknowledgement int

const (
	AckMissing Acknowledgement = iota
	AckConfirmed
	AckDeclined
)

// Result is a snapshot after an operation.
type Result struct {
	State             State
	Class             Class
	Biometric         biometric.Outcome
	PinRejected       bool
	AttemptsRemaining *int
	LockedUntil       *time.Time
}

type Option func(*Authorizer)

// WithIdleTimeout sets how long the authorizer may sit between operations.
func WithIdleTimeout(d time.Duration) Option {
	return func(a *Authorizer) { a.idleTimeout = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *Authorizer) { a.now = now }
}

// Authorizer drives one TransferIntent to a single terminal decision.
// Methods are safe for concurrent use; only the biometric wait runs unlocked
// so that Cancel can interrupt it.
type Authorizer struct {
	mu sync.Mutex

	intent model.TransferIntent
	policy Policy
	pins   PinVerifier
	bio    AssertionRequester

	state       State
	class       Class
	lastBio     biometric.Outcome
	pinRejected bool
	attempts    *int
	lockedUntil *time.Time
	decision    *model.AuthorizationDecision
	executed    bool

	cancelProof  context.CancelFunc
	idleTimeout  time.Duration
	lastActivity time.Time
	now          func() time.Time
	log          *zap.Logger
}

// New returns an Idle authorizer for intent. bio may be nil when no biometric bridge exists.
func New(intent model.TransferIntent, policy Policy, pins PinVerifier, bio AssertionRequester, opts ...Option) (*Authorizer, error) {
	if err := intent.Validate(); err != nil {
		return nil, fmt.Errorf("invalid intent: %w", err)
	}
	if pins == nil {
		return nil, errors.New("pin verifier is required")
	}
	a := &Authorizer{
		intent:      intent,
		policy:      policy,
		pins:        pins,
		bio:         bio,
		state:       StateIdle,
		idleTimeout: DefaultIdleTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.lastActivity = a.now()
	a.log = logger.Named("authorizer").With(logger.IntentID(intent.ID))
	return a, nil
}

func (a *Authorizer) Intent() model.TransferIntent {
	return a.intent
}

func (a *Authorizer) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Decision returns the terminal decision once there is one.
func (a *Authorizer) Decision() (model.AuthorizationDecision, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.decision == nil {
		return model.AuthorizationDecision{}, false
	}
	return *a.decision, true
}

// Snapshot returns the current Result without changing state.
func (a *Authorizer) Snapshot() Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result()
}

// Classify moves Idle to Classifying and fixes the amount class.
func (a *Authorizer) Classify() (Class, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.require(StateClassifying, StateIdle); err != nil {
		return "", err
	}
	a.class = Classify(a.intent.Amount, a.policy)
	a.state = StateClassifying
	return a.class, nil
}

// BeginProof starts the proof step. With biometrics enabled and available it
// requests exactly one assertion; otherwise, or when the assertion does not
// verify, the authorizer waits for a PIN. From PinPending it retries the
// biometric prompt.
func (a *Authorizer) BeginProof(ctx context.Context) (Result, error) {
	a.mu.Lock()
	if err := a.require(StateBiometricPending, StateClassifying, StatePinPending); err != nil {
		res := a.result()
		a.mu.Unlock()
		return res, err
	}
	a.pinRejected = false

	if !a.policy.BiometricEnabled || a.bio == nil {
		a.lastBio = ""
		a.state = StatePinPending
		res := a.result()
		a.mu.Unlock()
		return res, nil
	}
	if !a.bio.Probe(ctx).Available {
		a.lastBio = biometric.OutcomeUnavailable
		a.state = StatePinPending
		res := a.result()
		a.mu.Unlock()
		return res, nil
	}

	proofCtx, cancel := context.WithCancel(ctx)
	a.cancelProof = cancel
	a.state = StateBiometricPending
	reason := fmt.Sprintf("Authorize transfer of %s to %s", common.FormatAmount(a.intent.Amount), a.intent.Recipient)
	a.mu.Unlock()

	outcome, err := a.bio.RequestAssertion(proofCtx, reason)
	cancel()

	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelProof = nil
	if a.state != StateBiometricPending {
		// cancelled while the prompt was open
		return a.result(), nil
	}
	a.lastActivity = a.now()

	if err != nil {
		a.log.Info("biometric assertion failed, falling back to pin", zap.Error(err))
		outcome = biometric.OutcomeUnavailable
	}
	a.lastBio = outcome
	if outcome == biometric.OutcomeVerified {
		a.proven()
	} else {
		a.state = StatePinPending
	}
	return a.result(), nil
}

// SubmitPin checks pin with the verification service. A wrong PIN with attempts
// left keeps the authorizer in PinPending with PinRejected set; a lockout is a
// terminal Denied. Transport failures leave the state unchanged.
func (a *Authorizer) SubmitPin(ctx context.Context, pin []byte) (Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.require(StateAuthorized, StatePinPending); err != nil {
		return a.result(), err
	}

	check, err := a.pins.VerifyPin(ctx, pin)
	if err != nil {
		metrics.PinChecks.WithLabelValues("error").Inc()
		return a.result(), fmt.Errorf("failed to verify pin: %w", err)
	}
	a.lastActivity = a.now()
	a.attempts = check.AttemptsRemaining
	a.lockedUntil = check.LockedUntil

	switch {
	case check.Success:
		metrics.PinChecks.WithLabelValues("ok").Inc()
		a.pinRejected = false
		a.proven()
	case check.Locked():
		metrics.PinChecks.WithLabelValues("locked").Inc()
		a.pinRejected = true
		a.finish(StateDenied, model.OutcomeDenied, ReasonLocked)
	default:
		metrics.PinChecks.WithLabelValues("rejected").Inc()
		a.pinRejected = true
	}
	return a.result(), nil
}

// ConfirmHighValue answers the extra confirmation of a high-value intent.
func (a *Authorizer) ConfirmHighValue(ack Acknowledgement) (Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.require(StateAuthorized, StateHighValuePending); err != nil {
		return a.result(), err
	}

	switch ack {
	case AckConfirmed:
		a.finish(StateAuthorized, model.OutcomeAuthorized, "")
	case AckDeclined:
		a.finish(StateCancelled, model.OutcomeCancelled, ReasonDeclined)
	default:
		return a.result(), ErrMissingAcknowledgement
	}
	return a.result(), nil
}

// Cancel ends any non-terminal authorization and aborts a pending biometric prompt.
func (a *Authorizer) Cancel() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state.Terminal() {
		return transitionError(a.state, StateCancelled)
	}
	if a.cancelProof != nil {
		a.cancelProof()
	}
	a.finish(StateCancelled, model.OutcomeCancelled, ReasonCancelled)
	return nil
}

// Expire cancels a non-terminal authorizer for inactivity. It is a no-op on
// terminal ones.
func (a *Authorizer) Expire() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state.Terminal() {
		return
	}
	if a.cancelProof != nil {
		a.cancelProof()
	}
	a.finish(StateCancelled, model.OutcomeCancelled, ReasonIdleTimeout)
}

// MarkExecuted consumes an Authorized decision. It succeeds once.
func (a *Authorizer) MarkExecuted() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateAuthorized {
		return fmt.Errorf("%w: intent is %s", ErrInvalidTransition, a.state)
	}
	if a.executed {
		return ErrAlreadyExecuted
	}
	a.executed = true
	return nil
}

// require checks the idle clock and that an operation heading to next may
// start from the current state.
func (a *Authorizer) require(next State, from ...State) error {
	if err := a.checkIdle(); err != nil {
		return err
	}
	if !slices.Contains(from, a.state) || !canTransition(a.state, next) {
		return transitionError(a.state, next)
	}
	return nil
}

func (a *Authorizer) checkIdle() error {
	if a.state.Terminal() {
		return nil
	}
	now := a.now()
	if a.idleTimeout > 0 && now.Sub(a.lastActivity) > a.idleTimeout {
		a.finish(StateCancelled, model.OutcomeCancelled, ReasonIdleTimeout)
		return ErrExpired
	}
	a.lastActivity = now
	return nil
}

// proven moves on after a successful PIN or biometric proof.
func (a *Authorizer) proven() {
	if a.class == ClassHighValue {
		a.state = StateHighValuePending
		return
	}
	a.finish(StateAuthorized, model.OutcomeAuthorized, "")
}

func (a *Authorizer) finish(state State, outcome model.Outcome, reason string) {
	a.state = state
	a.decision = &model.AuthorizationDecision{
		IntentID:          a.intent.ID,
		Outcome:           outcome,
		Reason:            reason,
		AttemptsRemaining: a.attempts,
		LockedUntil:       a.lockedUntil,
		DecidedAt:         a.now().UTC(),
	}
	class := a.class
	if class == "" {
		class = Classify(a.intent.Amount, a.policy)
	}
	metrics.Decisions.WithLabelValues(string(outcome), string(class)).Inc()
	a.log.Info("authorization decided", logger.State(string(state)), logger.Outcome(string(outcome)), zap.String("reason", reason))
}

func (a *Authorizer) result() Result {
	return Result{
		State:             a.state,
		Class:             a.class,
		Biometric:         a.lastBio,
		PinRejected:       a.pinRejected,
		AttemptsRemaining: a.attempts,
		LockedUntil:       a.lockedUntil,
	}
}
