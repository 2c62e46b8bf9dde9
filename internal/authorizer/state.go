package authorizer

import (
	"errors"
	"fmt"
)

// State of an Authorizer.
type State string

const (
	StateIdle             State = "idle"
	StateClassifying      State = "classifying"
	StateBiometricPending State = "biometric_pending"
	StatePinPending       State = "pin_pending"
	StateHighValuePending State = "high_value_pending"
	StateAuthorized       State = "authorized"
	StateDenied           State = "denied"
	StateCancelled        State = "cancelled"
)

var (
	ErrInvalidTransition      = errors.New("invalid state transition")
	ErrTerminal               = errors.New("authorization already decided")
	ErrMissingAcknowledgement = errors.New("high-value confirmation requires an explicit acknowledgement")
	ErrExpired                = errors.New("authorization expired")
	ErrAlreadyExecuted        = errors.New("authorization already used")
)

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateAuthorized || s == StateDenied || s == StateCancelled
}

func canTransition(current, next State) bool {
	switch current {
	case StateIdle:
		return next == StateClassifying || next == StateCancelled
	case StateClassifying:
		return next == StateBiometricPending || next == StatePinPending || next == StateCancelled
	case StateBiometricPending:
		return next == StateHighValuePending || next == StateAuthorized || next == StatePinPending || next == StateCancelled
	case StatePinPending:
		// biometric retry, successful PIN, lockout
		return next == StateBiometricPending || next == StateHighValuePending || next == StateAuthorized ||
			next == StateDenied || next == StateCancelled
	case StateHighValuePending:
		return next == StateAuthorized || next == StateCancelled
	default:
		return false
	}
}

func transitionError(current, next State) error {
	if current.Terminal() {
		return fmt.Errorf("%w: %w: from %s to %s", ErrInvalidTransition, ErrTerminal, current, next)
	}
	return fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, current, next)
}
