package model

import "time"

// PinCredential is the stored form of a transaction PIN. The raw PIN is never kept.
type PinCredential struct {
	Hash    []byte `json:"hash"`
	Enabled bool   `json:"enabled"`
}

// PinCheckResult is what the PIN verification service answers.
type PinCheckResult struct {
	Success           bool       `json:"success"`
	AttemptsRemaining *int       `json:"attemptsRemaining,omitempty"`
	LockedUntil       *time.Time `json:"lockedUntil,omitempty"`
}

// Locked reports whether the result carries a lockout.
func (r PinCheckResult) Locked() bool {
	if r.Success {
		return false
	}
	if r.LockedUntil != nil {
		return true
	}
	return r.AttemptsRemaining != nil && *r.AttemptsRemaining <= 0
}

// SetPinRequest represents request for POST /pin
type SetPinRequest struct {
	Pin Secret `json:"pin"`
}

// ChangePinRequest represents request for PUT /pin
type ChangePinRequest struct {
	CurrentPin Secret `json:"currentPin"`
	NewPin     Secret `json:"newPin"`
}

// VerifyPinRequest is the PIN verification contract payload.
type VerifyPinRequest struct {
	Pin Secret `json:"pin"`
}
