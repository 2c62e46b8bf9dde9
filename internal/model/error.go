package model

import (
	"errors"
	"fmt"
)

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error taxonomy shared by every package. Callers match with errors.Is.
var (
	ErrWrongSecret          = errors.New("wrong secret")
	ErrInvalidFormat        = errors.New("invalid format")
	ErrWrongExportPassword  = errors.New("wrong export password")
	ErrRateLimited          = errors.New("rate limited")
	ErrBiometricUnavailable = errors.New("biometric unavailable")
	ErrBiometricCancelled   = errors.New("biometric cancelled")
	ErrRecipientNotFound    = errors.New("recipient not found")
	ErrTransferRejected     = errors.New("transfer rejected")
	ErrWeakPin              = errors.New("weak pin")
	ErrPinNotSet            = errors.New("pin not set")
)

// TransferRejectedError carries the executor's structured failure.
type TransferRejectedError struct {
	Code    string
	Message string
}

func (e *TransferRejectedError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("transfer rejected: %s", e.Message)
	}
	return fmt.Sprintf("transfer rejected (%s): %s", e.Code, e.Message)
}

func (e *TransferRejectedError) Unwrap() error {
	return ErrTransferRejected
}
