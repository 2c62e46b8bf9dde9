package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransferIntent is an ephemeral request to move money, owned by one Authorizer.
type TransferIntent struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Recipient   RecipientRef    `json:"recipient"`
	Description string          `json:"description,omitempty"`
}

// Validate checks the intent shape.
func (i *TransferIntent) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("intent id is required")
	}
	if i.Amount.IsNegative() {
		return fmt.Errorf("amount must be greater than or equal to 0")
	}
	if i.Recipient.IsZero() {
		return fmt.Errorf("recipient is required")
	}
	return nil
}

// Outcome is the terminal result of an authorization.
type Outcome string

const (
	OutcomeAuthorized Outcome = "authorized"
	OutcomeDenied     Outcome = "denied"
	OutcomeCancelled  Outcome = "cancelled"
)

// AuthorizationDecision is produced once per intent.
type AuthorizationDecision struct {
	IntentID          string     `json:"intentId"`
	Outcome           Outcome    `json:"outcome"`
	Reason            string     `json:"reason,omitempty"`
	AttemptsRemaining *int       `json:"attemptsRemaining,omitempty"`
	LockedUntil       *time.Time `json:"lockedUntil,omitempty"`
	DecidedAt         time.Time  `json:"decidedAt"`
}

// TransferRequest is what the executor receives together with a capability token.
type TransferRequest struct {
	IntentID    string          `json:"intentId"`
	Recipient   RecipientRef    `json:"recipient"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// TransferResult is the executor's success response.
type TransferResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
}
