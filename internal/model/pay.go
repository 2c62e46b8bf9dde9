package model

// CreateIntentRequest represents request for POST /transfers.
// Exactly one of Address, Code or Contact identifies the recipient.
type CreateIntentRequest struct {
	Address     string `json:"address,omitempty"`
	Code        string `json:"code,omitempty"`
	Contact     string `json:"contact,omitempty"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description,omitempty"`
}

// IntentResponse describes the authorization state of an intent.
type IntentResponse struct {
	IntentID          string                 `json:"intentId"`
	Amount            string                 `json:"amount"`
	Recipient         RecipientRef           `json:"recipient"`
	Class             string                 `json:"class"`
	State             string                 `json:"state"`
	Biometric         string                 `json:"biometric,omitempty"`
	PinRejected       bool                   `json:"pinRejected,omitempty"`
	AttemptsRemaining *int                   `json:"attemptsRemaining,omitempty"`
	Decision          *AuthorizationDecision `json:"decision,omitempty"`
}

// ConfirmRequest represents request for POST /transfers/{id}/confirm
type ConfirmRequest struct {
	Acknowledged *bool `json:"acknowledged"`
}

// PinSubmitRequest represents request for POST /transfers/{id}/pin
type PinSubmitRequest struct {
	Pin Secret `json:"pin"`
}

// PayResponse represents response for POST /transfers/{id}/execute
type PayResponse struct {
	TxID string `json:"txId"`
}
