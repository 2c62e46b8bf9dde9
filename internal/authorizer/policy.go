package authorizer

import (
	"github.com/shopspring/decimal"
)

// Class is the amount tier of an intent.
type Class string

const (
	ClassNormal    Class = "normal"
	ClassHighValue Class = "high_value"
)

// Policy is read once per intent, when it is classified.
type Policy struct {
	HighValueThreshold    decimal.Decimal
	HighValueVerification bool
	BiometricEnabled      bool
}

// Classify is HighValue iff high-value verification is on and amount >= threshold.
func Classify(amount decimal.Decimal, p Policy) Class {
	if p.HighValueVerification && amount.GreaterThanOrEqual(p.HighValueThreshold) {
		return ClassHighValue
	}
	return ClassNormal
}
