package crypto

import (
	"fmt"

	"github.com/AlexZinkM/walletguard/internal/model"
)

// PinLength is the length of transaction and wallet PINs.
const PinLength = 4

// CheckPinStrength applies the PIN setup policy: exactly PinLength digits and
// not a repeated digit or an ascending/descending run.
func CheckPinStrength(pin []byte) error {
	if len(pin) != PinLength {
		return fmt.Errorf("pin must be %d digits: %w", PinLength, model.ErrWeakPin)
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return fmt.Errorf("pin must contain digits only: %w", model.ErrWeakPin)
		}
	}

	repeated, ascending, descending := true, true, true
	for i := 1; i < len(pin); i++ {
		d := int(pin[i]) - int(pin[i-1])
		repeated = repeated && d == 0
		ascending = ascending && d == 1
		descending = descending && d == -1
	}

	switch {
	case repeated:
		return fmt.Errorf("pin repeats a single digit: %w", model.ErrWeakPin)
	case ascending, descending:
		return fmt.Errorf("pin is a sequence: %w", model.ErrWeakPin)
	}
	return nil
}
