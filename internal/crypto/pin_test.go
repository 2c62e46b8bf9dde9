package crypto

import (
	"testing"

	"github.com/AlexZinkM/walletguard/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCheckPinStrength(t *testing.T) {
	tests := []struct {
		pin  string
		weak bool
	}{
		{"7392", false},
		{"2580", false},
		{"1357", false},
		{"1123", false},
		{"1234", true},
		{"0123", true},
		{"6789", true},
		{"4321", true},
		{"9876", true},
		{"3210", true},
		{"0000", true},
		{"1111", true},
		{"9999", true},
		{"123", true},
		{"12345", true},
		{"12a4", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.pin, func(t *testing.T) {
			err := CheckPinStrength([]byte(tt.pin))
			if tt.weak {
				assert.ErrorIs(t, err, model.ErrWeakPin)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
