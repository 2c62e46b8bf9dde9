package model

import "encoding/json"

const redacted = "[redacted]"

// Secret is a short-lived secret handle (password, PIN).
// It decodes from a JSON string, never encodes its content and should be
// cleared by whoever received it as soon as it has been used.
type Secret []byte

// UnmarshalJSON accepts a plain JSON string.
func (s *Secret) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = append((*s)[:0], raw...)
	return nil
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}

func (s Secret) String() string {
	return redacted
}

// Bytes returns the underlying buffer without copying.
func (s Secret) Bytes() []byte {
	return []byte(s)
}

// Clear zeroes the secret in place.
func (s Secret) Clear() {
	clear(s)
}
