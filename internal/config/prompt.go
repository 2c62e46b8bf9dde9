package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

var passwordBytes []byte

// Prompt reads a secret from the terminal without echo.
// Caller must zero the returned slice after use.
func Prompt(label string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter secrets")
	}
	fmt.Fprintf(os.Stderr, "%s: ", label)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", label, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s cannot be empty", label)
	}
	return raw, nil
}

// PromptConfirmed reads a new secret twice and checks both entries match.
func PromptConfirmed(label string) ([]byte, error) {
	first, err := Prompt(label)
	if err != nil {
		return nil, err
	}
	second, err := Prompt("Repeat " + label)
	if err != nil {
		clear(first)
		return nil, err
	}
	defer clear(second)

	if string(first) != string(second) {
		clear(first)
		return nil, errors.New("entries do not match")
	}
	return first, nil
}

// PromptForPassword prompts for the account password and keeps it in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	raw, err := Prompt("Enter account password")
	if err != nil {
		return err
	}
	SetPassword(raw)
	clear(raw)
	return nil
}

// SetPassword replaces the in-memory account password with a copy of pw.
func SetPassword(pw []byte) {
	clear(passwordBytes)
	passwordBytes = make([]byte, len(pw))
	copy(passwordBytes, pw)
}

// GetPasswordBytes returns a copy of the account password stored in memory.
// Caller must zero the returned slice after use for security.
func GetPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
