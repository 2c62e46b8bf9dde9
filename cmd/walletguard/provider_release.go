//go:build release

package main

import (
	"errors"

	"github.com/AlexZinkM/walletguard/internal/biometric"
)

func (a *app) biometricProvider() (biometric.Provider, error) {
	if a.cfg.BiometricProvider == "stub" {
		return nil, errors.New("stub biometric provider is not available in release builds")
	}
	r, err := a.newRelay()
	if err != nil {
		return nil, err
	}
	return r, nil
}
