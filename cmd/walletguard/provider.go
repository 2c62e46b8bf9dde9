//go:build !release

package main

import (
	"github.com/AlexZinkM/walletguard/internal/biometric"
	"github.com/AlexZinkM/walletguard/internal/logger"
)

func (a *app) biometricProvider() (biometric.Provider, error) {
	if a.cfg.BiometricProvider == "stub" {
		logger.Named("biometric").Warn("using stub biometric provider, every assertion verifies")
		return &biometric.Stub{
			Capability: biometric.Capability{Available: true, Kind: biometric.KindFingerprint},
			Outcome:    biometric.OutcomeVerified,
		}, nil
	}
	r, err := a.newRelay()
	if err != nil {
		return nil, err
	}
	return r, nil
}
