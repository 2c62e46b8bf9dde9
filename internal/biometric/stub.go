//go:build !release

package biometric

import (
	"context"
	"time"
)

// Stub answers every assertion with a fixed outcome. It is not part of release builds.
type Stub struct {
	Capability Capability
	Outcome    Outcome
	Err        error
	Delay      time.Duration
}

func (s *Stub) Probe(context.Context) Capability {
	return s.Capability
}

func (s *Stub) Assert(ctx context.Context, _ string) (Outcome, error) {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return OutcomeCancelled, nil
		}
	}
	return s.Outcome, s.Err
}
