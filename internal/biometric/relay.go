package biometric

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var (
	// ErrUnknownRequest is returned when resolving an assertion nobody waits for.
	ErrUnknownRequest = errors.New("unknown biometric request")
	// ErrAssertionRejected is returned when a verified outcome lacks valid evidence.
	ErrAssertionRejected = errors.New("biometric assertion rejected")
)

// PendingAssertion is a prompt the UI shell still has to perform.
type PendingAssertion struct {
	ID        string    `json:"id"`
	Reason    string    `json:"reason"`
	Challenge string    `json:"challenge"`
	CreatedAt time.Time `json:"createdAt"`
}

type pending struct {
	PendingAssertion
	result chan Outcome
}

// AssertionMessage is what the shell's authenticator key signs for a pending request.
func AssertionMessage(id, challenge string) []byte {
	return []byte("walletguard-assertion\n" + id + "\n" + challenge)
}

// Relay is a Provider backed by the UI shell: the shell polls Pending, runs the
// platform prompt and reports the outcome with Resolve. A verified outcome must
// carry a signature over AssertionMessage by the authenticator key registered
// for this device; the platform releases that key only after a successful
// biometric match. Requests the shell never answers expire after ttl.
type Relay struct {
	mu         sync.RWMutex
	capability Capability
	credential ed25519.PublicKey
	requests   *cache.Cache
}

// NewRelay returns a relay bound to credential. Without a credential the relay
// reports no capability and every prompt falls back to the PIN.
func NewRelay(ttl time.Duration, credential ed25519.PublicKey) (*Relay, error) {
	if credential != nil && len(credential) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid authenticator key length %d", len(credential))
	}
	r := &Relay{
		capability: Capability{Kind: KindUnknown},
		credential: credential,
		requests:   cache.New(ttl, ttl),
	}
	r.requests.OnEvicted(func(_ string, v interface{}) {
		p := v.(*pending)
		select {
		case p.result <- OutcomeCancelled:
		default:
		}
	})
	return r, nil
}

// SetCapability records what the shell reported about the platform.
func (r *Relay) SetCapability(c Capability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.capability = c
}

func (r *Relay) Probe(context.Context) Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.credential == nil {
		return Capability{Kind: KindUnknown}
	}
	return r.capability
}

func (r *Relay) Assert(ctx context.Context, reason string) (Outcome, error) {
	challenge := make([]byte, 32)
	if _, err := rand.Read(challenge); err != nil {
		return OutcomeUnavailable, fmt.Errorf("failed to generate challenge: %w", err)
	}
	p := &pending{
		PendingAssertion: PendingAssertion{
			ID:        uuid.NewString(),
			Reason:    reason,
			Challenge: base64.RawURLEncoding.EncodeToString(challenge),
			CreatedAt: time.Now().UTC(),
		},
		result: make(chan Outcome, 1),
	}
	r.requests.SetDefault(p.ID, p)
	defer r.requests.Delete(p.ID)

	select {
	case o := <-p.result:
		return o, nil
	case <-ctx.Done():
		return OutcomeCancelled, nil
	}
}

// Pending lists outstanding assertions.
func (r *Relay) Pending() []PendingAssertion {
	items := r.requests.Items()
	out := make([]PendingAssertion, 0, len(items))
	for _, it := range items {
		out = append(out, it.Object.(*pending).PendingAssertion)
	}
	return out
}

// Resolve delivers the shell's outcome for request id. Cancelled and
// unavailable need no evidence; verified needs signature over the request's
// AssertionMessage. A rejected signature leaves the request pending.
func (r *Relay) Resolve(id string, outcome Outcome, signature []byte) error {
	v, ok := r.requests.Get(id)
	if !ok {
		return ErrUnknownRequest
	}
	p := v.(*pending)
	switch outcome {
	case OutcomeCancelled, OutcomeUnavailable:
	case OutcomeVerified:
		if r.credential == nil || len(signature) != ed25519.SignatureSize ||
			!ed25519.Verify(r.credential, AssertionMessage(p.ID, p.Challenge), signature) {
			return ErrAssertionRejected
		}
	default:
		return errors.New("invalid biometric outcome")
	}
	select {
	case p.result <- outcome:
		return nil
	default:
		return ErrUnknownRequest
	}
}
