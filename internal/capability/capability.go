// Package capability issues the short-lived signed token that accompanies an
// authorized intent to the transfer executor.
package capability

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/AlexZinkM/walletguard/internal/common"
	"github.com/AlexZinkM/walletguard/internal/model"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

const Issuer = "walletguard"

var (
	ErrInvalidToken  = errors.New("invalid capability token")
	ErrNotAuthorized = errors.New("intent is not authorized")
)

// Claims bind the token to exactly one intent (jti) and its amount and recipient.
type Claims struct {
	jwtv5.RegisteredClaims
	Amount    string `json:"amt"`
	Recipient string `json:"rcp"`
	HighValue bool   `json:"hv,omitempty"`
}

// Signer issues and verifies EdDSA capability tokens.
type Signer struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
	ttl  time.Duration
	now  func() time.Time
}

// NewSigner uses a base64 ed25519 seed, or a fresh ephemeral key when seed is empty.
func NewSigner(seedB64 string, ttl time.Duration) (*Signer, error) {
	var priv ed25519.PrivateKey
	if seedB64 == "" {
		_, p, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to generate capability key: %w", err)
		}
		priv = p
	} else {
		seed, err := base64.StdEncoding.DecodeString(seedB64)
		if err != nil || len(seed) != ed25519.SeedSize {
			return nil, fmt.Errorf("capability key must be a base64 %d-byte seed", ed25519.SeedSize)
		}
		priv = ed25519.NewKeyFromSeed(seed)
		clear(seed)
	}
	return &Signer{
		priv: priv,
		pub:  priv.Public().(ed25519.PublicKey),
		ttl:  ttl,
		now:  time.Now,
	}, nil
}

// PublicKey is what the executor uses to verify tokens.
func (s *Signer) PublicKey() ed25519.PublicKey {
	return s.pub
}

// Issue signs a token for an Authorized decision on intent.
func (s *Signer) Issue(intent model.TransferIntent, decision model.AuthorizationDecision, highValue bool) (string, time.Time, error) {
	if decision.Outcome != model.OutcomeAuthorized || decision.IntentID != intent.ID {
		return "", time.Time{}, ErrNotAuthorized
	}
	now := s.now().UTC()
	exp := now.Add(s.ttl)

	claims := Claims{
		RegisteredClaims: jwtv5.RegisteredClaims{
			Issuer:    Issuer,
			ID:        intent.ID,
			IssuedAt:  jwtv5.NewNumericDate(now),
			NotBefore: jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(exp),
		},
		Amount:    common.FormatAmount(intent.Amount),
		Recipient: intent.Recipient.String(),
		HighValue: highValue,
	}
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodEdDSA, claims)
	tk.Header["typ"] = "JWT"

	signed, err := tk.SignedString(s.priv)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign capability: %w", err)
	}
	return signed, exp, nil
}

// Verify checks signature, issuer and lifetime.
func (s *Signer) Verify(token string) (*Claims, error) {
	return Verify(token, s.pub, s.now)
}

// Verify checks a token against pub. now may be nil.
func Verify(token string, pub ed25519.PublicKey, now func() time.Time) (*Claims, error) {
	opts := []jwtv5.ParserOption{
		jwtv5.WithValidMethods([]string{jwtv5.SigningMethodEdDSA.Alg()}),
		jwtv5.WithIssuer(Issuer),
		jwtv5.WithExpirationRequired(),
	}
	if now != nil {
		opts = append(opts, jwtv5.WithTimeFunc(now))
	}
	claims := &Claims{}
	tok, err := jwtv5.ParseWithClaims(token, claims, func(*jwtv5.Token) (any, error) {
		return pub, nil
	}, opts...)
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("%w: missing intent id", ErrInvalidToken)
	}
	return claims, nil
}

// Matches reports whether the claims cover req exactly.
func (c *Claims) Matches(req model.TransferRequest) bool {
	amount, err := decimal.NewFromString(c.Amount)
	if err != nil {
		return false
	}
	return c.ID == req.IntentID && amount.Equal(req.Amount) && c.Recipient == req.Recipient.String()
}
