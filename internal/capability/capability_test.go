package capability

import (
	"crypto/ed25519"
	"encoding/base64"
	"testing"
	"time"

	"github.com/AlexZinkM/walletguard/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authorized(t *testing.T, amount string) (model.TransferIntent, model.AuthorizationDecision) {
	t.Helper()
	to, err := model.NewContactRecipient("bob")
	require.NoError(t, err)
	intent := model.TransferIntent{ID: uuid.NewString(), Amount: decimal.RequireFromString(amount), Recipient: to}
	return intent, model.AuthorizationDecision{IntentID: intent.ID, Outcome: model.OutcomeAuthorized}
}

func TestSigner_IssueVerify(t *testing.T) {
	s, err := NewSigner("", time.Minute)
	require.NoError(t, err)
	intent, decision := authorized(t, "5000.00")

	token, exp, err := s.Issue(intent, decision, true)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), exp, 5*time.Second)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, intent.ID, claims.ID)
	assert.Equal(t, "5000.00", claims.Amount)
	assert.True(t, claims.HighValue)

	req := model.TransferRequest{IntentID: intent.ID, Recipient: intent.Recipient, Amount: decimal.RequireFromString("5000")}
	assert.True(t, claims.Matches(req))
	req.Amount = decimal.RequireFromString("5000.01")
	assert.False(t, claims.Matches(req))
}

func TestSigner_RejectsNonAuthorized(t *testing.T) {
	s, err := NewSigner("", time.Minute)
	require.NoError(t, err)
	intent, decision := authorized(t, "10")

	decision.Outcome = model.OutcomeDenied
	_, _, err = s.Issue(intent, decision, false)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	decision.Outcome = model.OutcomeAuthorized
	decision.IntentID = "other"
	_, _, err = s.Issue(intent, decision, false)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestSigner_Expired(t *testing.T) {
	s, err := NewSigner("", time.Minute)
	require.NoError(t, err)
	intent, decision := authorized(t, "10")
	token, _, err := s.Issue(intent, decision, false)
	require.NoError(t, err)

	later := func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = Verify(token, s.PublicKey(), later)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSigner_WrongKey(t *testing.T) {
	s, err := NewSigner("", time.Minute)
	require.NoError(t, err)
	other, err := NewSigner("", time.Minute)
	require.NoError(t, err)
	intent, decision := authorized(t, "10")
	token, _, err := s.Issue(intent, decision, false)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewSigner_Seed(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	enc := base64.StdEncoding.EncodeToString(seed)

	a, err := NewSigner(enc, time.Minute)
	require.NoError(t, err)
	b, err := NewSigner(enc, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, a.PublicKey(), b.PublicKey())

	_, err = NewSigner("not-base64!", time.Minute)
	assert.Error(t, err)
	_, err = NewSigner(base64.StdEncoding.EncodeToString([]byte("short")), time.Minute)
	assert.Error(t, err)
}
