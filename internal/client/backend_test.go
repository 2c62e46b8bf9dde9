package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AlexZinkM/walletguard/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T, h http.HandlerFunc) *BackendClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewBackendClient(srv.URL+"/", "svc-token")
}

func transferRequest(t *testing.T) model.TransferRequest {
	t.Helper()
	to, err := model.NewContactRecipient("alice")
	require.NoError(t, err)
	return model.TransferRequest{IntentID: "intent-1", Recipient: to, Amount: decimal.RequireFromString("12.50")}
}

func TestExecute_Success(t *testing.T) {
	c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transfers", r.URL.Path)
		assert.Equal(t, "Bearer svc-token", r.Header.Get("Authorization"))
		assert.Equal(t, "cap-token", r.Header.Get(CapabilityHeader))

		var req model.TransferRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "intent-1", req.IntentID)
		assert.Equal(t, "contact:alice", req.Recipient.String())

		json.NewEncoder(w).Encode(model.TransferResult{Success: true, TransactionID: "tx-42"})
	})

	res, err := c.Execute(context.Background(), transferRequest(t), "cap-token")
	require.NoError(t, err)
	assert.Equal(t, "tx-42", res.TransactionID)
}

func TestExecute_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{"rejected", http.StatusUnprocessableEntity, `{"error":"insufficient funds","code":"insufficient_funds"}`, func(t *testing.T, err error) {
			var rej *model.TransferRejectedError
			require.True(t, errors.As(err, &rej))
			assert.Equal(t, "insufficient_funds", rej.Code)
			assert.ErrorIs(t, err, model.ErrTransferRejected)
		}},
		{"rejected without body", http.StatusForbidden, ``, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, model.ErrTransferRejected)
		}},
		{"rate limited", http.StatusTooManyRequests, ``, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, model.ErrRateLimited)
		}},
		{"server error", http.StatusBadGateway, ``, func(t *testing.T, err error) {
			assert.Error(t, err)
			assert.NotErrorIs(t, err, model.ErrTransferRejected)
		}},
		{"success false", http.StatusOK, `{"success":false}`, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, model.ErrTransferRejected)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := c.Execute(context.Background(), transferRequest(t), "cap")
			tt.check(t, err)
		})
	}
}

func TestVerifyPin(t *testing.T) {
	until := time.Date(2026, 1, 1, 12, 15, 0, 0, time.UTC)
	c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Pin string `json:"pin"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		switch body.Pin {
		case "7392":
			w.Write([]byte(`{"success":true}`))
		case "0000":
			w.Write([]byte(`{"success":false,"attemptsRemaining":2}`))
		case "9999":
			w.WriteHeader(http.StatusLocked)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "attemptsRemaining": 0, "lockedUntil": until})
		default:
			w.WriteHeader(http.StatusTooManyRequests)
		}
	})
	ctx := context.Background()

	res, err := c.VerifyPin(ctx, []byte("7392"))
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, err = c.VerifyPin(ctx, []byte("0000"))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 2, *res.AttemptsRemaining)

	res, err = c.VerifyPin(ctx, []byte("9999"))
	require.NoError(t, err)
	assert.True(t, res.Locked())
	assert.True(t, until.Equal(*res.LockedUntil))

	_, err = c.VerifyPin(ctx, []byte("1111"))
	assert.ErrorIs(t, err, model.ErrRateLimited)
}

func TestPinBody(t *testing.T) {
	body, err := pinBody([]byte("7392"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"pin":"7392"}`, string(body))

	for _, pin := range []string{"", "73a2", `7"}`, "７３９２"} {
		_, err := pinBody([]byte(pin))
		assert.ErrorIs(t, err, model.ErrInvalidFormat, pin)
	}

	c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("malformed pin must not reach the backend")
	})
	_, err = c.VerifyPin(context.Background(), []byte(`7","x":"`))
	assert.ErrorIs(t, err, model.ErrInvalidFormat)
}

func TestResolve(t *testing.T) {
	c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipients/resolve", r.URL.Path)
		switch r.URL.Query().Get("q") {
		case "+1 555 0100":
			w.Write([]byte(`{"kind":"contact","value":"c-17"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ref, err := c.Resolve(context.Background(), "+1 555 0100")
	require.NoError(t, err)
	id, ok := ref.Contact()
	require.True(t, ok)
	assert.Equal(t, "c-17", id)

	_, err = c.Resolve(context.Background(), "nobody")
	assert.ErrorIs(t, err, model.ErrRecipientNotFound)
}
