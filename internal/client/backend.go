package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AlexZinkM/walletguard/internal/model"
)

const (
	transfersPath = "/transfers"
	pinVerifyPath = "/pin/verify"
	resolvePath   = "/recipients/resolve"

	// CapabilityHeader carries the signed authorization of the intent.
	CapabilityHeader = "X-Capability-Token"
)

// BackendClient talks to the banking backend: transfer execution, PIN
// verification and recipient resolution.
type BackendClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewBackendClient creates a new backend client
func NewBackendClient(baseURL, token string) *BackendClient {
	return &BackendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Execute hands an authorized transfer and its capability token to the backend.
func (c *BackendClient) Execute(ctx context.Context, req model.TransferRequest, capability string) (*model.TransferResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transfer: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, transfersPath, body, map[string]string{CapabilityHeader: capability})
	if err != nil {
		return nil, fmt.Errorf("failed to execute transfer: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, model.ErrRateLimited
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		e := decodeError(resp.Body)
		return nil, &model.TransferRejectedError{Code: e.Code, Message: e.Error}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("failed to execute transfer: status %d", resp.StatusCode)
	}

	var result model.TransferResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode transfer result: %w", err)
	}
	if !result.Success {
		return nil, &model.TransferRejectedError{Message: "backend reported failure"}
	}
	return &result, nil
}

// VerifyPin asks the backend to check the transaction PIN. The backend owns
// attempt counting; 200 and 423 both carry a PinCheckResult.
func (c *BackendClient) VerifyPin(ctx context.Context, pin []byte) (model.PinCheckResult, error) {
	body, err := pinBody(pin)
	if err != nil {
		return model.PinCheckResult{}, err
	}
	defer clear(body)

	resp, err := c.do(ctx, http.MethodPost, pinVerifyPath, body, nil)
	if err != nil {
		return model.PinCheckResult{}, fmt.Errorf("failed to verify pin: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusLocked:
	case http.StatusTooManyRequests:
		return model.PinCheckResult{}, model.ErrRateLimited
	case http.StatusNotFound:
		return model.PinCheckResult{}, model.ErrPinNotSet
	default:
		return model.PinCheckResult{}, fmt.Errorf("failed to verify pin: status %d", resp.StatusCode)
	}

	var result model.PinCheckResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.PinCheckResult{}, fmt.Errorf("failed to decode pin result: %w", err)
	}
	return result, nil
}

// pinBody builds {"pin":"..."} straight from the caller's bytes so the only
// copy of the PIN is one that can be cleared.
func pinBody(pin []byte) ([]byte, error) {
	if len(pin) == 0 {
		return nil, fmt.Errorf("pin is empty: %w", model.ErrInvalidFormat)
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("pin must be digits: %w", model.ErrInvalidFormat)
		}
	}
	const prefix, suffix = `{"pin":"`, `"}`
	body := make([]byte, 0, len(prefix)+len(pin)+len(suffix))
	body = append(body, prefix...)
	body = append(body, pin...)
	return append(body, suffix...), nil
}

// Resolve maps user input (phone, alias, pay code id) to a recipient.
func (c *BackendClient) Resolve(ctx context.Context, input string) (model.RecipientRef, error) {
	path := resolvePath + "?" + url.Values{"q": {input}}.Encode()
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return model.RecipientRef{}, fmt.Errorf("failed to resolve recipient: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return model.RecipientRef{}, model.ErrRecipientNotFound
	case http.StatusTooManyRequests:
		return model.RecipientRef{}, model.ErrRateLimited
	default:
		return model.RecipientRef{}, fmt.Errorf("failed to resolve recipient: status %d", resp.StatusCode)
	}

	var ref model.RecipientRef
	if err := json.NewDecoder(resp.Body).Decode(&ref); err != nil {
		return model.RecipientRef{}, fmt.Errorf("failed to decode recipient: %w", err)
	}
	return ref, nil
}

func (c *BackendClient) do(ctx context.Context, method, path string, body []byte, headers map[string]string) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.client.Do(req)
}

func decodeError(r io.Reader) model.ErrorResponse {
	var e model.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(r, 64<<10)).Decode(&e); err != nil || e.Error == "" {
		e.Error = "rejected by backend"
	}
	return e
}
