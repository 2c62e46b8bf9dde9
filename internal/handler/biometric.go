package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/AlexZinkM/walletguard/internal/biometric"

	"github.com/go-chi/chi/v5"
)

// BiometricHandler is the UI shell side of the biometric relay.
type BiometricHandler struct {
	relay  *biometric.Relay
	bridge *biometric.Bridge
}

func NewBiometricHandler(relay *biometric.Relay, bridge *biometric.Bridge) *BiometricHandler {
	return &BiometricHandler{relay: relay, bridge: bridge}
}

// ResolveRequest carries the outcome of a platform prompt. Signature is the
// base64 authenticator signature over the pending request, required for verified.
type ResolveRequest struct {
	Outcome   biometric.Outcome `json:"outcome" enums:"verified,cancelled,unavailable"`
	Signature string            `json:"signature,omitempty"`
}

// Capability handles GET /biometric/capability
// @Summary      Get biometric capability
// @Tags         biometric
// @Produce      json
// @Success      200  {object}  biometric.Capability
// @Router       /biometric/capability [get]
func (h *BiometricHandler) Capability(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.bridge.Probe(r.Context()))
}

// SetCapability handles PUT /biometric/capability
// @Summary      Report biometric capability
// @Description  The UI shell reports whether the platform offers a biometric authenticator
// @Tags         biometric
// @Accept       json
// @Param        request  body  biometric.Capability  true  "Capability"
// @Success      204
// @Router       /biometric/capability [put]
func (h *BiometricHandler) SetCapability(w http.ResponseWriter, r *http.Request) {
	var req biometric.Capability
	if !decode(w, r, &req) {
		return
	}
	h.relay.SetCapability(req)
	w.WriteHeader(http.StatusNoContent)
}

// Pending handles GET /biometric/assertions
// @Summary      List pending assertions
// @Description  Prompts the UI shell still has to show
// @Tags         biometric
// @Produce      json
// @Success      200  {array}  biometric.PendingAssertion
// @Router       /biometric/assertions [get]
func (h *BiometricHandler) Pending(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.relay.Pending())
}

// Resolve handles POST /biometric/assertions/{id}
// @Summary      Resolve assertion
// @Tags         biometric
// @Accept       json
// @Param        id       path  string          true  "Assertion ID"
// @Param        request  body  ResolveRequest  true  "Outcome"
// @Success      204
// @Failure      401  {object}  model.ErrorResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /biometric/assertions/{id} [post]
func (h *BiometricHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if !decode(w, r, &req) {
		return
	}
	switch req.Outcome {
	case biometric.OutcomeVerified, biometric.OutcomeCancelled, biometric.OutcomeUnavailable:
	default:
		badRequest(w, r, "outcome must be verified, cancelled or unavailable")
		return
	}
	sig, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		badRequest(w, r, "signature must be base64")
		return
	}
	if err := h.relay.Resolve(chi.URLParam(r, "id"), req.Outcome, sig); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
