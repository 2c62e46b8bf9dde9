package handler

import (
	"net/http"

	"github.com/AlexZinkM/walletguard/internal/authorizer"
	"github.com/AlexZinkM/walletguard/internal/common"
	"github.com/AlexZinkM/walletguard/internal/model"
	"github.com/AlexZinkM/walletguard/wallet"

	"github.com/go-chi/chi/v5"
)

// TransferHandler drives intents through authorization and execution.
type TransferHandler struct {
	svc *wallet.Service
}

func NewTransferHandler(svc *wallet.Service) *TransferHandler {
	return &TransferHandler{svc: svc}
}

func intentResponse(a *authorizer.Authorizer, res authorizer.Result) model.IntentResponse {
	intent := a.Intent()
	out := model.IntentResponse{
		IntentID:          intent.ID,
		Amount:            common.FormatAmount(intent.Amount),
		Recipient:         intent.Recipient,
		Class:             string(res.Class),
		State:             string(res.State),
		Biometric:         string(res.Biometric),
		PinRejected:       res.PinRejected,
		AttemptsRemaining: res.AttemptsRemaining,
	}
	if d, ok := a.Decision(); ok {
		out.Decision = &d
	}
	return out
}

// respond writes the intent state, or the error together with it when there is one.
func (h *TransferHandler) respond(w http.ResponseWriter, r *http.Request, a *authorizer.Authorizer, res authorizer.Result, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, intentResponse(a, res))
}

func (h *TransferHandler) intent(w http.ResponseWriter, r *http.Request) (*authorizer.Authorizer, bool) {
	a, err := h.svc.Intent(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return a, true
}

// Create handles POST /transfers
// @Summary      Create transfer intent
// @Description  Resolves the recipient (address, pay code or contact) and classifies the amount
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateIntentRequest  true  "Transfer data"
// @Success      201      {object}  model.IntentResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /transfers [post]
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateIntentRequest
	if !decode(w, r, &req) {
		return
	}
	a, err := h.svc.CreateIntent(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, intentResponse(a, a.Snapshot()))
}

// Get handles GET /transfers/{id}
// @Summary      Get transfer intent
// @Tags         transfers
// @Produce      json
// @Param        id   path      string  true  "Intent ID"
// @Success      200  {object}  model.IntentResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /transfers/{id} [get]
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, ok := h.intent(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, intentResponse(a, a.Snapshot()))
}

// Proof handles POST /transfers/{id}/proof
// @Summary      Start proof step
// @Description  Requests a biometric assertion when enabled and available; otherwise asks for the PIN.
// @Description  Blocks while the biometric prompt is open.
// @Tags         transfers
// @Produce      json
// @Param        id   path      string  true  "Intent ID"
// @Success      200  {object}  model.IntentResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /transfers/{id}/proof [post]
func (h *TransferHandler) Proof(w http.ResponseWriter, r *http.Request) {
	a, ok := h.intent(w, r)
	if !ok {
		return
	}
	res, err := a.BeginProof(r.Context())
	h.respond(w, r, a, res, err)
}

// Pin handles POST /transfers/{id}/pin
// @Summary      Submit transaction PIN
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Intent ID"
// @Param        request  body      model.PinSubmitRequest  true  "PIN"
// @Success      200      {object}  model.IntentResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /transfers/{id}/pin [post]
func (h *TransferHandler) Pin(w http.ResponseWriter, r *http.Request) {
	a, ok := h.intent(w, r)
	if !ok {
		return
	}
	var req model.PinSubmitRequest
	if !decode(w, r, &req) {
		return
	}
	defer req.Pin.Clear()

	res, err := a.SubmitPin(r.Context(), req.Pin)
	h.respond(w, r, a, res, err)
}

// Confirm handles POST /transfers/{id}/confirm
// @Summary      Confirm high-value transfer
// @Description  acknowledged must be present: true authorizes, false cancels
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Intent ID"
// @Param        request  body      model.ConfirmRequest  true  "Acknowledgement"
// @Success      200      {object}  model.IntentResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /transfers/{id}/confirm [post]
func (h *TransferHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	a, ok := h.intent(w, r)
	if !ok {
		return
	}
	var req model.ConfirmRequest
	if !decode(w, r, &req) {
		return
	}

	ack := authorizer.AckMissing
	if req.Acknowledged != nil {
		ack = authorizer.AckDeclined
		if *req.Acknowledged {
			ack = authorizer.AckConfirmed
		}
	}
	res, err := a.ConfirmHighValue(ack)
	h.respond(w, r, a, res, err)
}

// Cancel handles DELETE /transfers/{id}
// @Summary      Cancel transfer intent
// @Description  Cancels a pending authorization, closing an open biometric prompt
// @Tags         transfers
// @Param        id   path  string  true  "Intent ID"
// @Success      204
// @Failure      409  {object}  model.ErrorResponse
// @Router       /transfers/{id} [delete]
func (h *TransferHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	a, ok := h.intent(w, r)
	if !ok {
		return
	}
	if err := a.Cancel(); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Execute handles POST /transfers/{id}/execute
// @Summary      Execute authorized transfer
// @Description  Hands the authorized intent and a capability token to the transfer executor
// @Tags         transfers
// @Produce      json
// @Param        id   path      string  true  "Intent ID"
// @Success      200  {object}  model.PayResponse
// @Failure      409  {object}  model.ErrorResponse
// @Failure      422  {object}  model.ErrorResponse
// @Failure      429  {object}  model.ErrorResponse
// @Router       /transfers/{id}/execute [post]
func (h *TransferHandler) Execute(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Pay(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
