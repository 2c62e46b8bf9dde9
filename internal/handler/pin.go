package handler

import (
	"net/http"

	"github.com/AlexZinkM/walletguard/internal/model"
	"github.com/AlexZinkM/walletguard/internal/pinservice"
)

// PinHandler manages the transaction PIN of the local PIN service.
type PinHandler struct {
	pins *pinservice.Service
}

func NewPinHandler(pins *pinservice.Service) *PinHandler {
	return &PinHandler{pins: pins}
}

// Set handles POST /pin
// @Summary      Set transaction PIN
// @Description  Sets the first PIN; weak PINs (repeated digits, runs) are rejected
// @Tags         pin
// @Accept       json
// @Param        request  body  model.SetPinRequest  true  "PIN"
// @Success      204
// @Failure      400  {object}  model.ErrorResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /pin [post]
func (h *PinHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req model.SetPinRequest
	if !decode(w, r, &req) {
		return
	}
	defer req.Pin.Clear()

	if err := h.pins.SetPin(r.Context(), req.Pin); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Change handles PUT /pin
// @Summary      Change transaction PIN
// @Description  The new PIN must pass policy and the current PIN must verify
// @Tags         pin
// @Accept       json
// @Produce      json
// @Param        request  body      model.ChangePinRequest  true  "Current and new PIN"
// @Success      200      {object}  model.PinCheckResult
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      429      {object}  model.ErrorResponse
// @Router       /pin [put]
func (h *PinHandler) Change(w http.ResponseWriter, r *http.Request) {
	var req model.ChangePinRequest
	if !decode(w, r, &req) {
		return
	}
	defer req.CurrentPin.Clear()
	defer req.NewPin.Clear()

	res, err := h.pins.ChangePin(r.Context(), req.CurrentPin, req.NewPin)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Verify handles POST /pin/verify
// @Summary      Verify transaction PIN
// @Description  PIN verification contract: 200 with the check result, 423 when locked, 404 when no PIN is set
// @Tags         pin
// @Accept       json
// @Produce      json
// @Param        request  body      model.VerifyPinRequest  true  "PIN"
// @Success      200      {object}  model.PinCheckResult
// @Failure      404      {object}  model.ErrorResponse
// @Failure      423      {object}  model.PinCheckResult
// @Router       /pin/verify [post]
func (h *PinHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyPinRequest
	if !decode(w, r, &req) {
		return
	}
	defer req.Pin.Clear()

	res, err := h.pins.VerifyPin(r.Context(), req.Pin)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if res.Locked() {
		writeJSON(w, http.StatusLocked, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
