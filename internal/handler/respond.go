package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/AlexZinkM/walletguard/internal/authorizer"
	"github.com/AlexZinkM/walletguard/internal/biometric"
	"github.com/AlexZinkM/walletguard/internal/keystore"
	"github.com/AlexZinkM/walletguard/internal/logger"
	"github.com/AlexZinkM/walletguard/internal/model"
	"github.com/AlexZinkM/walletguard/internal/pinservice"
	"github.com/AlexZinkM/walletguard/wallet"

	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies; an imported backup is the largest.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.From(r.Context()).Error("request failed", logger.Err(err))
	} else {
		logger.From(r.Context()).Debug("request rejected", zap.String("code", code), logger.Err(err))
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	writeError(w, r, fmt.Errorf("%w: %s", errBadRequest, msg))
}

var errBadRequest = errors.New("bad request")

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		badRequest(w, r, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// errorStatus maps the error taxonomy to an HTTP status and ErrorResponse code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, wallet.ErrPasswordTooShort),
		errors.Is(err, authorizer.ErrMissingAcknowledgement):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, model.ErrWeakPin):
		return http.StatusBadRequest, "weak_pin"
	case errors.Is(err, model.ErrInvalidFormat):
		return http.StatusBadRequest, "invalid_format"
	case errors.Is(err, model.ErrWrongSecret):
		return http.StatusUnauthorized, "wrong_secret"
	case errors.Is(err, model.ErrWrongExportPassword):
		return http.StatusUnauthorized, "wrong_export_password"
	case errors.Is(err, biometric.ErrAssertionRejected):
		return http.StatusUnauthorized, "assertion_rejected"
	case errors.Is(err, model.ErrRateLimited), errors.Is(err, wallet.ErrCooldown):
		return http.StatusTooManyRequests, "rate_limited"
	case errors.Is(err, model.ErrRecipientNotFound):
		return http.StatusNotFound, "recipient_not_found"
	case errors.Is(err, model.ErrTransferRejected):
		return http.StatusUnprocessableEntity, "transfer_rejected"
	case errors.Is(err, authorizer.ErrExpired):
		return http.StatusGone, "expired"
	case errors.Is(err, authorizer.ErrInvalidTransition), errors.Is(err, authorizer.ErrAlreadyExecuted),
		errors.Is(err, biometric.ErrBusy):
		return http.StatusConflict, "invalid_transition"
	case keystore.IsFileExistsError(err), errors.Is(err, pinservice.ErrPinAlreadySet):
		return http.StatusConflict, "already_exists"
	case errors.Is(err, model.ErrPinNotSet):
		return http.StatusNotFound, "pin_not_set"
	case errors.Is(err, wallet.ErrIntentNotFound), errors.Is(err, keystore.ErrNotFound),
		errors.Is(err, biometric.ErrUnknownRequest):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
