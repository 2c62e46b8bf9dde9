package handler

import (
	"net/http"

	"github.com/AlexZinkM/walletguard/internal/config"
	"github.com/AlexZinkM/walletguard/internal/model"
	"github.com/AlexZinkM/walletguard/internal/paycode"
	"github.com/AlexZinkM/walletguard/wallet"
)

// WalletHandler serves key custody operations. The account password is the
// one entered at startup; it never travels over HTTP except for rekey.
type WalletHandler struct {
	svc         *wallet.Service
	password    func() ([]byte, error)
	setPassword func([]byte)
}

// NewWalletHandler creates a WalletHandler backed by the in-memory account password
func NewWalletHandler(svc *wallet.Service) *WalletHandler {
	return &WalletHandler{
		svc:         svc,
		password:    config.GetPasswordBytes,
		setPassword: config.SetPassword,
	}
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates the account keypair and seals the private key under the account password
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := h.password()
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}
	defer clear(passwordBytes)

	address, err := h.svc.Generate(passwordBytes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: address,
	})
}

// Get handles GET /wallet
// @Summary      Get wallet
// @Description  Returns address, public key and receive QR code; the key stays sealed
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /wallet [get]
func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Wallet()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Export handles POST /wallet/export
// @Summary      Export wallet backup
// @Description  Produces a self-verifying backup protected by an export password
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ExportRequest  true  "Export password"
// @Success      200      {object}  model.WalletBackupFile
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/export [post]
func (h *WalletHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req model.ExportRequest
	if !decode(w, r, &req) {
		return
	}
	defer req.ExportPassword.Clear()

	file, err := h.svc.Export(req.ExportPassword)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="wallet-backup.json"`)
	writeJSON(w, http.StatusOK, file)
}

// Import handles POST /wallet/import
// @Summary      Import wallet backup
// @Description  Verifies a backup completely, then stores it. Replaces an existing wallet only with overwrite and the current account password
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Backup file and export password"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallet/import [post]
func (h *WalletHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req model.ImportRequest
	if !decode(w, r, &req) {
		return
	}
	defer req.ExportPassword.Clear()
	defer req.CurrentPassword.Clear()
	if len(req.File) == 0 {
		badRequest(w, r, "file is required")
		return
	}

	address, err := h.svc.Import(req.File, req.ExportPassword, req.CurrentPassword, req.Overwrite)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet imported successfully",
		Address: address,
	})
}

// Rekey handles POST /wallet/rekey
// @Summary      Change account password
// @Description  Re-seals the private key under a new account password
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.RekeyRequest  true  "Current and new password"
// @Success      204
// @Failure      401      {object}  model.ErrorResponse
// @Router       /wallet/rekey [post]
func (h *WalletHandler) Rekey(w http.ResponseWriter, r *http.Request) {
	var req model.RekeyRequest
	if !decode(w, r, &req) {
		return
	}
	defer req.CurrentPassword.Clear()
	defer req.NewPassword.Clear()

	if err := h.svc.Rekey(req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}
	h.setPassword(req.NewPassword)
	w.WriteHeader(http.StatusNoContent)
}

// PayCode handles POST /wallet/paycode
// @Summary      Render receive code
// @Description  Encodes a WALLETPAY receive code for the given recipient and renders it as a QR code
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.PayCode  true  "Recipient"
// @Success      200      {object}  model.PayCodeResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/paycode [post]
func (h *WalletHandler) PayCode(w http.ResponseWriter, r *http.Request) {
	var req model.PayCode
	if !decode(w, r, &req) {
		return
	}
	if req.RecipientID == "" {
		badRequest(w, r, "recipientId is required")
		return
	}

	code, err := paycode.Encode(req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	qr, err := paycode.QRCode(code)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.PayCodeResponse{Code: code, QR: qr})
}
