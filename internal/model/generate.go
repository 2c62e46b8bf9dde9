package model

// GenerateResponse represents response for POST /wallet/generate
type GenerateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
}

// PayCode is a parsed `<TAG>:<id>:<name>` receive code.
type PayCode struct {
	RecipientID   string `json:"recipientId"`
	RecipientName string `json:"recipientName"`
}

// PayCodeResponse represents response for POST /wallet/paycode
type PayCodeResponse struct {
	Code string `json:"code"`
	QR   string `json:"QR"`
}
