// Package paycode parses and renders receive codes of the form WALLETPAY:<id>:<name>.
package paycode

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/AlexZinkM/walletguard/internal/model"

	"github.com/skip2/go-qrcode"
)

const Tag = "WALLETPAY"

// Parse validates only the tag and the field count; id and name are opaque.
func Parse(token string) (model.PayCode, error) {
	fields := strings.Split(strings.TrimSpace(token), ":")
	if len(fields) != 3 {
		return model.PayCode{}, fmt.Errorf("pay code must have 3 fields, got %d: %w", len(fields), model.ErrInvalidFormat)
	}
	if fields[0] != Tag {
		return model.PayCode{}, fmt.Errorf("unknown pay code tag %q: %w", fields[0], model.ErrInvalidFormat)
	}
	return model.PayCode{RecipientID: fields[1], RecipientName: fields[2]}, nil
}

// Encode is the inverse of Parse.
func Encode(c model.PayCode) (string, error) {
	if strings.Contains(c.RecipientID, ":") || strings.Contains(c.RecipientName, ":") {
		return "", fmt.Errorf("pay code fields cannot contain ':': %w", model.ErrInvalidFormat)
	}
	return Tag + ":" + c.RecipientID + ":" + c.RecipientName, nil
}

// QRCode renders content as a base64 PNG.
func QRCode(content string) (string, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	// Get PNG image
	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
