// Package qrcode renders and parses pickup hand-off QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"quickbite/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	PickupCode string `json:"pickup_code"`
	Type       string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR renders a QR image encoding the pickup code.
func (s *qrcodeService) GeneratePickupQR(pickupCode string) ([]byte, error) {
	data := QRCodeData{
		PickupCode: pickupCode,
		Type:       "pickup",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR extracts the pickup code from scanned QR data.
func (s *qrcodeService) ParsePickupQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "pickup" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.PickupCode == "" {
		return "", fmt.Errorf("empty pickup code in QR data")
	}

	return data.PickupCode, nil
}
