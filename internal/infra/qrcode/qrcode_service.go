// Package qrcode renders device pairing QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"purity/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CustomerID string `json:"customer_id"`
	Type       string `json:"type"`
}

const pairingQRType = "pairing"

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

// GeneratePairingQR generates a QR code PNG for pairing a purifier device
// with a customer account.
func (s *qrcodeService) GeneratePairingQR(customerID string) ([]byte, error) {
	data := QRCodeData{
		CustomerID: customerID,
		Type:       pairingQRType,
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

// ParsePairingQR parses QR code data and returns the customer ID.
func (s *qrcodeService) ParsePairingQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != pairingQRType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.CustomerID == "" {
		return "", fmt.Errorf("missing customer ID in QR code data")
	}

	return data.CustomerID, nil
}
