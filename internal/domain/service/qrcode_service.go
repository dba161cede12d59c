package service

// QRCodeService defines the interface for device pairing QR codes.
type QRCodeService interface {
	// GeneratePairingQR renders a PNG QR code carrying the pairing payload
	// for one customer.
	GeneratePairingQR(customerID string) ([]byte, error)

	// ParsePairingQR decodes a pairing payload and returns the customer ID.
	ParsePairingQR(qrData string) (string, error)
}
