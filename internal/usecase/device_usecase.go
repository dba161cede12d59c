package usecase

import (
	"context"
)

// DeviceUsecase defines device pairing and push registration use cases.
type DeviceUsecase interface {
	// RegisterToken stores or replaces the push token for a customer.
	RegisterToken(ctx context.Context, customerID, token string) error

	// UnregisterToken removes the customer's push token.
	UnregisterToken(ctx context.Context, customerID string) error

	// PairingQR renders the pairing QR code PNG for a customer.
	PairingQR(ctx context.Context, customerID string) ([]byte, error)
}
