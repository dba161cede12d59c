package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePairingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GeneratePairingQR("cust-1")

	require.NoError(t, err)
	// PNG magic bytes.
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestParsePairingQR(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		svc := NewQRCodeService(256, "M")

		customerID, err := svc.ParsePairingQR(`{"customer_id":"cust-1","type":"pairing"}`)

		require.NoError(t, err)
		assert.Equal(t, "cust-1", customerID)
	})

	t.Run("wrong payload type", func(t *testing.T) {
		svc := NewQRCodeService(256, "M")

		_, err := svc.ParsePairingQR(`{"customer_id":"cust-1","type":"coupon"}`)

		assert.Error(t, err)
	})

	t.Run("missing customer ID", func(t *testing.T) {
		svc := NewQRCodeService(256, "M")

		_, err := svc.ParsePairingQR(`{"type":"pairing"}`)

		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		svc := NewQRCodeService(256, "M")

		_, err := svc.ParsePairingQR(`not json`)

		assert.Error(t, err)
	})
}

func TestNewQRCodeService_UnknownLevelDefaultsToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GeneratePairingQR("cust-2")

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
