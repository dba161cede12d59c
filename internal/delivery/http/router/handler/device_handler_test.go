package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpvalidator "purity/internal/delivery/http/validator"
	domainerrors "purity/internal/domain/errors"
	"purity/internal/mocks"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceHandlerTest(t *testing.T) (*DeviceHandler, *mocks.MockDeviceUsecase, *echo.Echo) {
	uc := mocks.NewMockDeviceUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = httpvalidator.New()

	return NewDeviceHandler(uc, logger), uc, e
}

func newTokenContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, "/customers/cust-1/device-token", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("cust-1")

	return c, rec
}

func TestRegisterTokenHandler(t *testing.T) {
	t.Run("registers the token", func(t *testing.T) {
		h, uc, e := newDeviceHandlerTest(t)

		uc.On("RegisterToken", mock.Anything, "cust-1", "fcm-token").Return(nil).Once()

		c, rec := newTokenContext(e, `{"token":"fcm-token"}`)

		require.NoError(t, h.RegisterToken(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token fails validation", func(t *testing.T) {
		h, uc, e := newDeviceHandlerTest(t)

		c, rec := newTokenContext(e, `{}`)

		require.NoError(t, h.RegisterToken(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "RegisterToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown customer maps to 404", func(t *testing.T) {
		h, uc, e := newDeviceHandlerTest(t)

		uc.On("RegisterToken", mock.Anything, "cust-1", "fcm-token").
			Return(domainerrors.ErrCustomerNotFound).Once()

		c, rec := newTokenContext(e, `{"token":"fcm-token"}`)

		require.NoError(t, h.RegisterToken(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUnregisterTokenHandler(t *testing.T) {
	h, uc, e := newDeviceHandlerTest(t)

	uc.On("UnregisterToken", mock.Anything, "cust-1").Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/customers/cust-1/device-token", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("cust-1")

	require.NoError(t, h.UnregisterToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPairingQRHandler(t *testing.T) {
	h, uc, e := newDeviceHandlerTest(t)

	uc.On("PairingQR", mock.Anything, "cust-1").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/customers/cust-1/pairing-qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("cust-1")

	require.NoError(t, h.PairingQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}
