package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"purity/internal/domain/entity"
	domainerrors "purity/internal/domain/errors"
	"purity/internal/mocks"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newExpiryHandlerTest(t *testing.T) (*ExpiryHandler, *mocks.MockExpiryCheckUsecase) {
	uc := mocks.NewMockExpiryCheckUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewExpiryHandler(uc, logger), uc
}

func TestRunAutoCheck(t *testing.T) {
	t.Run("returns the run summary", func(t *testing.T) {
		h, uc := newExpiryHandlerTest(t)

		summary := &entity.RunSummary{
			Message:        "Expiry check completed.",
			ProcessedCount: 3,
			Sent:           2,
			Failed:         1,
		}
		uc.On("RunExpiryCheck", mock.Anything, entity.TriggerAuto).Return(summary, nil).Once()

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/cron/expiry-alerts", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, h.RunAutoCheck(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				ProcessedCount int `json:"processed_count"`
				Sent           int `json:"sent"`
				Failed         int `json:"failed"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, 3, body.Data.ProcessedCount)
		assert.Equal(t, 2, body.Data.Sent)
		assert.Equal(t, 1, body.Data.Failed)
	})

	t.Run("scan failure carries the zeroed summary", func(t *testing.T) {
		h, uc := newExpiryHandlerTest(t)

		summary := &entity.RunSummary{Message: "Failed to fetch customers"}
		uc.On("RunExpiryCheck", mock.Anything, entity.TriggerAuto).
			Return(summary, domainerrors.ErrCustomerScanFailed).Once()

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/cron/expiry-alerts", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, h.RunAutoCheck(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "CUSTOMER_SCAN_FAILED")
		assert.Contains(t, rec.Body.String(), "Failed to fetch customers")
	})
}

func TestRunManualCheck(t *testing.T) {
	h, uc := newExpiryHandlerTest(t)

	summary := &entity.RunSummary{Message: "Expiry check completed."}
	uc.On("RunExpiryCheck", mock.Anything, entity.TriggerManual).Return(summary, nil).Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/expiry-alerts/run", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.RunManualCheck(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetNotificationHistory(t *testing.T) {
	t.Run("defaults limit and offset", func(t *testing.T) {
		h, uc := newExpiryHandlerTest(t)

		uc.On("GetNotificationHistory", mock.Anything, "", 20, 0).
			Return([]*entity.NotificationLog{{LogID: "log-1"}}, nil).Once()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/admin/notification-logs", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, h.GetNotificationHistory(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "log-1")
	})

	t.Run("passes customer filter and pagination", func(t *testing.T) {
		h, uc := newExpiryHandlerTest(t)

		uc.On("GetNotificationHistory", mock.Anything, "cust-9", 5, 10).
			Return([]*entity.NotificationLog{}, nil).Once()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/admin/notification-logs?customer_id=cust-9&limit=5&offset=10", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, h.GetNotificationHistory(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("query failure returns 500", func(t *testing.T) {
		h, uc := newExpiryHandlerTest(t)

		uc.On("GetNotificationHistory", mock.Anything, "", 20, 0).
			Return(nil, errors.New("query failed")).Once()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/admin/notification-logs", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, h.GetNotificationHistory(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "NOTIFICATION_LOG_QUERY_FAILED")
	})
}
