package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewNotificationLog(t *testing.T) {
	sentAt := time.Date(2026, 3, 10, 9, 0, 0, 123456789, time.FixedZone("IST", 5*3600+1800))

	log := NewNotificationLog("cust-7", "message body", TriggerAuto, NotificationSent, sentAt, "")

	// The log ID embeds the UTC timestamp so IDs sort chronologically and
	// stay unique per customer within a run.
	assert.Equal(t, "2026-03-10T03:30:00.123456789Z-cust-7", log.LogID)
	assert.Equal(t, "cust-7", log.CustomerID)
	assert.Equal(t, "message body", log.Message)
	assert.Equal(t, TriggerAuto, log.TriggerType)
	assert.Equal(t, NotificationSent, log.Status)
	assert.Empty(t, log.ErrorDetail)
}

func TestNewNotificationLog_FailureDetail(t *testing.T) {
	sentAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	log := NewNotificationLog("cust-8", "body", TriggerManual, NotificationFailed, sentAt, "gateway timeout")

	assert.Equal(t, NotificationFailed, log.Status)
	assert.Equal(t, "gateway timeout", log.ErrorDetail)
}
