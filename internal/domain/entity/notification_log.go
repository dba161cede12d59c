package entity

import (
	"time"
)

// TriggerType distinguishes a scheduled run from an on-demand one. It is
// recorded for audit categorization only.
type TriggerType string

// Trigger types for an expiry check run.
const (
	TriggerAuto   TriggerType = "auto"
	TriggerManual TriggerType = "manual"
)

// NotificationStatus is the delivery outcome recorded in the audit log.
type NotificationStatus string

// Notification delivery outcomes.
const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// NotificationLog is one immutable audit entry per attempted push
// notification. Entries are append-only and never updated after creation.
type NotificationLog struct {
	LogID       string             `json:"log_id"`       // Derived from the send timestamp and customer ID; unique.
	CustomerID  string             `json:"customer_id"`  // The customer the notification was addressed to.
	SentAt      time.Time          `json:"sent_at"`      // When the delivery was attempted.
	Message     string             `json:"message"`      // The notification body that was sent (or attempted).
	TriggerType TriggerType        `json:"trigger_type"` // auto or manual.
	Status      NotificationStatus `json:"status"`       // sent or failed.
	ErrorDetail string             `json:"error_detail,omitempty"` // Opaque failure detail, empty on success.
}

// NewNotificationLog builds an audit entry for one delivery attempt. The log
// ID combines the attempt timestamp with the customer ID, which keeps it
// unique across runs without coordination.
func NewNotificationLog(customerID, message string, trigger TriggerType, status NotificationStatus, sentAt time.Time, errorDetail string) *NotificationLog {
	return &NotificationLog{
		LogID:       sentAt.UTC().Format(time.RFC3339Nano) + "-" + customerID,
		CustomerID:  customerID,
		SentAt:      sentAt,
		Message:     message,
		TriggerType: trigger,
		Status:      status,
		ErrorDetail: errorDetail,
	}
}
