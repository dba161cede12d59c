// Package usecase defines the application use case interfaces.
package usecase

import (
	"context"

	"purity/internal/domain/entity"
)

// ExpiryCheckUsecase defines the plan expiry and usage notification engine.
type ExpiryCheckUsecase interface {
	// RunExpiryCheck scans every customer record, decides per customer
	// whether a push notification is due, dispatches it, reconciles the
	// record state, and records an audit entry per attempt. A failure to
	// fetch the customer set aborts the run; any per-customer failure is
	// isolated and never stops the scan.
	RunExpiryCheck(ctx context.Context, trigger entity.TriggerType) (*entity.RunSummary, error)

	// GetNotificationHistory retrieves audit entries, newest first. An
	// empty customerID returns entries across all customers.
	GetNotificationHistory(ctx context.Context, customerID string, limit, offset int) ([]*entity.NotificationLog, error)
}
