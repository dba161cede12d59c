// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"purity/internal/domain/entity"
)

// Domain-specific errors for notification log persistence.
var (
	// ErrNotificationLogNotFound is returned when a notification log is not found.
	ErrNotificationLogNotFound = errors.New("notification log not found")
)

// NotificationLogRepository defines the interface for the append-only audit
// log of notification attempts.
type NotificationLogRepository interface {
	// Append persists a single audit entry. Entries are immutable once
	// written.
	Append(ctx context.Context, log *entity.NotificationLog) error

	// FindByCustomer retrieves audit entries for one customer, newest first.
	FindByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.NotificationLog, error)

	// FindRecent retrieves the most recent audit entries across all
	// customers, newest first.
	FindRecent(ctx context.Context, limit, offset int) ([]*entity.NotificationLog, error)
}
