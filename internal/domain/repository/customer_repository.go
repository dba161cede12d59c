// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"purity/internal/domain/entity"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
)

// UsageThreshold identifies one of the persisted usage notification flags.
type UsageThreshold int

// Usage thresholds with an idempotency flag on the customer record.
const (
	Threshold90 UsageThreshold = 90
	Threshold80 UsageThreshold = 80
)

// CustomerRepository defines the interface for customer-related database
// operations. All mutations are single-row updates keyed by customer ID, so
// writes to different customers never conflict.
type CustomerRepository interface {
	// ScanAll retrieves every customer record.
	ScanAll(ctx context.Context) ([]*entity.Customer, error)

	// FindByID retrieves a customer by its stable identifier.
	FindByID(ctx context.Context, customerID string) (*entity.Customer, error)

	// MarkUsageNotified sets the idempotency flag for one usage threshold.
	// The flag only ever transitions false to true here; clearing it on
	// recharge belongs to the billing collaborator.
	MarkUsageNotified(ctx context.Context, customerID string, threshold UsageThreshold) error

	// SetFCMToken registers or replaces the customer's push token.
	SetFCMToken(ctx context.Context, customerID, token string) error

	// ClearFCMToken removes the customer's push token, e.g. after the
	// messaging gateway reports it permanently unregistered.
	ClearFCMToken(ctx context.Context, customerID string) error
}
