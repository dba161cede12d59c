package service

import (
	"context"
	"time"

	"purity/internal/domain/entity"
)

// RunCompletedEvent summarizes one finished expiry check run for downstream
// consumers (dashboards, alerting).
type RunCompletedEvent struct {
	RunID          string             `json:"run_id"`
	TriggerType    entity.TriggerType `json:"trigger_type"`
	ProcessedCount int                `json:"processed_count"`
	Sent           int                `json:"sent"`
	Failed         int                `json:"failed"`
	FinishedAt     time.Time          `json:"finished_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRunCompleted publishes a run summary event. Delivery is
	// best-effort; failures never affect the run outcome.
	PublishRunCompleted(ctx context.Context, event *RunCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
