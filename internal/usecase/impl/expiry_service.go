// Package impl contains the concrete implementations of the use cases.
package impl

import (
	"context"
	"log/slog"
	"time"

	"purity/internal/domain/entity"
	domainerrors "purity/internal/domain/errors"
	"purity/internal/domain/repository"
	"purity/internal/domain/service"
	"purity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deadTokenDetail is the audit log detail recorded when the gateway reports
// the token as permanently unregistered.
const deadTokenDetail = "FCM token is not registered."

type expiryCheckService struct {
	logger         *slog.Logger
	customerRepo   repository.CustomerRepository
	logRepo        repository.NotificationLogRepository
	pushSender     service.PushSender
	eventPublisher service.EventPublisher
	now            func() time.Time
}

// NewExpiryCheckService creates a new expiry check service instance
func NewExpiryCheckService(
	logger *slog.Logger,
	customerRepo repository.CustomerRepository,
	logRepo repository.NotificationLogRepository,
	pushSender service.PushSender,
	eventPublisher service.EventPublisher,
) usecase.ExpiryCheckUsecase {
	return newExpiryCheckService(logger, customerRepo, logRepo, pushSender, eventPublisher)
}

func newExpiryCheckService(
	logger *slog.Logger,
	customerRepo repository.CustomerRepository,
	logRepo repository.NotificationLogRepository,
	pushSender service.PushSender,
	eventPublisher service.EventPublisher,
) *expiryCheckService {
	return &expiryCheckService{
		logger:         logger,
		customerRepo:   customerRepo,
		logRepo:        logRepo,
		pushSender:     pushSender,
		eventPublisher: eventPublisher,
		now:            time.Now,
	}
}

// RunExpiryCheck scans all customers and sends the due notifications.
//
// The scan is sequential; at-most-one run at a time is serialized by the
// external trigger, so the usage flags cannot be double-observed. Every
// per-customer failure is converted into a FAILED detail row at the record
// boundary and the loop continues.
func (s *expiryCheckService) RunExpiryCheck(ctx context.Context, trigger entity.TriggerType) (*entity.RunSummary, error) {
	s.logger.Info("Starting expiry check run", slog.String("trigger", string(trigger)))

	customers, err := s.customerRepo.ScanAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch customers", slog.Any("error", err))

		summary := &entity.RunSummary{Message: "Failed to fetch customers"}

		return summary, domainerrors.ErrCustomerScanFailed.WrapMessage(err.Error())
	}

	summary := &entity.RunSummary{
		Message:        "Expiry check completed.",
		ProcessedCount: len(customers),
	}

	// One reference time for the whole run, so the expiry check and the
	// day-count wording can never disagree near midnight.
	now := s.now()

	for _, customer := range customers {
		// No registered device: not evaluated, not logged.
		if !customer.HasPushToken() {
			continue
		}

		decision := customer.EvaluatePlan(now)
		if !decision.ShouldSend {
			continue
		}

		s.dispatchAndReconcile(ctx, customer, decision, trigger, summary)
	}

	s.publishRunCompleted(ctx, trigger, summary)

	s.logger.Info("Expiry check run finished",
		slog.String("trigger", string(trigger)),
		slog.Int("processed", summary.ProcessedCount),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
	)

	return summary, nil
}

// dispatchAndReconcile sends one due notification and applies the
// post-dispatch state mutations. All failures past the send itself are
// best-effort: they are logged and swallowed so the scan keeps going.
func (s *expiryCheckService) dispatchAndReconcile(
	ctx context.Context,
	customer *entity.Customer,
	decision entity.PlanDecision,
	trigger entity.TriggerType,
	summary *entity.RunSummary,
) {
	sentAt := s.now()
	sendErr := s.pushSender.Send(ctx, customer.FCMToken, decision.Title, decision.Body)

	if sendErr == nil {
		summary.Sent++
		summary.Details = append(summary.Details, entity.CustomerResult{
			CustomerID: customer.CustomerID,
			Status:     entity.ResultSent,
			Reason:     decision.Title,
		})

		s.appendAuditLog(ctx, entity.NewNotificationLog(
			customer.CustomerID, decision.Body, trigger, entity.NotificationSent, sentAt, "",
		))
		s.markUsageFlags(ctx, customer.CustomerID, decision)

		return
	}

	detail := sendErr.Error()
	if service.IsDeadToken(sendErr) {
		detail = deadTokenDetail
	}

	summary.Failed++
	summary.Details = append(summary.Details, entity.CustomerResult{
		CustomerID: customer.CustomerID,
		Status:     entity.ResultFailed,
		Reason:     detail,
	})

	s.logger.Warn("Failed to send notification",
		slog.String("customerID", customer.CustomerID),
		slog.String("detail", detail),
	)

	s.appendAuditLog(ctx, entity.NewNotificationLog(
		customer.CustomerID, decision.Body, trigger, entity.NotificationFailed, sentAt, detail,
	))

	// A dead token would fail identically on every future run; prune it.
	// Transient failures leave the record untouched for retry next run.
	if service.IsDeadToken(sendErr) {
		if err := s.customerRepo.ClearFCMToken(ctx, customer.CustomerID); err != nil {
			s.logger.Error("Failed to remove dead FCM token",
				slog.String("customerID", customer.CustomerID),
				slog.Any("error", err),
			)
		} else {
			s.logger.Info("Removed dead FCM token", slog.String("customerID", customer.CustomerID))
		}
	}
}

// markUsageFlags sets the threshold idempotency flags after a successful
// send. The flags only ever transition false to true here.
func (s *expiryCheckService) markUsageFlags(ctx context.Context, customerID string, decision entity.PlanDecision) {
	if decision.HasReason(entity.ReasonUsage90) {
		if err := s.customerRepo.MarkUsageNotified(ctx, customerID, repository.Threshold90); err != nil {
			s.logger.Error("Failed to mark 90% usage flag",
				slog.String("customerID", customerID),
				slog.Any("error", err),
			)
		}
	}

	if decision.HasReason(entity.ReasonUsage80) {
		if err := s.customerRepo.MarkUsageNotified(ctx, customerID, repository.Threshold80); err != nil {
			s.logger.Error("Failed to mark 80% usage flag",
				slog.String("customerID", customerID),
				slog.Any("error", err),
			)
		}
	}
}

// appendAuditLog writes one audit entry. Audit logging is best-effort and
// never affects the run outcome.
func (s *expiryCheckService) appendAuditLog(ctx context.Context, log *entity.NotificationLog) {
	if err := s.logRepo.Append(ctx, log); err != nil {
		s.logger.Error("Failed to write notification log",
			slog.String("customerID", log.CustomerID),
			slog.Any("error", err),
		)
	}
}

// publishRunCompleted emits the run summary event, best-effort.
func (s *expiryCheckService) publishRunCompleted(ctx context.Context, trigger entity.TriggerType, summary *entity.RunSummary) {
	if s.eventPublisher == nil {
		return
	}

	event := &service.RunCompletedEvent{
		RunID:          uuid.New().String(),
		TriggerType:    trigger,
		ProcessedCount: summary.ProcessedCount,
		Sent:           summary.Sent,
		Failed:         summary.Failed,
		FinishedAt:     s.now(),
	}

	if err := s.eventPublisher.PublishRunCompleted(ctx, event); err != nil {
		s.logger.Error("Failed to publish run completed event", slog.Any("error", err))
	}
}

// GetNotificationHistory retrieves audit entries, newest first.
func (s *expiryCheckService) GetNotificationHistory(ctx context.Context, customerID string, limit, offset int) ([]*entity.NotificationLog, error) {
	var (
		logs []*entity.NotificationLog
		err  error
	)

	if customerID == "" {
		logs, err = s.logRepo.FindRecent(ctx, limit, offset)
	} else {
		logs, err = s.logRepo.FindByCustomer(ctx, customerID, limit, offset)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch notification history")
	}

	return logs, nil
}
