package postgres

import (
	"context"

	"purity/internal/domain/entity"
	domainerrors "purity/internal/domain/errors"
	"purity/internal/domain/repository"
	"purity/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationLogRepository implements the repository.NotificationLogRepository interface.
type notificationLogRepository struct {
	db *gorm.DB
}

// NewNotificationLogRepository is the constructor for notificationLogRepository.
func NewNotificationLogRepository(db *gorm.DB) repository.NotificationLogRepository {
	return &notificationLogRepository{
		db: db,
	}
}

// Append persists a single audit entry.
func (repo *notificationLogRepository) Append(ctx context.Context, log *entity.NotificationLog) error {
	logM := fromNotificationLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "duplicate notification log ID")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required notification log information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append notification log")
	}

	return nil
}

// FindByCustomer retrieves audit entries for one customer, newest first.
func (repo *notificationLogRepository) FindByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.NotificationLog, error) {
	query := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID)

	return repo.findLogs(query, limit, offset)
}

// FindRecent retrieves the most recent audit entries across all customers.
func (repo *notificationLogRepository) FindRecent(ctx context.Context, limit, offset int) ([]*entity.NotificationLog, error) {
	return repo.findLogs(repo.db.WithContext(ctx), limit, offset)
}

func (repo *notificationLogRepository) findLogs(query *gorm.DB, limit, offset int) ([]*entity.NotificationLog, error) {
	var logModels []*model.NotificationLogModel

	query = query.Order("sent_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification logs")
	}

	logs := make([]*entity.NotificationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toNotificationLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toNotificationLogDomain converts a GORM NotificationLogModel to a domain NotificationLog entity.
func toNotificationLogDomain(data *model.NotificationLogModel) *entity.NotificationLog {
	if data == nil {
		return nil
	}

	return &entity.NotificationLog{
		LogID:       data.LogID,
		CustomerID:  data.CustomerID,
		SentAt:      data.SentAt,
		Message:     data.Message,
		TriggerType: entity.TriggerType(data.TriggerType),
		Status:      entity.NotificationStatus(data.Status),
		ErrorDetail: data.ErrorDetail,
	}
}

// fromNotificationLogDomain converts a domain NotificationLog entity to a GORM NotificationLogModel.
func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		LogID:       data.LogID,
		CustomerID:  data.CustomerID,
		SentAt:      data.SentAt,
		Message:     data.Message,
		TriggerType: string(data.TriggerType),
		Status:      string(data.Status),
		ErrorDetail: data.ErrorDetail,
	}
}
