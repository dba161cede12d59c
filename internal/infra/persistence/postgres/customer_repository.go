// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// ScanAll retrieves every customer record.
func (repo *customerRepository) ScanAll(ctx context.Context) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).Find(&customerModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to scan customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// FindByID retrieves a customer by its stable identifier.
func (repo *customerRepository) FindByID(ctx context.Context, customerID string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// MarkUsageNotified sets the idempotency flag for one usage threshold. The
// update is a single-row conditional write keyed by customer ID, so flags
// for different customers never conflict.
func (repo *customerRepository) MarkUsageNotified(ctx context.Context, customerID string, threshold repository.UsageThreshold) error {
	var column string
	switch threshold {
	case repository.Threshold90:
		column = "notified_for_90_percent"
	case repository.Threshold80:
		column = "notified_for_80_percent"
	default:
		return errors.Errorf("unknown usage threshold: %d", threshold)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("customer_id = ?", customerID).
		Update(column, true)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to mark %d%% usage flag", threshold)
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// SetFCMToken registers or replaces the customer's push token.
func (repo *customerRepository) SetFCMToken(ctx context.Context, customerID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("customer_id = ?", customerID).
		Update("fcm_token", token)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// ClearFCMToken removes the customer's push token.
func (repo *customerRepository) ClearFCMToken(ctx context.Context, customerID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("customer_id = ?", customerID).
		Update("fcm_token", nil)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to clear FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	var token string
	if data.FCMToken != nil {
		token = *data.FCMToken
	}

	return &entity.Customer{
		CustomerID:           data.CustomerID,
		Name:                 data.Name,
		FCMToken:             token,
		PlanStartDate:        data.PlanStartDate,
		PlanEndDate:          data.PlanEndDate,
		CurrentTotalHours:    data.CurrentTotalHours,
		CycleMaxHours:        data.CycleMaxHours,
		NotifiedFor90Percent: data.NotifiedFor90Percent,
		NotifiedFor80Percent: data.NotifiedFor80Percent,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	var token *string
	if data.FCMToken != "" {
		token = &data.FCMToken
	}

	return &model.CustomerModel{
		CustomerID:           data.CustomerID,
		Name:                 data.Name,
		FCMToken:             token,
		PlanStartDate:        data.PlanStartDate,
		PlanEndDate:          data.PlanEndDate,
		CurrentTotalHours:    data.CurrentTotalHours,
		CycleMaxHours:        data.CycleMaxHours,
		NotifiedFor90Percent: data.NotifiedFor90Percent,
		NotifiedFor80Percent: data.NotifiedFor80Percent,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
