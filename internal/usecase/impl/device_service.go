package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "purity/internal/domain/errors"
	"purity/internal/domain/repository"
	"purity/internal/domain/service"
	"purity/internal/errors"
	"purity/internal/usecase"
)

type deviceService struct {
	logger       *slog.Logger
	customerRepo repository.CustomerRepository
	qrcodeSvc    service.QRCodeService
}

// NewDeviceService creates a new device service instance
func NewDeviceService(
	logger *slog.Logger,
	customerRepo repository.CustomerRepository,
	qrcodeSvc service.QRCodeService,
) usecase.DeviceUsecase {
	return &deviceService{
		logger:       logger,
		customerRepo: customerRepo,
		qrcodeSvc:    qrcodeSvc,
	}
}

// RegisterToken stores or replaces the push token for a customer.
func (s *deviceService) RegisterToken(ctx context.Context, customerID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrInvalidDeviceToken
	}

	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to look up customer")
	}

	if err := s.customerRepo.SetFCMToken(ctx, customerID, token); err != nil {
		return errors.Wrap(err, "failed to register device token")
	}

	s.logger.Info("Registered device token", slog.String("customerID", customerID))

	return nil
}

// UnregisterToken removes the customer's push token.
func (s *deviceService) UnregisterToken(ctx context.Context, customerID string) error {
	if err := s.customerRepo.ClearFCMToken(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to unregister device token")
	}

	s.logger.Info("Unregistered device token", slog.String("customerID", customerID))

	return nil
}

// PairingQR renders the pairing QR code PNG for a customer.
func (s *deviceService) PairingQR(ctx context.Context, customerID string) ([]byte, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to look up customer")
	}

	png, err := s.qrcodeSvc.GeneratePairingQR(customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pairing QR code")
	}

	return png, nil
}
