package usecase

import (
	"context"
	"errors"
	"strings"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/pixerr"
	"pix_checkout/internal/infrastructure/logger"
	"pix_checkout/internal/usecase/interfaces"
)

const (
	taxIDDigits    = 11
	minPhoneDigits = 10
)

var (
	ErrInvalidTaxID         = pixerr.NewValidationError("cpf", "CPF must have 11 digits")
	ErrInvalidPhone         = pixerr.NewValidationError("phone", "phone must have at least 10 digits")
	ErrInvalidAmount        = pixerr.NewValidationError("amount", "amount must be a positive number of cents")
	ErrInvalidTransactionID = pixerr.NewValidationError("id", "transaction id is required")
	ErrGatewayNotConfigured = errors.New("pix gateway not configured")
)

// IPixChargeUseCase exposes the two PIX operations:
//   - CreateCharge validates and normalizes the payer and submits the purchase.
//   - GetPaymentStatus runs a single status check for a previously created charge.
//
// Polling until a terminal status is the caller's job.
//
//go:generate mockgen -source=pix_charge_usecase.go -destination=../adapter/http/handlers/mocks/mock_pix_charge_usecase.go -package=mocks
type IPixChargeUseCase interface {
	CreateCharge(ctx context.Context, req entities.PixChargeRequest) (entities.PixCharge, error)
	GetPaymentStatus(ctx context.Context, transactionID string) (entities.PaymentStatus, error)
}

type PixChargeUseCase struct {
	gateway interfaces.IPixGateway
}

var _ IPixChargeUseCase = (*PixChargeUseCase)(nil)

func NewPixChargeUseCase(gateway interfaces.IPixGateway) *PixChargeUseCase {
	return &PixChargeUseCase{gateway: gateway}
}

func (u *PixChargeUseCase) CreateCharge(ctx context.Context, req entities.PixChargeRequest) (entities.PixCharge, error) {
	log := logger.Component("pix.usecase")
	log.Info().Int64("amount", req.Amount).Msg("create-charge start")

	normalized, err := normalizeChargeRequest(req)
	if err != nil {
		log.Warn().Err(err).Msg("create-charge rejected by validation")
		return entities.PixCharge{}, err
	}
	if u.gateway == nil {
		log.Error().Msg("create-charge gateway not configured")
		return entities.PixCharge{}, pixerr.Classify("create_charge", ErrGatewayNotConfigured)
	}

	charge, err := u.gateway.CreateCharge(ctx, normalized)
	if err != nil {
		err = pixerr.Classify("create_charge", err)
		log.Error().Err(err).Msg("create-charge gateway failed")
		return entities.PixCharge{}, err
	}
	log.Info().Str("transaction_id", charge.ID).Msg("create-charge success")
	return charge, nil
}

func (u *PixChargeUseCase) GetPaymentStatus(ctx context.Context, transactionID string) (entities.PaymentStatus, error) {
	log := logger.Component("pix.usecase")
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		log.Warn().Msg("payment-status invalid transaction id (empty)")
		return "", ErrInvalidTransactionID
	}
	if u.gateway == nil {
		log.Error().Str("transaction_id", transactionID).Msg("payment-status gateway not configured")
		return "", pixerr.Classify("payment_status", ErrGatewayNotConfigured)
	}

	status, err := u.gateway.GetPaymentStatus(ctx, transactionID)
	if err != nil {
		err = pixerr.Classify("payment_status", err)
		log.Error().Err(err).Str("transaction_id", transactionID).Msg("payment-status gateway failed")
		return "", err
	}
	log.Info().Str("transaction_id", transactionID).Str("status", string(status)).Msg("payment-status success")
	return status, nil
}

func normalizeChargeRequest(req entities.PixChargeRequest) (entities.PixChargeRequest, error) {
	req.TaxID = entities.DigitsOnly(req.TaxID)
	if len(req.TaxID) != taxIDDigits {
		return entities.PixChargeRequest{}, ErrInvalidTaxID
	}
	req.Phone = entities.DigitsOnly(req.Phone)
	if len(req.Phone) < minPhoneDigits {
		return entities.PixChargeRequest{}, ErrInvalidPhone
	}
	if req.Amount <= 0 {
		return entities.PixChargeRequest{}, ErrInvalidAmount
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	return req, nil
}
