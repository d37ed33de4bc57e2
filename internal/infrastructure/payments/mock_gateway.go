package payments

import (
	"context"

	"github.com/google/uuid"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/infrastructure/logger"
	"pix_checkout/internal/usecase/interfaces"
)

// MockGateway approves every charge without leaving the process. Used for
// local development and demos (PAYMENT_GATEWAY_MOCK).
type MockGateway struct{}

var _ interfaces.IPixGateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	log := logger.Component("pix.gateway.mock")
	log.Info().Msg("mock mode enabled")
	return &MockGateway{}
}

func (g *MockGateway) CreateCharge(ctx context.Context, req entities.PixChargeRequest) (entities.PixCharge, error) {
	if err := ctx.Err(); err != nil {
		return entities.PixCharge{}, classifySDKError("create_charge", err)
	}
	id := uuid.NewString()
	amount := centsToReais(req.Amount).StringFixed(2)
	log := logger.Component("pix.gateway.mock")
	log.Info().Str("transaction_id", id).Str("amount", amount).Msg("mock create success")
	return entities.PixCharge{
		ID:        id,
		PixCode:   staticBRCode(id, id, amount),
		PixQRCode: "https://pix.mock.local/qr/" + id,
	}, nil
}

func (g *MockGateway) GetPaymentStatus(ctx context.Context, transactionID string) (entities.PaymentStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", classifySDKError("payment_status", err)
	}
	log := logger.Component("pix.gateway.mock")
	log.Info().Str("transaction_id", transactionID).Msg("mock status approved")
	return entities.PaymentStatusApproved, nil
}
