package interfaces

import (
	"context"

	"pix_checkout/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// IPixGateway abstracts the external PIX provider (GhostsPay, Mercado Pago, Efí).
//
// Implementations issue exactly one outbound call per method and never retry.
// Returned errors are the typed kinds from pixerr.
type IPixGateway interface {
	CreateCharge(ctx context.Context, req entities.PixChargeRequest) (entities.PixCharge, error)
	GetPaymentStatus(ctx context.Context, transactionID string) (entities.PaymentStatus, error)
}
