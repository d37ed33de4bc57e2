package payments

import (
	"fmt"

	"pix_checkout/internal/infrastructure/config"
	"pix_checkout/internal/infrastructure/logger"
	"pix_checkout/internal/usecase/interfaces"
)

// NewPixGateway builds the gateway selected by cfg.Provider.
func NewPixGateway(cfg config.Config) (interfaces.IPixGateway, error) {
	log := logger.Component("pix.gateway")
	log.Info().Str("provider", cfg.Provider).Msg("selecting pix provider")

	switch cfg.Provider {
	case config.ProviderGhostsPay:
		g, err := NewGhostsPayGateway(cfg.Gateway)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderMercadoPago:
		g, err := NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderEfi:
		g, err := NewEfiGateway(cfg.Efi)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderMock:
		return NewMockGateway(), nil
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Provider)
}
