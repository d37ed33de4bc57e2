package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/efipay/sdk-go-apis-efi/src/efipay/pix"
	json "github.com/json-iterator/go"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/pixerr"
	"pix_checkout/internal/infrastructure/config"
	"pix_checkout/internal/infrastructure/logger"
	"pix_checkout/internal/usecase/interfaces"
)

const efiChargeExpirationSeconds = 3600

var (
	ErrMissingEfiCredentials = errors.New("missing EFI_CLIENT_ID or EFI_CLIENT_SECRET")
	ErrMissingEfiPixKey      = errors.New("missing EFI_PIX_KEY")
)

// efiPixAPI is the subset of the Efí SDK used here. The SDK calls are
// synchronous and take no context.
type efiPixAPI interface {
	CreateImmediateCharge(body map[string]interface{}) (string, error)
	DetailCharge(txid string) (string, error)
}

type efiChargeResponse struct {
	TxID          string `json:"txid"`
	Status        string `json:"status"`
	PixCopiaECola string `json:"pixCopiaECola"`
	Loc           struct {
		Location string `json:"location"`
	} `json:"loc"`
}

type EfiGateway struct {
	api    efiPixAPI
	pixKey string
}

var _ interfaces.IPixGateway = (*EfiGateway)(nil)

func NewEfiGateway(cfg config.EfiConfig) (*EfiGateway, error) {
	log := logger.Component("pix.gateway.efi")
	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.ClientSecret) == "" {
		log.Error().Msg("missing efi credentials")
		return nil, ErrMissingEfiCredentials
	}
	if strings.TrimSpace(cfg.PixKey) == "" {
		log.Error().Msg("missing efi pix key")
		return nil, ErrMissingEfiPixKey
	}

	api := pix.NewEfiPay(efiCredentials(cfg))
	log.Info().Bool("sandbox", cfg.Sandbox).Msg("Efí client initialized")
	return newEfiGatewayWithAPI(api, cfg.PixKey), nil
}

func newEfiGatewayWithAPI(api efiPixAPI, pixKey string) *EfiGateway {
	return &EfiGateway{api: api, pixKey: strings.TrimSpace(pixKey)}
}

func efiCredentials(cfg config.EfiConfig) map[string]interface{} {
	timeout := int(cfg.Timeout.Seconds())
	if timeout <= 0 {
		timeout = 30
	}
	return map[string]interface{}{
		"client_id":     cfg.ClientID,
		"client_secret": cfg.ClientSecret,
		"sandbox":       cfg.Sandbox,
		"timeout":       timeout,
		"CA":            cfg.CertPath,
		"Key":           cfg.KeyPath,
	}
}

func (g *EfiGateway) CreateCharge(ctx context.Context, req entities.PixChargeRequest) (entities.PixCharge, error) {
	const op = "create_charge"
	log := logger.Component("pix.gateway.efi")

	body := g.buildChargeBody(req)
	raw, err := callWithContext(ctx, func() (string, error) {
		return g.api.CreateImmediateCharge(body)
	})
	if err != nil {
		err = classifySDKError(op, err)
		log.Error().Err(err).Msg("create immediate charge failed")
		return entities.PixCharge{}, err
	}

	var parsed efiChargeResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Error().Err(err).Msg("charge response unmarshal failed")
		return entities.PixCharge{}, &pixerr.ResponseError{Operation: op, Reason: err.Error()}
	}
	if parsed.TxID == "" || parsed.PixCopiaECola == "" {
		log.Error().Msg("charge response missing txid or pixCopiaECola")
		return entities.PixCharge{}, &pixerr.ResponseError{Operation: op, Reason: "txid or pixCopiaECola missing"}
	}

	log.Info().Str("transaction_id", parsed.TxID).Str("provider_status", parsed.Status).Msg("create success")
	return entities.PixCharge{
		ID:        parsed.TxID,
		PixCode:   parsed.PixCopiaECola,
		PixQRCode: parsed.Loc.Location,
	}, nil
}

func (g *EfiGateway) GetPaymentStatus(ctx context.Context, transactionID string) (entities.PaymentStatus, error) {
	const op = "payment_status"
	log := logger.Component("pix.gateway.efi").With().Str("transaction_id", transactionID).Logger()

	raw, err := callWithContext(ctx, func() (string, error) {
		return g.api.DetailCharge(transactionID)
	})
	if err != nil {
		err = classifySDKError(op, err)
		log.Error().Err(err).Msg("detail charge failed")
		return "", err
	}

	var parsed efiChargeResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return "", &pixerr.ResponseError{Operation: op, Reason: err.Error()}
	}
	status, ok := mapEfiStatus(parsed.Status)
	if !ok {
		log.Error().Str("provider_status", parsed.Status).Msg("unknown provider status")
		return "", &pixerr.ResponseError{Operation: op, Reason: fmt.Sprintf("unknown efi status %q", parsed.Status)}
	}
	log.Info().Str("provider_status", parsed.Status).Str("status", string(status)).Msg("status lookup success")
	return status, nil
}

func (g *EfiGateway) buildChargeBody(req entities.PixChargeRequest) map[string]interface{} {
	body := map[string]interface{}{
		"calendario": map[string]interface{}{"expiracao": efiChargeExpirationSeconds},
		"devedor": map[string]interface{}{
			"cpf":  req.TaxID,
			"nome": req.Name,
		},
		"valor":              map[string]interface{}{"original": centsToReais(req.Amount).StringFixed(2)},
		"chave":              g.pixKey,
		"solicitacaoPagador": req.Description,
	}
	if req.UTMQuery != "" {
		body["infoAdicionais"] = []map[string]interface{}{{"nome": "utm", "valor": req.UTMQuery}}
	}
	return body
}

func mapEfiStatus(s string) (entities.PaymentStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ATIVA":
		return entities.PaymentStatusPending, true
	case "CONCLUIDA":
		return entities.PaymentStatusApproved, true
	case "REMOVIDA_PELO_USUARIO_RECEBEDOR":
		return entities.PaymentStatusFailed, true
	case "REMOVIDA_PELO_PSP":
		return entities.PaymentStatusRejected, true
	}
	return "", false
}

// callWithContext runs a blocking SDK call and returns early when ctx is done.
// The call itself keeps running until the SDK timeout fires.
func callWithContext(ctx context.Context, call func() (string, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	type result struct {
		body string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		body, err := call()
		done <- result{body: body, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.body, r.err
	}
}
