package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/pixerr"
	"pix_checkout/internal/infrastructure/logger"
	"pix_checkout/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// mercadoPagoPayments is the subset of payment.Client used here.
type mercadoPagoPayments interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type mpPaymentResponse struct {
	ID                 int64  `json:"id"`
	Status             string `json:"status"`
	StatusDetail       string `json:"status_detail"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
			TicketURL    string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

// MercadoPagoGateway creates PIX payments through the Mercado Pago SDK.
type MercadoPagoGateway struct {
	client mercadoPagoPayments
}

var _ interfaces.IPixGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	log := logger.Component("pix.gateway.mercadopago")
	if strings.TrimSpace(accessToken) == "" {
		log.Error().Msg("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Msg("failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, req entities.PixChargeRequest) (entities.PixCharge, error) {
	const op = "create_charge"
	log := logger.Component("pix.gateway.mercadopago")

	payload := buildMercadoPagoPixPayload(req)
	raw, err := json.Marshal(payload)
	if err != nil {
		return entities.PixCharge{}, &pixerr.UnexpectedError{Operation: op, Err: err}
	}
	var mpReq payment.Request
	if err := json.Unmarshal(raw, &mpReq); err != nil {
		log.Error().Err(err).Msg("payload unmarshal failed")
		return entities.PixCharge{}, &pixerr.UnexpectedError{Operation: op, Err: err}
	}

	log.Info().Int("payload_len", len(raw)).Msg("create start")
	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		err = classifySDKError(op, err)
		log.Error().Err(err).Msg("sdk create failed")
		return entities.PixCharge{}, err
	}

	parsed, err := decodeMercadoPagoResponse(op, resp)
	if err != nil {
		log.Error().Err(err).Msg("response decode failed")
		return entities.PixCharge{}, err
	}
	data := parsed.PointOfInteraction.TransactionData
	if parsed.ID == 0 || data.QRCode == "" {
		return entities.PixCharge{}, &pixerr.ResponseError{Operation: op, Reason: "payment id or pix qr_code missing"}
	}

	qr := data.TicketURL
	if data.QRCodeBase64 != "" {
		qr = "data:image/png;base64," + data.QRCodeBase64
	}
	log.Info().Int64("provider_payment_id", parsed.ID).Str("provider_status", parsed.Status).Msg("create success")
	return entities.PixCharge{
		ID:        strconv.FormatInt(parsed.ID, 10),
		PixCode:   data.QRCode,
		PixQRCode: qr,
	}, nil
}

func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, transactionID string) (entities.PaymentStatus, error) {
	const op = "payment_status"
	log := logger.Component("pix.gateway.mercadopago").With().Str("transaction_id", transactionID).Logger()

	id, err := strconv.Atoi(transactionID)
	if err != nil {
		return "", pixerr.NewValidationError("id", "mercado pago payment id must be numeric")
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		err = classifySDKError(op, err)
		log.Error().Err(err).Msg("sdk get failed")
		return "", err
	}
	parsed, err := decodeMercadoPagoResponse(op, resp)
	if err != nil {
		return "", err
	}

	status, ok := mapMercadoPagoStatus(parsed.Status)
	if !ok {
		log.Error().Str("provider_status", parsed.Status).Msg("unknown provider status")
		return "", &pixerr.ResponseError{Operation: op, Reason: fmt.Sprintf("unknown mercado pago status %q", parsed.Status)}
	}
	log.Info().Str("provider_status", parsed.Status).Str("status", string(status)).Msg("status lookup success")
	return status, nil
}

func buildMercadoPagoPixPayload(req entities.PixChargeRequest) map[string]any {
	firstName, lastName := splitName(req.Name)
	return map[string]any{
		"transaction_amount": centsToReais(req.Amount).InexactFloat64(),
		"payment_method_id":  "pix",
		"description":        req.Description,
		"external_reference": req.UTMQuery,
		"payer": map[string]any{
			"email":      req.Email,
			"first_name": firstName,
			"last_name":  lastName,
			"identification": map[string]any{
				"type":   "CPF",
				"number": req.TaxID,
			},
		},
		"additional_info": map[string]any{
			"items": []map[string]any{{
				"title":      req.Description,
				"quantity":   1,
				"unit_price": centsToReais(req.Amount).InexactFloat64(),
			}},
			"payer": map[string]any{
				"first_name": firstName,
				"last_name":  lastName,
				"phone": map[string]any{
					"area_code": phoneAreaCode(req.Phone),
					"number":    phoneNumber(req.Phone),
				},
			},
		},
	}
}

func decodeMercadoPagoResponse(op string, resp *payment.Response) (mpPaymentResponse, error) {
	if resp == nil {
		return mpPaymentResponse{}, &pixerr.ResponseError{Operation: op, Reason: "empty response"}
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return mpPaymentResponse{}, &pixerr.UnexpectedError{Operation: op, Err: err}
	}
	var parsed mpPaymentResponse
	if err := json.Unmarshal(b, &parsed); err != nil {
		return mpPaymentResponse{}, &pixerr.ResponseError{Operation: op, Reason: err.Error()}
	}
	return parsed, nil
}

func mapMercadoPagoStatus(s string) (entities.PaymentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "in_process", "authorized", "in_mediation":
		return entities.PaymentStatusPending, true
	case "approved":
		return entities.PaymentStatusApproved, true
	case "rejected":
		return entities.PaymentStatusRejected, true
	case "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusFailed, true
	}
	return "", false
}

func centsToReais(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// nationalPhone drops the 55 country code. Ten and eleven digit numbers are
// already national, even when the area code itself is 55.
func nationalPhone(digits string) string {
	if len(digits) >= 12 {
		return strings.TrimPrefix(digits, "55")
	}
	return digits
}

func phoneAreaCode(digits string) string {
	digits = nationalPhone(digits)
	if len(digits) < 10 {
		return ""
	}
	return digits[:2]
}

func phoneNumber(digits string) string {
	digits = nationalPhone(digits)
	if len(digits) < 10 {
		return digits
	}
	return digits[2:]
}
