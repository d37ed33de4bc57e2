package payments

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/json-iterator/go"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/pixerr"
	"pix_checkout/internal/infrastructure/config"
	"pix_checkout/internal/infrastructure/logger"
	"pix_checkout/internal/usecase/interfaces"
)

const (
	purchasePath       = "/api/v1/transaction.purchase"
	paymentDetailsPath = "/api/v1/transaction.getPaymentDetails"

	paymentMethodPIX = "PIX"
	maxResponseBytes = 1 << 20
)

var ErrMissingGatewaySecret = errors.New("missing PIX_GATEWAY_SECRET_KEY")

type purchaseItem struct {
	UnitPrice int64  `json:"unitPrice"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Tangible  bool   `json:"tangible"`
}

type purchaseRequest struct {
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	CPF           string         `json:"cpf"`
	Phone         string         `json:"phone"`
	PaymentMethod string         `json:"paymentMethod"`
	Amount        int64          `json:"amount"`
	Traceable     bool           `json:"traceable"`
	UTMQuery      string         `json:"utmQuery"`
	Items         []purchaseItem `json:"items"`
}

type purchaseResponse struct {
	ID        string `json:"id"`
	PixCode   string `json:"pixCode"`
	PixQRCode string `json:"pixQrCode"`
}

type paymentDetailsResponse struct {
	Status string `json:"status"`
}

// GhostsPayGateway talks to the GhostsPay HTTP API.
//
// The secret is formatted once at construction according to the configured
// auth scheme ("raw" or "bearer").
type GhostsPayGateway struct {
	baseURL       string
	authorization string
	client        *http.Client
}

var _ interfaces.IPixGateway = (*GhostsPayGateway)(nil)

type GhostsPayOption func(*GhostsPayGateway)

// WithHTTPClient replaces the default pooled client.
func WithHTTPClient(c *http.Client) GhostsPayOption {
	return func(g *GhostsPayGateway) {
		if c != nil {
			g.client = c
		}
	}
}

func NewGhostsPayGateway(cfg config.GatewayConfig, opts ...GhostsPayOption) (*GhostsPayGateway, error) {
	log := logger.Component("pix.gateway")
	secret := strings.TrimSpace(cfg.SecretKey)
	if secret == "" {
		log.Error().Msg("missing gateway secret")
		return nil, ErrMissingGatewaySecret
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	g := &GhostsPayGateway{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		authorization: authorizationValue(cfg.AuthScheme, secret),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	log.Info().Str("base_url", g.baseURL).Str("auth_scheme", cfg.AuthScheme).Msg("GhostsPay client initialized")
	return g, nil
}

func authorizationValue(scheme, secret string) string {
	if strings.EqualFold(scheme, config.AuthSchemeBearer) {
		return "Bearer " + secret
	}
	return secret
}

func (g *GhostsPayGateway) CreateCharge(ctx context.Context, req entities.PixChargeRequest) (entities.PixCharge, error) {
	const op = "create_charge"
	log := logger.Component("pix.gateway")

	body, err := json.Marshal(purchaseRequest{
		Name:          req.Name,
		Email:         req.Email,
		CPF:           req.TaxID,
		Phone:         req.Phone,
		PaymentMethod: paymentMethodPIX,
		Amount:        req.Amount,
		Traceable:     true,
		UTMQuery:      req.UTMQuery,
		Items: []purchaseItem{{
			UnitPrice: req.Amount,
			Title:     req.Description,
			Quantity:  1,
			Tangible:  false,
		}},
	})
	if err != nil {
		log.Error().Err(err).Msg("purchase payload marshal failed")
		return entities.PixCharge{}, &pixerr.UnexpectedError{Operation: op, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+purchasePath, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("purchase request build failed")
		return entities.PixCharge{}, &pixerr.UnexpectedError{Operation: op, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", g.authorization)

	log.Info().Str("url", httpReq.URL.String()).Int("payload_len", len(body)).Msg("purchase start")
	status, respBody, err := g.do(op, httpReq)
	if err != nil {
		return entities.PixCharge{}, err
	}

	if status < 200 || status >= 300 {
		msg := extractGatewayMessage(status, respBody)
		log.Error().Int("status", status).Str("message", msg).Msg("purchase rejected by gateway")
		return entities.PixCharge{}, &pixerr.GatewayError{Operation: op, StatusCode: status, Message: msg}
	}

	if reason := validateAgainst(purchaseResponseSchema, respBody); reason != "" {
		log.Error().Int("status", status).Str("reason", reason).Msg("purchase response failed schema validation")
		return entities.PixCharge{}, &pixerr.ResponseError{Operation: op, Reason: reason}
	}
	var parsed purchaseResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		log.Error().Err(err).Msg("purchase response unmarshal failed")
		return entities.PixCharge{}, &pixerr.ResponseError{Operation: op, Reason: err.Error()}
	}

	log.Info().Str("transaction_id", parsed.ID).Msg("purchase success")
	return entities.PixCharge{ID: parsed.ID, PixCode: parsed.PixCode, PixQRCode: parsed.PixQRCode}, nil
}

func (g *GhostsPayGateway) GetPaymentStatus(ctx context.Context, transactionID string) (entities.PaymentStatus, error) {
	const op = "payment_status"
	log := logger.Component("pix.gateway").With().Str("transaction_id", transactionID).Logger()

	statusURL := fmt.Sprintf("%s%s?id=%s", g.baseURL, paymentDetailsPath, url.QueryEscape(transactionID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		log.Error().Err(err).Msg("status request build failed")
		return "", &pixerr.UnexpectedError{Operation: op, Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", g.authorization)

	status, respBody, err := g.do(op, httpReq)
	if err != nil {
		return "", err
	}

	if status < 200 || status >= 300 {
		log.Error().Int("status", status).Str("body", truncate(respBody, 512)).Msg("status lookup rejected by gateway")
		return "", &pixerr.GatewayError{
			Operation:  op,
			StatusCode: status,
			Message:    fmt.Sprintf("status lookup failed with HTTP %d", status),
		}
	}

	if reason := validateAgainst(paymentDetailsResponseSchema, respBody); reason != "" {
		log.Error().Str("reason", reason).Msg("status response failed schema validation")
		return "", &pixerr.ResponseError{Operation: op, Reason: reason}
	}
	var parsed paymentDetailsResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		log.Error().Err(err).Msg("status response unmarshal failed")
		return "", &pixerr.ResponseError{Operation: op, Reason: err.Error()}
	}
	paymentStatus, ok := entities.ParsePaymentStatus(parsed.Status)
	if !ok {
		return "", &pixerr.ResponseError{Operation: op, Reason: fmt.Sprintf("unknown status %q", parsed.Status)}
	}

	log.Info().Str("status", string(paymentStatus)).Msg("status lookup success")
	return paymentStatus, nil
}

// do sends the request and reads the whole body. Transport failures become
// ConnectivityError; a cancelled caller context is reported as unexpected.
func (g *GhostsPayGateway) do(op string, req *http.Request) (int, []byte, error) {
	log := logger.Component("pix.gateway")

	resp, err := g.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn().Err(err).Str("operation", op).Msg("request cancelled by caller")
			return 0, nil, &pixerr.UnexpectedError{Operation: op, Err: err}
		}
		log.Error().Err(err).Str("operation", op).Msg("gateway unreachable")
		return 0, nil, &pixerr.ConnectivityError{Operation: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Error().Err(err).Str("operation", op).Int("status", resp.StatusCode).Msg("response body read failed")
		return 0, nil, &pixerr.UnexpectedError{Operation: op, Err: err}
	}
	log.Debug().Str("operation", op).Int("status", resp.StatusCode).Int("body_len", len(body)).Msg("gateway responded")
	return resp.StatusCode, body, nil
}

// extractGatewayMessage prefers the JSON "message" field. A JSON body without
// one yields "Erro <code>"; the status text is used only for non-JSON bodies.
func extractGatewayMessage(status int, body []byte) string {
	fallback := fmt.Sprintf("Erro %d", status)

	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if obj, ok := parsed.(map[string]interface{}); ok {
			if msg, ok := obj["message"].(string); ok && strings.TrimSpace(msg) != "" {
				return msg
			}
		}
		return fallback
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fallback
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
