package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "pix_checkout/internal/adapter/http/dto/request"
	response "pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/domain/pixerr"
	"pix_checkout/internal/infrastructure/logger"
	"pix_checkout/internal/usecase"
	"pix_checkout/pkg"
)

var errInvalidChargePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PixChargeHandler handles HTTP requests for PIX charges.
type PixChargeHandler struct {
	usecase usecase.IPixChargeUseCase
}

func NewPixChargeHandler(uc usecase.IPixChargeUseCase) *PixChargeHandler {
	return &PixChargeHandler{usecase: uc}
}

// CreateCharge godoc
// @Summary      Create a PIX charge
// @Description  Validates the payer and submits a purchase to the configured PIX provider.
// @Tags         pix
// @Accept       json
// @Produce      json
// @Param        charge  body      request.PixChargeCreateRequest  true  "Charge"
// @Success      201     {object}  response.PixChargeResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      502     {object}  pkg.HTTPError
// @Failure      503     {object}  pkg.HTTPError
// @Failure      500     {object}  pkg.HTTPError
// @Router       /pix/charges [post]
func (h *PixChargeHandler) CreateCharge(c *gin.Context) {
	log := logger.Component("pix.handler").With().Str("request_id", requestID(c)).Logger()

	var payload request.PixChargeCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Warn().Err(err).Msg("create-charge invalid payload")
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	charge, err := h.usecase.CreateCharge(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPixChargeError(err)
		log.Error().Err(err).Str("code", appErr.Code).Msg("create-charge failed")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info().Str("transaction_id", charge.ID).Msg("create-charge success")

	c.JSON(http.StatusCreated, response.FromPixCharge(charge))
}

// GetChargeStatus godoc
// @Summary      Check a PIX charge status
// @Description  Runs one status lookup against the provider. Clients poll until terminal is true.
// @Tags         pix
// @Produce      json
// @Param        id   path      string  true  "Transaction id"
// @Success      200  {object}  response.PixChargeStatusResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /pix/charges/{id}/status [get]
func (h *PixChargeHandler) GetChargeStatus(c *gin.Context) {
	id := c.Param("id")
	log := logger.Component("pix.handler").With().Str("request_id", requestID(c)).Str("transaction_id", id).Logger()

	status, err := h.usecase.GetPaymentStatus(c.Request.Context(), id)
	if err != nil {
		appErr := mapPixChargeError(err)
		log.Error().Err(err).Str("code", appErr.Code).Msg("payment-status failed")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info().Str("status", string(status)).Msg("payment-status success")

	c.JSON(http.StatusOK, response.FromPaymentStatus(id, status))
}

func mapPixChargeError(err error) *pkg.AppError {
	var gwErr *pixerr.GatewayError
	switch {
	case errors.Is(err, usecase.ErrInvalidTaxID):
		return pkg.NewDomainErrorSimple("INVALID_TAX_ID", "CPF must have 11 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Phone must have at least 10 digits", http.StatusBadRequest)
	case errors.Is(err, pixerr.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &gwErr) && (gwErr.StatusCode == http.StatusUnauthorized || gwErr.StatusCode == http.StatusForbidden):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusBadGateway)
	case errors.As(err, &gwErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_REJECTED", gwErr.Message, err, http.StatusBadGateway)
	case errors.Is(err, pixerr.ErrConnectivity):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Could not reach the payment provider, check your connection and try again", err, http.StatusServiceUnavailable)
	case errors.Is(err, pixerr.ErrMalformedResponse):
		return pkg.NewDomainError("PAYMENT_PROVIDER_BAD_RESPONSE", "Payment provider returned an invalid response", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
