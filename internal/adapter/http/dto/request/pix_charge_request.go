package request

import (
	"strings"

	"pix_checkout/internal/domain/entities"
)

// PixChargeCreateRequest is the payload for POST /v1/pix/charges.
//
// cpf and phone may be formatted; the use case strips everything but digits.
type PixChargeCreateRequest struct {
	Name        string `json:"name" binding:"required" example:"Maria Silva"`
	Email       string `json:"email" binding:"required" example:"maria@example.com"`
	CPF         string `json:"cpf" binding:"required" example:"123.456.789-09"`
	Phone       string `json:"phone" binding:"required" example:"(11) 98765-4321"`
	Amount      int64  `json:"amount" binding:"required,gt=0" example:"4990"`
	Description string `json:"description" binding:"required" example:"Plano mensal"`
	UTMQuery    string `json:"utm_query" example:"utm_source=google&utm_campaign=launch"`
}

func (r PixChargeCreateRequest) ToEntity() entities.PixChargeRequest {
	return entities.PixChargeRequest{
		Name:        strings.TrimSpace(r.Name),
		Email:       strings.TrimSpace(r.Email),
		TaxID:       r.CPF,
		Phone:       r.Phone,
		Amount:      r.Amount,
		Description: strings.TrimSpace(r.Description),
		UTMQuery:    r.UTMQuery,
	}
}
