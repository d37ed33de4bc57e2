package response

import "pix_checkout/internal/domain/entities"

type PixChargeResponse struct {
	ID        string `json:"id" example:"tx_01HZY3"`
	PixCode   string `json:"pix_code" example:"00020126580014BR.GOV.BCB.PIX"`
	PixQRCode string `json:"pix_qr_code" example:"data:image/png;base64,iVBORw0KGgo"`
}

type PixChargeStatusResponse struct {
	ID       string `json:"id" example:"tx_01HZY3"`
	Status   string `json:"status" example:"PENDING" enums:"PENDING,APPROVED,FAILED,REJECTED"`
	Terminal bool   `json:"terminal" example:"false"`
}

func FromPixCharge(c entities.PixCharge) PixChargeResponse {
	return PixChargeResponse{
		ID:        c.ID,
		PixCode:   c.PixCode,
		PixQRCode: c.PixQRCode,
	}
}

// FromPaymentStatus reports whether polling should stop alongside the status.
func FromPaymentStatus(id string, s entities.PaymentStatus) PixChargeStatusResponse {
	return PixChargeStatusResponse{
		ID:       id,
		Status:   string(s),
		Terminal: s.IsTerminal(),
	}
}
