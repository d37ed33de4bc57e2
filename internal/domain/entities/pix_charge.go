package entities

import "strings"

// PaymentStatus is the gateway-side state of a PIX charge.
//
// The set is closed: anything the gateway reports outside of it is treated as a
// malformed response rather than passed through.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

var paymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusApproved,
	PaymentStatusFailed,
	PaymentStatusRejected,
}

// PaymentStatuses returns the closed set of statuses, in declaration order.
func PaymentStatuses() []PaymentStatus {
	out := make([]PaymentStatus, len(paymentStatuses))
	copy(out, paymentStatuses)
	return out
}

// ParsePaymentStatus accepts only the four known values (exact match).
func ParsePaymentStatus(v string) (PaymentStatus, bool) {
	for _, s := range paymentStatuses {
		if string(s) == v {
			return s, true
		}
	}
	return "", false
}

// IsTerminal reports whether polling can stop.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusApproved, PaymentStatusFailed, PaymentStatusRejected:
		return true
	}
	return false
}

// PixChargeRequest is the purchase request sent to the gateway.
//
// TaxID (CPF) and Phone are expected to be normalized with DigitsOnly by the
// use case before a gateway sees them. Amount is in cents.
type PixChargeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	TaxID       string `json:"cpf"`
	Phone       string `json:"phone"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	UTMQuery    string `json:"utm_query"`
}

// PixCharge is the result of a successful charge submission.
type PixCharge struct {
	ID        string `json:"id"`
	PixCode   string `json:"pix_code"`
	PixQRCode string `json:"pix_qr_code"`
}

// DigitsOnly strips every non-digit rune. Applying it twice is a no-op.
func DigitsOnly(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
