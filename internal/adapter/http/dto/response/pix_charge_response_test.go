package response

import (
	"testing"

	"pix_checkout/internal/domain/entities"
)

func TestFromPixCharge(t *testing.T) {
	res := FromPixCharge(entities.PixCharge{ID: "tx1", PixCode: "000201", PixQRCode: "data:image/png;base64,AAA"})
	if res.ID != "tx1" || res.PixCode != "000201" || res.PixQRCode != "data:image/png;base64,AAA" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromPaymentStatus(t *testing.T) {
	cases := []struct {
		status   entities.PaymentStatus
		terminal bool
	}{
		{entities.PaymentStatusPending, false},
		{entities.PaymentStatusApproved, true},
		{entities.PaymentStatusFailed, true},
		{entities.PaymentStatusRejected, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			res := FromPaymentStatus("tx1", tc.status)
			if res.ID != "tx1" || res.Status != string(tc.status) || res.Terminal != tc.terminal {
				t.Fatalf("unexpected response: %+v", res)
			}
		})
	}
}
