package request

import (
	"testing"

	"pix_checkout/internal/domain/entities"
)

func TestPixChargeCreateRequest_ToEntity(t *testing.T) {
	r := PixChargeCreateRequest{
		Name:        " Maria Silva ",
		Email:       " maria@example.com",
		CPF:         "123.456.789-09",
		Phone:       "(11) 98765-4321",
		Amount:      4990,
		Description: " Plano mensal ",
		UTMQuery:    "utm_source=google",
	}

	got := r.ToEntity()
	want := entities.PixChargeRequest{
		Name:        "Maria Silva",
		Email:       "maria@example.com",
		TaxID:       "123.456.789-09",
		Phone:       "(11) 98765-4321",
		Amount:      4990,
		Description: "Plano mensal",
		UTMQuery:    "utm_source=google",
	}
	if got != want {
		t.Fatalf("unexpected entity:\n got %+v\nwant %+v", got, want)
	}
}
