package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/pixerr"
)

type fakeMercadoPago struct {
	createReq  payment.Request
	createResp string
	createErr  error

	getID   int
	getResp string
	getErr  error
}

func (f *fakeMercadoPago) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.createReq = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	var resp payment.Response
	if err := json.Unmarshal([]byte(f.createResp), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (f *fakeMercadoPago) Get(_ context.Context, id int) (*payment.Response, error) {
	f.getID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	var resp payment.Response
	if err := json.Unmarshal([]byte(f.getResp), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(" ")
	require.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMercadoPagoGateway_CreateCharge(t *testing.T) {
	fake := &fakeMercadoPago{createResp: `{
		"id": 123456,
		"status": "pending",
		"point_of_interaction": {"transaction_data": {"qr_code": "000201010212", "qr_code_base64": "AAA"}}
	}`}
	g := &MercadoPagoGateway{client: fake}

	res, err := g.CreateCharge(context.Background(), sampleCharge())
	require.NoError(t, err)
	assert.Equal(t, entities.PixCharge{ID: "123456", PixCode: "000201010212", PixQRCode: "data:image/png;base64,AAA"}, res)

	sent, err := json.Marshal(fake.createReq)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(sent, &body))
	assert.Equal(t, "pix", body["payment_method_id"])
	assert.Equal(t, 49.9, body["transaction_amount"])
	assert.Equal(t, "utm_source=google", body["external_reference"])
	payer := body["payer"].(map[string]any)
	assert.Equal(t, "maria@example.com", payer["email"])
	assert.Equal(t, "Maria", payer["first_name"])
}

func TestMercadoPagoGateway_CreateCharge_MissingQRCode(t *testing.T) {
	g := &MercadoPagoGateway{client: &fakeMercadoPago{createResp: `{"id": 1, "status": "pending"}`}}

	_, err := g.CreateCharge(context.Background(), sampleCharge())
	require.ErrorIs(t, err, pixerr.ErrMalformedResponse)
}

func TestMercadoPagoGateway_CreateCharge_Errors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "api rejection", err: errors.New(`{"message":"invalid payer email","status":400}`), want: pixerr.ErrGateway},
		{name: "network", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, want: pixerr.ErrConnectivity},
		{name: "cancelled", err: context.Canceled, want: pixerr.ErrUnexpected},
		{name: "other", err: errors.New("boom"), want: pixerr.ErrUnexpected},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := &MercadoPagoGateway{client: &fakeMercadoPago{createErr: tc.err}}
			_, err := g.CreateCharge(context.Background(), sampleCharge())
			require.ErrorIs(t, err, tc.want)
		})
	}

	g := &MercadoPagoGateway{client: &fakeMercadoPago{createErr: errors.New(`{"message":"invalid payer email","status":400}`)}}
	_, err := g.CreateCharge(context.Background(), sampleCharge())
	var gwErr *pixerr.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, 400, gwErr.StatusCode)
	assert.Equal(t, "invalid payer email", gwErr.Message)
}

func TestMercadoPagoGateway_GetPaymentStatus(t *testing.T) {
	cases := map[string]entities.PaymentStatus{
		"pending":      entities.PaymentStatusPending,
		"in_process":   entities.PaymentStatusPending,
		"authorized":   entities.PaymentStatusPending,
		"approved":     entities.PaymentStatusApproved,
		"rejected":     entities.PaymentStatusRejected,
		"cancelled":    entities.PaymentStatusFailed,
		"refunded":     entities.PaymentStatusFailed,
		"charged_back": entities.PaymentStatusFailed,
	}
	for providerStatus, want := range cases {
		t.Run(providerStatus, func(t *testing.T) {
			fake := &fakeMercadoPago{getResp: `{"id": 42, "status": "` + providerStatus + `"}`}
			g := &MercadoPagoGateway{client: fake}

			got, err := g.GetPaymentStatus(context.Background(), "42")
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, 42, fake.getID)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakeMercadoPago{getResp: `{"id": 42, "status": "whatever"}`}}
		_, err := g.GetPaymentStatus(context.Background(), "42")
		require.ErrorIs(t, err, pixerr.ErrMalformedResponse)
	})

	t.Run("non numeric id", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakeMercadoPago{}}
		_, err := g.GetPaymentStatus(context.Background(), "abc")
		require.ErrorIs(t, err, pixerr.ErrValidation)
	})
}

func TestSplitNameAndPhone(t *testing.T) {
	first, last := splitName("  Maria  da Silva ")
	assert.Equal(t, "Maria", first)
	assert.Equal(t, "da Silva", last)

	phones := []struct {
		in, area, number string
	}{
		{"5511987654321", "11", "987654321"},
		{"551132123456", "11", "32123456"},
		{"11987654321", "11", "987654321"},
		{"55987654321", "55", "987654321"},
		{"5532123456", "55", "32123456"},
		{"123", "", "123"},
	}
	for _, p := range phones {
		assert.Equal(t, p.area, phoneAreaCode(p.in), p.in)
		assert.Equal(t, p.number, phoneNumber(p.in), p.in)
	}
}
