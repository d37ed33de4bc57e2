package entities

import "testing"

func TestDigitsOnly(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "123.456.789-09", want: "12345678909"},
		{in: "(11) 98765-4321", want: "11987654321"},
		{in: "+55 11 3333 4444", want: "551133334444"},
		{in: "abc", want: ""},
		{in: "", want: ""},
		{in: "١٢٣", want: ""},
	}

	for _, tc := range cases {
		got := DigitsOnly(tc.in)
		if got != tc.want {
			t.Fatalf("DigitsOnly(%q) expected %q got %q", tc.in, tc.want, got)
		}
		if again := DigitsOnly(got); again != got {
			t.Fatalf("DigitsOnly must be idempotent: %q -> %q", got, again)
		}
	}
}

func TestParsePaymentStatus(t *testing.T) {
	for _, s := range PaymentStatuses() {
		got, ok := ParsePaymentStatus(string(s))
		if !ok || got != s {
			t.Fatalf("expected %s to parse, got %q ok=%v", s, got, ok)
		}
	}

	for _, raw := range []string{"", "approved", "PAID", " APPROVED"} {
		if _, ok := ParsePaymentStatus(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestPaymentStatus_IsTerminal(t *testing.T) {
	if PaymentStatusPending.IsTerminal() {
		t.Fatalf("pending must not be terminal")
	}
	for _, s := range []PaymentStatus{PaymentStatusApproved, PaymentStatusFailed, PaymentStatusRejected} {
		if !s.IsTerminal() {
			t.Fatalf("%s must be terminal", s)
		}
	}
}

func TestPaymentStatuses_ReturnsCopy(t *testing.T) {
	all := PaymentStatuses()
	all[0] = "X"
	if PaymentStatuses()[0] != PaymentStatusPending {
		t.Fatalf("PaymentStatuses must not expose internal slice")
	}
}
