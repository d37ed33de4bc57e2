package config

import (
	"errors"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "PIX_PROVIDER", "PIX_GATEWAY_BASE_URL",
		"PIX_GATEWAY_SECRET_KEY", "GHOSTSPAY_SECRET_KEY", "PIX_GATEWAY_AUTH_SCHEME",
		"PIX_GATEWAY_TIMEOUT_SECONDS", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "MERCADOPAGO_ACCESS_TOKEN",
		"EFI_CLIENT_ID", "EFI_CLIENT_SECRET", "EFI_PIX_KEY", "EFI_CERT_PATH", "EFI_KEY_PATH", "EFI_SANDBOX",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.Provider != ProviderGhostsPay {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Gateway.BaseURL != defaultGatewayBaseURL || cfg.Gateway.AuthScheme != AuthSchemeRaw {
		t.Fatalf("unexpected gateway defaults: %+v", cfg.Gateway)
	}
	if cfg.Gateway.Timeout != 15*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.Gateway.Timeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PIX_GATEWAY_BASE_URL", "http://gateway.local/")
	t.Setenv("GHOSTSPAY_SECRET_KEY", "legacy-secret")
	t.Setenv("PIX_GATEWAY_AUTH_SCHEME", "BEARER")
	t.Setenv("PIX_GATEWAY_TIMEOUT_SECONDS", "3")
	t.Setenv("EFI_SANDBOX", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.Gateway.BaseURL != "http://gateway.local" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Gateway.BaseURL)
	}
	if cfg.Gateway.SecretKey != "legacy-secret" {
		t.Fatalf("expected legacy secret fallback, got %q", cfg.Gateway.SecretKey)
	}
	if cfg.Gateway.AuthScheme != AuthSchemeBearer || cfg.Gateway.Timeout != 3*time.Second {
		t.Fatalf("unexpected gateway config: %+v", cfg.Gateway)
	}
	if !cfg.Efi.Sandbox {
		t.Fatalf("expected efi sandbox")
	}

	t.Setenv("PIX_GATEWAY_SECRET_KEY", "primary-secret")
	cfg, _ = Load()
	if cfg.Gateway.SecretKey != "primary-secret" {
		t.Fatalf("expected primary secret to win, got %q", cfg.Gateway.SecretKey)
	}
}

func TestLoad_MockSwitch(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIX_PROVIDER", "mercadopago")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != ProviderMock {
		t.Fatalf("expected mock provider, got %s", cfg.Provider)
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIX_PROVIDER", "paypal")
	if _, err := Load(); !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}

	clearEnv(t)
	t.Setenv("PIX_GATEWAY_AUTH_SCHEME", "basic")
	if _, err := Load(); !errors.Is(err, ErrUnknownAuthScheme) {
		t.Fatalf("expected ErrUnknownAuthScheme, got %v", err)
	}
}
