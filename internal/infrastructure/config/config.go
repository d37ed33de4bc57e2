package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderGhostsPay   = "ghostspay"
	ProviderMercadoPago = "mercadopago"
	ProviderEfi         = "efi"
	ProviderMock        = "mock"

	AuthSchemeRaw    = "raw"
	AuthSchemeBearer = "bearer"

	defaultGatewayBaseURL = "https://app.ghostspaysv1.com"
	defaultTimeout        = 15 * time.Second
)

var (
	ErrUnknownProvider   = errors.New("unknown PIX_PROVIDER")
	ErrUnknownAuthScheme = errors.New("unknown PIX_GATEWAY_AUTH_SCHEME")
)

// Config is read once at startup and passed down explicitly; nothing below
// cmd/api and routes looks at the environment.
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	Provider string
	Gateway  GatewayConfig

	MercadoPagoAccessToken string
	Efi                    EfiConfig
}

// GatewayConfig configures the HTTP gateway client.
type GatewayConfig struct {
	BaseURL    string
	SecretKey  string
	AuthScheme string
	Timeout    time.Duration
}

// EfiConfig mirrors the credential map expected by the Efí SDK.
type EfiConfig struct {
	ClientID     string
	ClientSecret string
	PixKey       string
	CertPath     string
	KeyPath      string
	Sandbox      bool
	Timeout      time.Duration
}

// Load builds a Config from environment variables.
func Load() (Config, error) {
	cfg := Config{
		Port:      getenvInt("PORT", 8080),
		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogFormat: getenvDefault("LOG_FORMAT", "json"),
		Provider:  strings.ToLower(getenvDefault("PIX_PROVIDER", ProviderGhostsPay)),
		Gateway: GatewayConfig{
			BaseURL:    strings.TrimRight(getenvDefault("PIX_GATEWAY_BASE_URL", defaultGatewayBaseURL), "/"),
			SecretKey:  firstNonEmpty(os.Getenv("PIX_GATEWAY_SECRET_KEY"), os.Getenv("GHOSTSPAY_SECRET_KEY")),
			AuthScheme: strings.ToLower(getenvDefault("PIX_GATEWAY_AUTH_SCHEME", AuthSchemeRaw)),
			Timeout:    getenvSeconds("PIX_GATEWAY_TIMEOUT_SECONDS", defaultTimeout),
		},
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		Efi: EfiConfig{
			ClientID:     os.Getenv("EFI_CLIENT_ID"),
			ClientSecret: os.Getenv("EFI_CLIENT_SECRET"),
			PixKey:       os.Getenv("EFI_PIX_KEY"),
			CertPath:     os.Getenv("EFI_CERT_PATH"),
			KeyPath:      os.Getenv("EFI_KEY_PATH"),
			Sandbox:      getenvBool("EFI_SANDBOX"),
			Timeout:      getenvSeconds("PIX_GATEWAY_TIMEOUT_SECONDS", defaultTimeout),
		},
	}
	if isPaymentGatewayMockEnabled() {
		cfg.Provider = ProviderMock
	}

	switch cfg.Provider {
	case ProviderGhostsPay, ProviderMercadoPago, ProviderEfi, ProviderMock:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	switch cfg.Gateway.AuthScheme {
	case AuthSchemeRaw, AuthSchemeBearer:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownAuthScheme, cfg.Gateway.AuthScheme)
	}
	return cfg, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		if getenvBool(key) {
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getenvSeconds(key string, def time.Duration) time.Duration {
	if n := getenvInt(key, 0); n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
