package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"pix_checkout/internal/infrastructure/config"
)

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter_MockProvider(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(config.Config{Port: 8080, LogLevel: "debug", Provider: config.ProviderMock})

	t.Run("ping", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/ping", "")
		if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
			t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Fatalf("expected request id header")
		}
	})

	t.Run("create then poll", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/pix/charges", `{"name":"Maria Silva","email":"maria@example.com","cpf":"123.456.789-09","phone":"(11) 98765-4321","amount":4990,"description":"Plano mensal"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var charge map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &charge); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if charge["id"] == "" || charge["pix_code"] == "" || charge["pix_qr_code"] == "" {
			t.Fatalf("incomplete charge: %+v", charge)
		}

		w = serve(r, http.MethodGet, "/v1/pix/charges/"+charge["id"]+"/status", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var status struct {
			Status   string `json:"status"`
			Terminal bool   `json:"terminal"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if status.Status != "APPROVED" || !status.Terminal {
			t.Fatalf("unexpected status: %+v", status)
		}
	})

	t.Run("invalid cpf", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/pix/charges", `{"name":"Maria","email":"m@x.com","cpf":"123","phone":"11987654321","amount":10,"description":"d"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestNewRouter_GatewayNotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(config.Config{Port: 8080, LogLevel: "debug", Provider: config.ProviderGhostsPay})

	w := serve(r, http.MethodGet, "/v1/pix/charges/tx1/status", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["code"] != "INTERNAL_ERROR" {
		t.Fatalf("expected INTERNAL_ERROR, got %+v", body)
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setMiddlewares(r)
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/panic", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
