package payments

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/mercadopago/sdk-go/pkg/mperror"

	"pix_checkout/internal/domain/pixerr"
)

// Matches `"status":400`, `status=400` and Efí's `Status: 401 ...` prefix.
var sdkStatusCodePattern = regexp.MustCompile(`(?i)"?status"?\s*[:=]\s*(\d{3})`)

type sdkErrorBody struct {
	Message  string `json:"message"`
	Nome     string `json:"nome"`
	Mensagem string `json:"mensagem"`
}

// classifySDKError maps an error returned by a provider SDK. Mercado Pago
// returns a typed *mperror.ResponseError; Efí reports HTTP failures as text,
// either with a status prefix or as its {"nome","mensagem"} error body.
func classifySDKError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return &pixerr.UnexpectedError{Operation: op, Err: err}
	}

	var mpErr *mperror.ResponseError
	if errors.As(err, &mpErr) {
		return &pixerr.GatewayError{Operation: op, StatusCode: mpErr.StatusCode, Message: sdkErrorMessage(mpErr.Message, mpErr.StatusCode)}
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		return &pixerr.ConnectivityError{Operation: op, Err: err}
	}

	msg := err.Error()
	if m := sdkStatusCodePattern.FindStringSubmatch(msg); m != nil {
		code, _ := strconv.Atoi(m[1])
		return &pixerr.GatewayError{Operation: op, StatusCode: code, Message: sdkErrorMessage(msg, code)}
	}
	if body, ok := parseSDKErrorBody(msg); ok && (body.Nome != "" || body.Mensagem != "") {
		// Efí rejection without a status in the text; the code is unknown.
		return &pixerr.GatewayError{Operation: op, Message: sdkErrorMessage(msg, 0)}
	}
	return &pixerr.UnexpectedError{Operation: op, Err: err}
}

// sdkErrorMessage pulls a human message out of an embedded JSON body.
// Mercado Pago uses "message", Efí uses "mensagem". HTML bodies fall back to
// the status text.
func sdkErrorMessage(msg string, status int) string {
	if body, ok := parseSDKErrorBody(msg); ok {
		switch {
		case body.Message != "":
			return body.Message
		case body.Mensagem != "":
			return body.Mensagem
		case body.Nome != "":
			return body.Nome
		}
	}
	trimmed := strings.TrimSpace(msg)
	if trimmed == "" || strings.HasPrefix(trimmed, "<") {
		if text := http.StatusText(status); text != "" {
			return text
		}
	}
	return trimmed
}

func parseSDKErrorBody(msg string) (sdkErrorBody, bool) {
	start := strings.Index(msg, "{")
	if start < 0 {
		return sdkErrorBody{}, false
	}
	var body sdkErrorBody
	if err := json.Unmarshal([]byte(msg[start:]), &body); err != nil {
		return sdkErrorBody{}, false
	}
	return body, true
}
