package cpf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/clientes/backend/internal/domain/shared/valueobject"
	"github.com/clientes/backend/internal/infrastructure/logger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// maxResponseBytes bounds how much of the remote answer is read
const maxResponseBytes = 4 << 10

// RemoteValidator asks an external HTTP service whether a CPF is valid.
//
// The request is GET {baseURL}/{cpf}. A 2xx answer whose body is the bare
// literal true, or a JSON object with "valido" or "valid" set to true, means
// valid. Anything else, including timeouts, is treated as invalid.
type RemoteValidator struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewRemoteValidator creates a RemoteValidator with a per-request timeout
func NewRemoteValidator(baseURL string, timeout time.Duration, zl *zap.Logger) *RemoteValidator {
	return &RemoteValidator{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: zl,
	}
}

func (v *RemoteValidator) Validate(ctx context.Context, cpf string) bool {
	// Malformed input never leaves the process.
	if !valueobject.IsWellFormedCPF(cpf) {
		return false
	}

	valid, err := v.query(ctx, cpf)
	if err != nil {
		v.logger.Warn("Remote CPF validation failed, treating CPF as invalid",
			zap.String("request_id", logger.GetRequestID(ctx)),
			zap.Error(err),
		)
		return false
	}
	return valid
}

func (v *RemoteValidator) query(ctx context.Context, cpf string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/"+url.PathEscape(cpf), nil)
	if err != nil {
		return false, fmt.Errorf("cpf: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("cpf: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return false, fmt.Errorf("cpf: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("cpf: HTTP %d", resp.StatusCode)
	}
	return parseAnswer(body)
}

type remoteAnswer struct {
	Valido *bool `json:"valido"`
	Valid  *bool `json:"valid"`
}

// parseAnswer reads a bare boolean or an object carrying "valido" or "valid"
func parseAnswer(body []byte) (bool, error) {
	body = bytes.TrimSpace(body)
	switch strings.ToLower(string(body)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	var answer remoteAnswer
	if err := json.Unmarshal(body, &answer); err != nil {
		return false, fmt.Errorf("cpf: unexpected response body: %w", err)
	}
	switch {
	case answer.Valido != nil:
		return *answer.Valido, nil
	case answer.Valid != nil:
		return *answer.Valid, nil
	default:
		return false, fmt.Errorf("cpf: response has neither valido nor valid")
	}
}
