// Package catalogapi implements the backend gateways as typed REST request
// functions. The package holds no catalog state; it normalizes transport
// outcomes into domain errors at the boundary.
package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/domain/gateway"
	"storefront/internal/infra/session"

	domainerrors "storefront/internal/domain/errors"
	stderrors "storefront/internal/errors"

	"github.com/pkg/errors"
)

const contentTypeJSON = "application/json"

// stockMarkers are the fragments sniffed out of an unstructured failure
// payload to recognize a stock-exhaustion outcome when the backend returns
// no structured code.
var stockMarkers = []string{"stock", "hết hàng", "庫存"}

// Client is the shared REST client behind every gateway. The bearer
// credential travels in the request context; a call without one
// short-circuits before reaching the network.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates the shared backend client.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Backend.Timeout},
		logger:  logger,
	}
}

// newRequest builds an authenticated request for the backend. Returns
// gateway.ErrUnauthenticated when the context carries no credential.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	token := session.TokenFromContext(ctx)
	if token == "" {
		return nil, gateway.ErrUnauthenticated
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create backend request")
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return req, nil
}

// doJSON executes the request and decodes a 2xx response body into out
// (skipped when out is nil). Non-success outcomes become domain errors.
func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "backend request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.failureFromResponse(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode backend response")
	}

	return nil
}

// failurePayload covers the shapes the backend is known to produce for
// error bodies.
type failurePayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Errors  []struct {
		DefaultMessage string `json:"defaultMessage"`
	} `json:"errors"`
}

// failureFromResponse turns a non-success response into a domain error.
// The backend message is extracted verbatim when present; a 404-class
// outcome additionally matches gateway.ErrNotFound, and stock exhaustion
// matches gateway.ErrInsufficientStock.
func (c *Client) failureFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	code, message := extractFailure(body)

	if resp.StatusCode == http.StatusNotFound {
		return stderrors.Join(
			gateway.ErrNotFound,
			domainerrors.NewRemoteError(resp.StatusCode, code, message),
		)
	}

	if isStockFailure(code, message) {
		if code == "" {
			// The structured code was absent and the outcome was only
			// recognized by text sniffing. Keep the ambiguity visible.
			c.logger.Warn("stock exhaustion detected by message sniffing, backend returned no structured code",
				slog.String("message", message),
				slog.Int("status", resp.StatusCode),
			)
			code = "INSUFFICIENT_STOCK"
		}

		return stderrors.Join(
			gateway.ErrInsufficientStock,
			domainerrors.NewRemoteError(resp.StatusCode, code, message),
		)
	}

	return domainerrors.NewRemoteError(resp.StatusCode, code, message)
}

// extractFailure pulls the structured code and the most specific message
// out of an error body: message, error, errors[0].defaultMessage, then the
// raw text.
func extractFailure(body []byte) (code, message string) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", ""
	}

	var payload failurePayload
	if err := json.Unmarshal(body, &payload); err == nil {
		code = payload.Code
		switch {
		case payload.Message != "":
			return code, payload.Message
		case payload.Error != "":
			return code, payload.Error
		case len(payload.Errors) > 0 && payload.Errors[0].DefaultMessage != "":
			return code, payload.Errors[0].DefaultMessage
		}
	}

	return code, trimmed
}

// isStockFailure recognizes a stock-exhaustion outcome, preferring the
// structured code and falling back to text sniffing.
func isStockFailure(code, message string) bool {
	if strings.EqualFold(code, "INSUFFICIENT_STOCK") || strings.EqualFold(code, "OUT_OF_STOCK") {
		return true
	}
	if code != "" {
		return false
	}

	lowered := strings.ToLower(message)
	for _, marker := range stockMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}

	return false
}

// encodeJSON marshals a request payload into a reader.
func encodeJSON(payload any) (io.Reader, error) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return nil, errors.Wrap(err, "failed to encode request payload")
	}

	return buf, nil
}
