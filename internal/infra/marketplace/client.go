package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"guest-conversion/internal/pkg/config"
	"guest-conversion/internal/usecase/shared"
)

const defaultMaxBodyBytes = 1 << 20

// Client talks JSON to the marketplace REST API. It holds no per-user
// state; the caller's bearer token travels in the request context.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	maxBodyBytes int64
	logger       *slog.Logger
}

func NewClient(cfg config.MarketplaceConfig, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("marketplace: base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("marketplace: invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   httpClient,
		maxBodyBytes: maxBody,
		logger:       logger,
	}, nil
}

// envelope is the shape of every marketplace response.
type envelope struct {
	Success    *bool           `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	PaymentURL string          `json:"paymentUrl"`
}

func (e *envelope) ack() shared.Ack {
	return shared.Ack{Message: e.Message, PaymentURL: e.PaymentURL}
}

// decodeData unmarshals data into v; an absent data field leaves v untouched.
func (e *envelope) decodeData(v any) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return &TransportError{Message: GenericFailureMessage, Err: fmt.Errorf("decode data: %w", err)}
	}
	return nil
}

// doRequest succeeds only for a 2xx status whose envelope says success:true.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any) (*envelope, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("marketplace: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("marketplace: failed to create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token, ok := shared.AccessToken(ctx); ok {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Warn("マーケットプレイスへのリクエストに失敗しました", "method", method, "path", path, "error", err)
		return nil, &TransportError{Err: err}
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, &TransportError{Status: response.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(raw)) > c.maxBodyBytes {
		return nil, &TransportError{Status: response.StatusCode, Err: fmt.Errorf("response body exceeds %d bytes", c.maxBodyBytes)}
	}

	c.logger.Debug("マーケットプレイス応答",
		"method", method, "path", path, "status", response.StatusCode, "elapsed", time.Since(start))

	env, ok := parseEnvelope(raw)
	ok2xx := response.StatusCode >= 200 && response.StatusCode < 300
	switch {
	case !ok:
		return nil, &TransportError{
			Status: response.StatusCode,
			Err:    fmt.Errorf("unreadable response from %s %s", method, path),
		}
	case !ok2xx || env.Success == nil || !*env.Success:
		msg := env.Message
		if msg == "" {
			msg = GenericFailureMessage
		}
		return nil, &BusinessError{Status: response.StatusCode, Message: msg, PaymentURL: env.PaymentURL}
	}
	return env, nil
}

// parseEnvelope also lifts a paymentUrl nested under data to the top level.
func parseEnvelope(raw []byte) (*envelope, bool) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false
	}
	if env.Success == nil && env.Message == "" {
		return nil, false
	}
	if env.PaymentURL == "" && len(env.Data) > 0 && env.Data[0] == '{' {
		var nested struct {
			PaymentURL string `json:"paymentUrl"`
		}
		if err := json.Unmarshal(env.Data, &nested); err == nil {
			env.PaymentURL = nested.PaymentURL
		}
	}
	return &env, true
}
