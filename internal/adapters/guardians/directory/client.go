package directory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vet-clinic-backend/internal/platform/httpclient"
	"vet-clinic-backend/internal/ports/guardians"

	"github.com/google/uuid"
)

var (
	ErrNotConfigured = errors.New("guardian directory not configured")
	ErrUnauthorized  = errors.New("guardian directory unauthorized")
	ErrUpstream      = errors.New("guardian directory upstream error")
)

// Config del cliente del directorio de tutores.
type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
	Retries int
}

type Client struct {
	apiKey       string
	apiKeyHeader string
	http         *httpclient.Client
}

var _ guardians.Directory = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), timeout)
	if err != nil {
		return nil, err
	}
	hc.WithRetries(cfg.Retries, 200*time.Millisecond)

	return &Client{
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		http:         hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http.BaseURL != ""
}

type guardianResponse struct {
	ID string `json:"id"`
}

// Exists consulta GET /v1/guardians/{id}: 200 => true, 404 => false.
func (c *Client) Exists(ctx context.Context, guardianID uuid.UUID) (bool, error) {
	if !c.IsConfigured() {
		return false, ErrNotConfigured
	}

	headers := map[string]string{}
	if c.apiKey != "" {
		headers[c.apiKeyHeader] = c.apiKey
	}

	var out guardianResponse
	err := c.http.DoJSON(ctx, http.MethodGet, "/v1/guardians/"+guardianID.String(), headers, nil, &out)
	if err == nil {
		return true, nil
	}

	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusNotFound:
			return false, nil
		case http.StatusUnauthorized, http.StatusForbidden:
			return false, ErrUnauthorized
		default:
			return false, fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
		}
	}
	return false, fmt.Errorf("%w: %v", ErrUpstream, err)
}
