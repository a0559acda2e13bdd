// Package leadsapi provides a minimal HTTP client for the internal leads
// backend API.
package leadsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/exitthree/formgate/config"
)

var ErrUnexpectedStatus = errors.New("leadsapi: unexpected response status")

// Lead is the sanitized record forwarded to the backend.
type Lead struct {
	FullName    string `json:"full_name"`
	Position    string `json:"position"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Category    string `json:"category"`
}

// Client is a lightweight authenticated HTTP client for the leads API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a Client from config. The request timeout is always bounded;
// 10s when not configured.
func New(cfg config.LeadsConfig) *Client {
	timeout := 10 * time.Second
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Create submits one lead with a single attempt. There is no retry and no
// idempotency token; the caller owns resubmission.
func (c *Client) Create(ctx context.Context, lead Lead) error {
	b, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("marshal lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/backend/api/leads/", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("leads API timed out: %w", err)
		}
		return fmt.Errorf("do request: %w", err)
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w (%d)", ErrUnexpectedStatus, res.StatusCode)
	}
	return nil
}
