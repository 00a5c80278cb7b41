// Package crm delivers qualified leads to the external CRM webhook.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/intake"
	"github.com/grygorii1976-hash/SHHS-chat-backend/pkg/logging"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "shhs-chat-backend/0.1"

	// Error bodies from the webhook are truncated before logging.
	maxErrorBodyLen = 512
)

// Config controls how the webhook client behaves.
type Config struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
	UserAgent  string
}

// Client POSTs lead payloads to a configured webhook endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *logging.Logger
	userAgent  string
}

// New creates a configured Client with sane defaults.
func New(cfg Config) (*Client, error) {
	webhookURL := strings.TrimSpace(cfg.URL)
	if webhookURL == "" {
		return nil, errors.New("crm: webhook URL is required")
	}
	parsed, err := url.Parse(webhookURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("crm: invalid webhook URL %q", cfg.URL)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		url:        webhookURL,
		httpClient: httpClient,
		logger:     logger,
		userAgent:  userAgent,
	}, nil
}

// DeliverLead sends one lead payload. Any non-2xx status is an error so the
// caller can hold off marking the lead as sent.
func (c *Client) DeliverLead(ctx context.Context, payload intake.LeadPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("crm: marshal lead payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("crm: webhook call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Info("crm: lead accepted", "status", resp.StatusCode)
		return nil
	}

	data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
	detail := strings.TrimSpace(string(data))
	if readErr != nil && detail == "" {
		detail = readErr.Error()
	}
	return fmt.Errorf("crm: webhook rejected lead (status=%d): %s", resp.StatusCode, detail)
}
