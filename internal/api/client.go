// Package api implements the HTTP client for the remote MoneyTracker
// REST API (versioned under /api/v1). Every failure is normalized to
// *Error before it reaches callers: transport problems become a generic
// connection message with status 0, non-2xx responses carry the
// server's message and status.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"moneytracker/internal/common"
	"moneytracker/internal/config"
)

// Client talks to the remote API. Construct with New; the zero value is
// not usable.
type Client struct {
	People       PersonService
	Categories   CategoryService
	Transactions TransactionService

	httpClient *http.Client
	validate   *validator.Validate
	baseURL    string
}

// New creates a client from the API configuration. The HTTP client
// enforces the configured timeout (10s by default) on every request.
func New(cfg config.API) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
	c.People = &peopleService{c: c}
	c.Categories = &categoriesService{c: c}
	c.Transactions = &transactionsService{c: c}
	return c
}

// do runs a single request. A non-nil body is validated against its
// struct tags and sent as JSON; a tag failure never reaches the wire.
// A non-nil out receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		if err := c.validate.Struct(body); err != nil {
			return fmt.Errorf("%w: %v", common.ErrValidation, err)
		}
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	common.LogDebug("API request", common.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		common.LogError(err, "API request failed", common.Fields{"request_id": requestID})
		return connectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := serverError(resp)
		common.LogDebug("API error response", common.Fields{
			"request_id": requestID,
			"status":     apiErr.Status,
			"message":    apiErr.Message,
		})
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func escape(id string) string {
	return url.PathEscape(id)
}
