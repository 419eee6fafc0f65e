// ABOUTME: HTTP client for the QuickFlip backend collaborator
// ABOUTME: Submits properties and maps failures to transport/malformed errors
package api

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

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/quickflip/quickflip/models"
)

// fallbackErrorMessage is shown when the backend fails without a body.
const fallbackErrorMessage = "Failed to submit property"

// TransportError is a network-level failure or a non-2xx backend response.
// Message carries the response body text when the backend sent one.
type TransportError struct {
	StatusCode int
	Message    string
	cause      error
}

func (e *TransportError) Error() string {
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.cause
}

// MalformedResponseError is a 2xx response whose body could not be
// interpreted as a deal. Displayed like a transport failure, but logged
// separately so telemetry can tell the two apart.
type MalformedResponseError struct {
	cause error
}

func (e *MalformedResponseError) Error() string {
	return "invalid response from server"
}

func (e *MalformedResponseError) Unwrap() error {
	return e.cause
}

// Client talks to the QuickFlip backend. It performs no retries; every
// SubmitProperty call is exactly one outbound request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a client for the given backend origin.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     log.Default(),
	}
}

// SetLogger redirects client logging, e.g. away from the terminal while
// the TUI owns the screen.
func (c *Client) SetLogger(logger *log.Logger) {
	c.logger = logger
}

// SetHTTPClient replaces the underlying HTTP client. Timeout policy lives
// there, not in this package.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// BaseURL returns the backend origin this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SubmitProperty POSTs a property to the backend and returns the resulting
// deal. Non-2xx responses and network failures come back as *TransportError;
// 2xx responses that don't decode into a deal come back as
// *MalformedResponseError.
func (c *Client) SubmitProperty(ctx context.Context, input *models.PropertyInput) (*models.Deal, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode property: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/properties", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("property submission failed", "request_id", requestID, "err", err)
		return nil, &TransportError{Message: fallbackErrorMessage, cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read response", "request_id", requestID, "err", err)
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: fallbackErrorMessage, cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := strings.TrimSpace(string(respBody))
		if message == "" {
			message = fallbackErrorMessage
		}
		c.logger.Error("backend rejected submission",
			"request_id", requestID, "status", resp.StatusCode, "message", message)
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: message}
	}

	var deal models.Deal
	if err := json.Unmarshal(respBody, &deal); err != nil {
		c.logger.Warn("malformed response from backend", "request_id", requestID, "err", err)
		return nil, &MalformedResponseError{cause: err}
	}
	if deal.DealID == "" {
		c.logger.Warn("malformed response from backend", "request_id", requestID, "err", "missing deal_id")
		return nil, &MalformedResponseError{cause: errors.New("missing deal_id")}
	}

	c.logger.Info("deal created",
		"request_id", requestID, "deal_id", deal.DealID, "rank", deal.Rank,
		"buyers", len(deal.MatchedBuyers))
	return &deal, nil
}
