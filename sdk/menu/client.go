package menu

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the menu API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// NewClient creates a new menu API client.
//
// Parameters:
//   - baseURL: The API base URL (e.g., "https://menu.example.com")
//   - token: A bearer access token issued for the tenant session
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Error is a failure reported by the API.
type Error struct {
	StatusCode int
	Type       string
	Message    string
	Details    string
	// Retryable is set when the server failed to persist an idempotent write.
	Retryable bool
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error: status=%d type=%s: %s (%s)", e.StatusCode, e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("api error: status=%d type=%s: %s", e.StatusCode, e.Type, e.Message)
}

// IsRetryable reports whether err is an API error the caller may repeat.
func IsRetryable(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Retryable
}

// ListMenu resolves the menu for a location and channel.
func (c *Client) ListMenu(ctx context.Context, opts ListOptions) (*Menu, error) {
	q := url.Values{}
	if opts.LocationID != "" {
		q.Set("location_id", opts.LocationID)
	}
	if opts.Channel != "" {
		q.Set("channel", opts.Channel)
	}
	endpoint := c.baseURL + "/menu-items"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var m Menu
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &m); err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return &m, nil
}

// SetAvailability switches items on or off.
func (c *Client) SetAvailability(ctx context.Context, req AvailabilityRequest) (*BulkResult, error) {
	var result BulkResult
	if err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/menu-items/bulk/availability", req, &result); err != nil {
		return nil, fmt.Errorf("set availability: %w", err)
	}
	return &result, nil
}

// DeleteItems removes items in bulk.
func (c *Client) DeleteItems(ctx context.Context, req BulkDeleteRequest) (*BulkResult, error) {
	var result BulkResult
	if err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/menu-items/bulk/delete", req, &result); err != nil {
		return nil, fmt.Errorf("delete items: %w", err)
	}
	return &result, nil
}

// SetCategoryVisibility sets a category overlay.
func (c *Client) SetCategoryVisibility(ctx context.Context, categoryID string, req CategoryVisibility) (*CategoryOverlay, error) {
	endpoint := fmt.Sprintf("%s/categories/%s/visibility", c.baseURL, url.PathEscape(categoryID))

	var result CategoryOverlay
	if err := c.doRequest(ctx, http.MethodPut, endpoint, req, &result); err != nil {
		return nil, fmt.Errorf("set category visibility: %w", err)
	}
	return &result, nil
}

// doRequest performs an HTTP request and decodes the response.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var apiResp apiResponse
	decodeErr := json.Unmarshal(respBody, &apiResp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode, Message: string(respBody)}
		if decodeErr == nil && apiResp.Error != nil {
			apiErr.Type = apiResp.Error.Type
			apiErr.Message = apiResp.Error.Message
			apiErr.Details = apiResp.Error.Details
			apiErr.Retryable = apiResp.Error.Retryable
		}
		return apiErr
	}

	if result == nil {
		return nil
	}
	if decodeErr != nil {
		return fmt.Errorf("unmarshal response: %w", decodeErr)
	}
	if apiResp.Data == nil {
		return nil
	}

	// Re-marshal and unmarshal to convert Data to the target type
	dataBytes, err := json.Marshal(apiResp.Data)
	if err != nil {
		return fmt.Errorf("marshal data: %w", err)
	}
	if err := json.Unmarshal(dataBytes, result); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return nil
}
