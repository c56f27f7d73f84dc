package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"truestate/internal/config"
	"truestate/internal/dto"
	"truestate/internal/errors"
	"truestate/internal/models"
)

// DefaultRequestTimeout bounds every API call
const DefaultRequestTimeout = 15 * time.Second

const dateLayout = "2006-01-02"

// APIError is a non-2xx answer from the API
type APIError struct {
	Status  int
	Code    string
	Message string
	TraceID string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return fmt.Sprintf("api error (%d) %s: %s", e.Status, e.Code, e.Message)
}

type headerTransport struct {
	base http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", "application/json")
	return t.base.RoundTrip(req)
}

// Client talks to the transactions API
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates an API client. A zero timeout uses DefaultRequestTimeout.
func NewClient(cfg config.ClientConfig, logger *slog.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Transport: &headerTransport{base: http.DefaultTransport},
			Timeout:   timeout,
		},
		logger: logger,
	}
}

// ListTransactions fetches one page for params
func (c *Client) ListTransactions(ctx context.Context, params models.ListParams) (*dto.ListTransactionsResponse, error) {
	var out dto.ListTransactionsResponse
	if err := c.get(ctx, "/api/transactions", EncodeListParams(params), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFilterOptions fetches the selectable values of every filter
func (c *Client) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	var out dto.FilterOptionsResponse
	if err := c.get(ctx, "/api/filters/options", nil, &out); err != nil {
		return nil, err
	}
	return &out.Filters, nil
}

// Health reports the server status
func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	var out dto.HealthResponse
	if err := c.get(ctx, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EncodeListParams renders params as the query string the API expects.
// Multi-valued filters are comma joined; unset values are omitted.
func EncodeListParams(params models.ListParams) url.Values {
	q := url.Values{}
	if search := strings.TrimSpace(params.Filters.Search); search != "" {
		q.Set("search", search)
	}
	for _, field := range models.FilterFields {
		if values := params.Filters.Selected(field); len(values) > 0 {
			q.Set(string(field), strings.Join(values, ","))
		}
	}
	if params.Filters.StartDate != nil {
		q.Set("startDate", params.Filters.StartDate.UTC().Format(dateLayout))
	}
	if params.Filters.EndDate != nil {
		q.Set("endDate", params.Filters.EndDate.UTC().Format(dateLayout))
	}
	if params.Sort.Field != "" {
		q.Set("sortBy", string(params.Sort.Field))
	}
	if params.Sort.Order != "" {
		q.Set("sortOrder", string(params.Sort.Order))
	}
	if params.Page.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page.Page))
	}
	if params.Page.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Page.Limit))
	}
	return q
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("api request failed",
			"method", req.Method,
			"path", path,
			"error", err,
		)
		return err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(status int, body []byte) error {
	apiErr := &APIError{Status: status}

	var errResp errors.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		apiErr.Code = errResp.Error.Code
		apiErr.Message = errResp.Error.Message
		apiErr.TraceID = errResp.Error.TraceID
	}
	return apiErr
}
