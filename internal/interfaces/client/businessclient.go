// Package client talks to the admin API over HTTP. It is what the admin
// table controller uses when it runs outside the service process.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pawpath/pawpath/internal/application/admintable"
	"github.com/pawpath/pawpath/internal/application/business/dto"
	"github.com/pawpath/pawpath/internal/shared/constants"
	"github.com/pawpath/pawpath/internal/shared/errors"
)

var (
	_ admintable.Fetcher       = (*BusinessClient)(nil)
	_ admintable.StatusMutator = (*BusinessClient)(nil)
)

const defaultTimeout = 10 * time.Second

// BusinessClient is the admin businesses API client.
type BusinessClient struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a function that configures the BusinessClient.
type Option func(*BusinessClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *BusinessClient) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *BusinessClient) {
		client.httpClient.Timeout = d
	}
}

// NewBusinessClient creates a client for the API at baseURL
// (e.g. "http://localhost:8080").
func NewBusinessClient(baseURL string, opts ...Option) *BusinessClient {
	c := &BusinessClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Details string `json:"details,omitempty"`
	} `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// ListBusinesses fetches one page of businesses. Nil filters are omitted.
func (c *BusinessClient) ListBusinesses(ctx context.Context, req dto.ListBusinessesRequest) (*dto.ListBusinessesResponse, error) {
	q := url.Values{}
	setOptional(q, "status", req.Status)
	setOptional(q, "plan", req.Plan)
	setOptional(q, "billingStatus", req.BillingStatus)
	setOptional(q, "search", req.Search)
	q.Set("limit", strconv.Itoa(req.Limit))
	q.Set("offset", strconv.Itoa(req.Offset))

	var result dto.ListBusinessesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/admin/businesses?"+q.Encode(), nil, &result); err != nil {
		return nil, err
	}
	if result.Businesses == nil {
		result.Businesses = []*dto.BusinessSummary{}
	}
	return &result, nil
}

// UpdateBusinessStatus sends the updateStatus action and returns the row as
// stored by the server.
func (c *BusinessClient) UpdateBusinessStatus(ctx context.Context, id uint, status string) (*dto.BusinessSummary, error) {
	body := map[string]string{
		"action": "updateStatus",
		"status": status,
	}

	var result dto.BusinessSummary
	path := "/admin/businesses/" + strconv.FormatUint(uint64(id), 10)
	if err := c.doRequest(ctx, http.MethodPatch, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func setOptional(q url.Values, key string, v *string) {
	if v != nil && *v != "" {
		q.Set(key, *v)
	}
}

// doRequest performs an HTTP request and decodes the envelope's data into
// result. Error responses come back as AppErrors of the server's kind.
func (c *BusinessClient) doRequest(ctx context.Context, method, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)

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
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return statusError(resp.StatusCode, http.StatusText(resp.StatusCode), "")
		}
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !apiResp.Success {
		msg, details := apiResp.Message, ""
		if apiResp.Error != nil {
			msg, details = apiResp.Error.Message, apiResp.Error.Details
		}
		return statusError(resp.StatusCode, msg, details)
	}

	if result == nil || len(apiResp.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(apiResp.Data, result); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return nil
}

func statusError(code int, msg, details string) error {
	switch code {
	case http.StatusBadRequest:
		return errors.NewValidationError(msg, details)
	case http.StatusNotFound:
		return errors.NewNotFoundError(msg, details)
	case http.StatusConflict:
		return errors.NewConflictError(msg, details)
	case http.StatusServiceUnavailable:
		return errors.NewStorageError(msg, fmt.Errorf("api status %d", code))
	default:
		return errors.NewInternalError(msg, details)
	}
}
