// Package customerapi is the HTTP client of the remote Customer API.
package customerapi

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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"customerweb/internal/core/apperror"
	appctx "customerweb/internal/core/context"
	"customerweb/internal/domain/customer"
	"customerweb/pkg/logger"
)

var tracer = otel.Tracer("customerweb/customerapi")

// HeaderRequestID is forwarded upstream so both sides log the same id.
const HeaderRequestID = "X-Request-ID"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// Config holds client configuration.
type Config struct {
	// BaseURL is the customers collection endpoint, e.g. https://host/api/Customer.
	BaseURL string

	// Timeout applies to the whole call; zero keeps the transport defaults.
	Timeout time.Duration

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Client implements customer.APIClient over HTTP+JSON.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ customer.APIClient = (*Client)(nil)

// New creates a Client. An empty BaseURL is accepted here and reported by
// every call instead.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    hc,
	}
}

// BaseURL returns the configured endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List returns all customers. GET {base}
func (c *Client) List(ctx context.Context) (customer.ListResult, error) {
	u, err := c.endpoint()
	if err != nil {
		return customer.ListResult{}, err
	}

	status, body, err := c.do(ctx, "list", http.MethodGet, u, nil, 0)
	if err != nil {
		return customer.ListResult{}, err
	}

	result := customer.ListResult{Status: status}
	if !customer.IsSuccess(status) {
		return result, nil
	}

	var dtos []CustomerDTO
	found, err := decode(body, &dtos)
	if err != nil {
		return customer.ListResult{}, apperror.NewUpstream("list", err)
	}
	if found {
		result.Customers = ToModels(dtos)
	}
	return result, nil
}

// Get returns one customer. GET {base}/{id}
func (c *Client) Get(ctx context.Context, id int) (customer.Result, error) {
	if id == 0 {
		return customer.Result{Status: http.StatusBadRequest}, nil
	}

	u, err := c.endpoint()
	if err != nil {
		return customer.Result{}, err
	}

	status, body, err := c.do(ctx, "get", http.MethodGet, u.JoinPath(strconv.Itoa(id)), nil, id)
	if err != nil {
		return customer.Result{}, err
	}

	return singleResult("get", status, body)
}

// Create posts a new customer. POST {base}
func (c *Client) Create(ctx context.Context, m customer.Customer) (customer.Result, error) {
	if err := m.Validate(); err != nil {
		logger.Warn(ctx, "refusing to send invalid customer", "operation", "create", "error", err)
		return customer.Result{Status: http.StatusBadRequest}, nil
	}

	u, err := c.endpoint()
	if err != nil {
		return customer.Result{}, err
	}

	status, body, err := c.do(ctx, "create", http.MethodPost, u, FromModel(m), 0)
	if err != nil {
		return customer.Result{}, err
	}

	return singleResult("create", status, body)
}

// Update replaces a customer. PUT {base}?id={id}; the API answers with a
// JSON boolean.
func (c *Client) Update(ctx context.Context, id int, m customer.Customer) (customer.BoolResult, error) {
	if id == 0 {
		return customer.BoolResult{Status: http.StatusBadRequest}, nil
	}
	if err := m.Validate(); err != nil {
		logger.Warn(ctx, "refusing to send invalid customer", "operation", "update", "id", id, "error", err)
		return customer.BoolResult{Status: http.StatusBadRequest}, nil
	}

	u, err := c.endpoint()
	if err != nil {
		return customer.BoolResult{}, err
	}
	q := u.Query()
	q.Set("id", strconv.Itoa(id))
	u.RawQuery = q.Encode()

	status, body, err := c.do(ctx, "update", http.MethodPut, u, FromModel(m), id)
	if err != nil {
		return customer.BoolResult{}, err
	}

	result := customer.BoolResult{Status: status}
	if !customer.IsSuccess(status) {
		return result, nil
	}

	var updated bool
	if _, err := decode(body, &updated); err != nil {
		return customer.BoolResult{}, apperror.NewUpstream("update", err)
	}
	result.OK = updated
	return result, nil
}

// Delete removes a customer. DELETE {base}/{id}; OK reflects the status only.
func (c *Client) Delete(ctx context.Context, id int) (customer.BoolResult, error) {
	if id == 0 {
		return customer.BoolResult{Status: http.StatusBadRequest}, nil
	}

	u, err := c.endpoint()
	if err != nil {
		return customer.BoolResult{}, err
	}

	status, _, err := c.do(ctx, "delete", http.MethodDelete, u.JoinPath(strconv.Itoa(id)), nil, id)
	if err != nil {
		return customer.BoolResult{}, err
	}

	return customer.BoolResult{Status: status, OK: customer.IsSuccess(status)}, nil
}

// endpoint parses the base URL, failing before any I/O when unset.
func (c *Client) endpoint() (*url.URL, error) {
	if c.baseURL == "" {
		return nil, apperror.NewConfiguration("CustomerApi endpoint not set in config!")
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, apperror.NewConfiguration("invalid CustomerApi endpoint").WithCause(err)
	}
	return u, nil
}

// do performs one HTTP round trip and returns status and body.
// Only transport-level failures produce an error.
func (c *Client) do(ctx context.Context, op, method string, u *url.URL, payload any, id int) (int, []byte, error) {
	ctx, span := tracer.Start(ctx, "customerapi."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.Int("customer.id", id),
		))
	defer span.End()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, apperror.NewInternal(fmt.Errorf("encode %s payload: %w", op, err))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return 0, nil, apperror.NewUpstream(op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	if rid := appctx.GetRequestID(ctx); rid != "" {
		req.Header.Set(HeaderRequestID, rid)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		return 0, nil, apperror.NewUpstream(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return 0, nil, apperror.NewUpstream(op, fmt.Errorf("read body: %w", err))
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, resp.Status)
	}

	logger.Debug(ctx, "customer api call",
		"operation", op,
		"method", method,
		"url", u.String(),
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)

	return resp.StatusCode, body, nil
}

func singleResult(op string, status int, body []byte) (customer.Result, error) {
	result := customer.Result{Status: status}
	if !customer.IsSuccess(status) {
		return result, nil
	}

	var dto CustomerDTO
	found, err := decode(body, &dto)
	if err != nil {
		return customer.Result{}, apperror.NewUpstream(op, err)
	}
	if found {
		m := dto.ToModel()
		result.Customer = &m
	}
	return result, nil
}

// decode unmarshals body into v. An empty or null body leaves v untouched
// and reports found=false.
func decode(body []byte, v any) (bool, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return true, nil
}
