// Package postgrest implements rowstore.Gateway against a hosted REST data
// API in the PostgREST dialect: {url}/rest/v1/{table} with apikey headers,
// column=eq.value filters and order=column.asc|desc.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"strata/internal/rowstore"
)

const restPath = "/rest/v1/"

// Config addresses the hosted gateway.
type Config struct {
	URL    string
	APIKey string
	// BreakerFailures is the consecutive failure count that opens the
	// circuit. Zero disables the breaker.
	BreakerFailures uint32
	BreakerCooldown time.Duration
}

// APIError is a non-2xx response from the gateway.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gateway status %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("gateway status %d: %s", e.Status, e.Message)
}

// Client talks to the hosted gateway. No request timeout is set; callers
// bound calls through their context.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	schema  rowstore.Schema
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New builds a client. Both URL and API key are required.
func New(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if base == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, rowstore.ErrNotConfigured
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}

	c := &Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		http:    &http.Client{},
		schema:  rowstore.DefaultSchema,
	}
	if cfg.BreakerFailures > 0 {
		failures := cfg.BreakerFailures
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "rowstore-postgrest",
			Timeout: cfg.BreakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			// Client errors say nothing about gateway health.
			IsSuccessful: func(err error) bool {
				var apiErr *APIError
				if errors.As(err, &apiErr) {
					return apiErr.Status < http.StatusInternalServerError
				}
				return err == nil
			},
		})
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Insert(ctx context.Context, table string, row rowstore.Row) (rowstore.Row, error) {
	if err := c.schema.CheckRow(table, row); err != nil {
		return nil, err
	}
	body, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encode insert: %w", err)
	}

	var rows []rowstore.Row
	err = c.do(ctx, http.MethodPost, table, nil, body, map[string]string{"Prefer": "return=representation"}, &rows)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert %s: gateway returned no row", table)
	}
	return rows[0], nil
}

func (c *Client) Select(ctx context.Context, table string, q rowstore.Query) ([]rowstore.Row, error) {
	if err := c.schema.CheckQuery(table, q); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("select", "*")
	for _, f := range q.Filters {
		params.Add(f.Column, "eq."+formatValue(f.Value))
	}
	if len(q.Order) > 0 {
		parts := make([]string, len(q.Order))
		for i, o := range q.Order {
			dir := "asc"
			if o.Descending {
				dir = "desc"
			}
			parts[i] = o.Column + "." + dir
		}
		params.Set("order", strings.Join(parts, ","))
	}

	rows := []rowstore.Row{}
	if err := c.do(ctx, http.MethodGet, table, params, nil, nil, &rows); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	return rows, nil
}

func (c *Client) Update(ctx context.Context, table, id string, fields rowstore.Row) error {
	if err := c.schema.CheckRow(table, fields); err != nil {
		return err
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode update: %w", err)
	}
	params := url.Values{}
	params.Set(rowstore.ColumnID, "eq."+id)
	if err := c.do(ctx, http.MethodPatch, table, params, body, map[string]string{"Prefer": "return=minimal"}, nil); err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, table, id string) error {
	if err := c.schema.CheckTable(table); err != nil {
		return err
	}
	params := url.Values{}
	params.Set(rowstore.ColumnID, "eq."+id)
	if err := c.do(ctx, http.MethodDelete, table, params, nil, nil, nil); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, table string, params url.Values, body []byte, headers map[string]string, out any) error {
	call := func() (any, error) {
		return nil, c.roundTrip(ctx, method, table, params, body, headers, out)
	}
	if c.breaker == nil {
		_, err := call()
		return err
	}
	_, err := c.breaker.Execute(call)
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, table string, params url.Values, body []byte, headers map[string]string, out any) error {
	endpoint := c.baseURL + restPath + url.PathEscape(table)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		if json.Unmarshal(payload, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(payload))
		}
		return apiErr
	}
	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
