package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
)

// Client is a Go SDK for the campus backend API
type Client struct {
	registry    *Registry
	http        *resty.Client
	httpClient  *http.Client
	timeout     time.Duration
	session     Session
	logger      *slog.Logger
	onMalformed func(error)
	dedup       bool
	inflight    singleflight.Group
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithSession sets the token source used for the Authorization header
func WithSession(s Session) Option {
	return func(c *Client) {
		c.session = s
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMalformedHandler registers fn to observe envelopes that were coerced
// to an empty value
func WithMalformedHandler(fn func(error)) Option {
	return func(c *Client) {
		c.onMalformed = fn
	}
}

// WithDeduplication makes concurrent identical anonymous GET requests share
// one call. Requests carrying a session token are never shared.
func WithDeduplication() Option {
	return func(c *Client) {
		c.dedup = true
	}
}

// NewClient creates a new backend client. Empty URLs fall back to the
// production defaults.
func NewClient(backendURL, apiBaseURL string, opts ...Option) *Client {
	c := &Client{
		registry: NewRegistry(backendURL, apiBaseURL),
		timeout:  30 * time.Second,
		session:  NewMemorySession(""),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient != nil {
		c.http = resty.NewWithClient(c.httpClient)
	} else {
		c.http = resty.New()
	}
	c.http.
		SetTimeout(c.timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		OnBeforeRequest(c.attachToken).
		OnAfterResponse(c.inspectResponse)

	return c
}

// Registry returns the endpoint registry the client resolves against
func (c *Client) Registry() *Registry {
	return c.registry
}

// Session returns the session used for bearer tokens
func (c *Client) Session() Session {
	return c.session
}

func (c *Client) attachToken(_ *resty.Client, req *resty.Request) error {
	token, err := c.session.Token(req.Context())
	if err != nil {
		return fmt.Errorf("failed to read session token: %w", err)
	}
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return nil
}

func (c *Client) inspectResponse(_ *resty.Client, resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	c.logger.Error("API request failed",
		"status", resp.StatusCode(),
		"method", resp.Request.Method,
		"url", resp.Request.URL,
		"body", string(resp.Body()),
	)

	if resp.StatusCode() == http.StatusUnauthorized {
		if err := c.session.Clear(resp.Request.Context()); err != nil {
			c.logger.Warn("failed to clear session", "error", err)
		}
	}
	return nil
}

// call resolves e, performs the request and returns the raw 2xx body
func (c *Client) call(ctx context.Context, e Endpoint, body any, params ...string) ([]byte, error) {
	url, err := c.registry.URL(e, params...)
	if err != nil {
		return nil, err
	}

	if c.dedup && e.Method == http.MethodGet && body == nil {
		token, err := c.session.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read session token: %w", err)
		}
		// an authenticated response belongs to one visitor only
		if token == "" {
			return c.shared(ctx, url)
		}
	}

	return c.execute(ctx, e.Method, url, body)
}

// shared performs an anonymous GET once for all concurrent callers of url.
// The call is detached from any single caller, and each caller stops
// waiting when its own ctx is done.
func (c *Client) shared(ctx context.Context, url string) ([]byte, error) {
	ch := c.inflight.DoChan(http.MethodGet+" "+url, func() (any, error) {
		return c.execute(context.WithoutCancel(ctx), http.MethodGet, url, nil)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *Client) execute(ctx context.Context, method, url string, body any) ([]byte, error) {
	resp, err := c.do(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// do performs one request and fails on transport errors and non-2xx replies
func (c *Client) do(ctx context.Context, method, url string, body any) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		c.logger.Error("API request error", "method", method, "url", url, "error", err)
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}

	if resp.IsError() {
		return nil, newAPIError(method, url, resp.StatusCode(), resp.Body())
	}

	return resp, nil
}

func (c *Client) malformed(err error) {
	c.logger.Warn("unexpected response shape", "error", err)
	if c.onMalformed != nil {
		c.onMalformed(err)
	}
}

// list fetches a collection. Malformed envelopes degrade to an empty slice.
func list[T any](ctx context.Context, c *Client, e Endpoint, params ...string) ([]T, error) {
	body, err := c.call(ctx, e, nil, params...)
	if err != nil {
		return nil, err
	}

	items, err := decodeList[T](e.Name, body)
	if err != nil {
		c.malformed(err)
		return []T{}, nil
	}
	return items, nil
}

// listOrdered is list followed by a stable sort on the order field
func listOrdered[T Ordered](ctx context.Context, c *Client, e Endpoint, params ...string) ([]T, error) {
	items, err := list[T](ctx, c, e, params...)
	if err != nil {
		return nil, err
	}
	SortByOrder(items)
	return items, nil
}

// one fetches a single record. Malformed envelopes degrade to nil.
func one[T any](ctx context.Context, c *Client, e Endpoint, params ...string) (*T, error) {
	body, err := c.call(ctx, e, nil, params...)
	if err != nil {
		return nil, err
	}

	item, err := decodeOne[T](e.Name, body)
	if err != nil {
		c.malformed(err)
		return nil, nil
	}
	return item, nil
}

// optional is one with 404 treated as "not configured"
func optional[T any](ctx context.Context, c *Client, e Endpoint, params ...string) (*T, error) {
	item, err := one[T](ctx, c, e, params...)
	if IsNotFound(err) {
		return nil, nil
	}
	return item, err
}

// mutate sends a write. A success=false envelope is an error; a missing
// data payload yields nil.
func mutate[T any](ctx context.Context, c *Client, e Endpoint, body any, params ...string) (*T, error) {
	raw, err := c.call(ctx, e, body, params...)
	if err != nil {
		return nil, err
	}

	env, err := parseEnvelope(e.Name, raw)
	if err != nil {
		return nil, err
	}
	if !env.ok() {
		return nil, &RejectedError{Endpoint: e.Name, Message: env.Message}
	}
	if env.dataKind() != '{' {
		return nil, nil
	}

	var item T
	if err := json.Unmarshal(env.Data, &item); err != nil {
		return nil, &MalformedResponseError{Endpoint: e.Name, Reason: fmt.Sprintf("decode data: %v", err)}
	}
	return &item, nil
}

// mutateOne is mutate for writes whose reply must carry the record
func mutateOne[T any](ctx context.Context, c *Client, e Endpoint, body any, params ...string) (*T, error) {
	item, err := mutate[T](ctx, c, e, body, params...)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &MalformedResponseError{Endpoint: e.Name, Reason: "missing data"}
	}
	return item, nil
}

// submit posts a form and returns the backend acknowledgement as is,
// together with the status the backend answered with
func submit(ctx context.Context, c *Client, e Endpoint, body any, params ...string) (*Ack, error) {
	url, err := c.registry.URL(e, params...)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, e.Method, url, body)
	if err != nil {
		return nil, err
	}

	var ack Ack
	if err := json.Unmarshal(resp.Body(), &ack); err != nil {
		return nil, &MalformedResponseError{Endpoint: e.Name, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	ack.StatusCode = resp.StatusCode()
	return &ack, nil
}
