package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/carework/internal/common"
	"github.com/dmitrijs2005/carework/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

//go:generate mockgen -destination=mock_http_doer.go -package=client github.com/dmitrijs2005/carework/internal/client/client HTTPDoer

// DefaultTimeout bounds every call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// publicEndpoints never carry the Authorization header.
var publicEndpoints = map[string]struct{}{
	"/api/v1/auth/register": {},
	"/api/v1/auth/login":    {},
}

// Client is the request pipeline contract used by the services.
type Client interface {
	// Do performs one call and decodes its result into out (may be nil).
	Do(ctx context.Context, r Request, out any) error
	// CheckHealth reports whether GET /health answers "Healthy".
	CheckHealth(ctx context.Context) bool
}

// Request describes one API call. Endpoint is appended to the base URL.
type Request struct {
	Method   string
	Endpoint string
	Body     any
	Header   http.Header
}

// HTTPDoer is the transport seam; *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ HTTPDoer = &http.Client{}

// TokenSource yields the current bearer token, "" when there is none.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type noToken struct{}

func (noToken) Token(context.Context) (string, error) { return "", nil }

type HTTPClient struct {
	baseURL string
	doer    HTTPDoer
	tokens  TokenSource
	timeout time.Duration
	limiter *rate.Limiter
	log     logging.Logger
	newID   func() string
}

type Option func(*HTTPClient)

func WithHTTPDoer(d HTTPDoer) Option {
	return func(c *HTTPClient) { c.doer = d }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

// WithTimeout sets the per-call deadline. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRateLimit allows at most perSecond calls per second. 0 disables limiting.
func WithRateLimit(perSecond float64) Option {
	return func(c *HTTPClient) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient builds a pipeline for baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    http.DefaultClient,
		tokens:  noToken{},
		timeout: DefaultTimeout,
		log:     logging.Discard(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) Do(ctx context.Context, r Request, out any) error {
	if err := c.do(ctx, r, out); err != nil {
		return normalize(err)
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, r Request, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return newTransportError(err)
		}
	}

	req, err := c.newRequest(ctx, r)
	if err != nil {
		return err
	}
	requestID := req.Header.Get(common.RequestIDHeaderName)

	resp, err := c.doer.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", req.Method, "endpoint", r.Endpoint, "request_id", requestID, "error", err)
		return newTransportError(err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done", "method", req.Method, "endpoint", r.Endpoint, "request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp.StatusCode, body)
	}

	decoded, err := DecodeBody(body)
	if err != nil {
		return newParseError(err)
	}
	if !decoded.IsEnvelope {
		return decodeInto(decoded.Raw, out)
	}
	if !decoded.Envelope.Success {
		return newEnvelopeError(resp.StatusCode, decoded.Envelope)
	}
	return decodeInto(decoded.Envelope.Data, out)
}

func (c *HTTPClient) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, newUnexpectedError(fmt.Errorf("encode request body: %w", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+r.Endpoint, body)
	if err != nil {
		return nil, newUnexpectedError(fmt.Errorf("build request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, c.newID())

	if !isPublic(r.Endpoint) {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, newUnexpectedError(fmt.Errorf("read token: %w", err))
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	for k, vs := range r.Header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

func isPublic(endpoint string) bool {
	path, _, _ := strings.Cut(endpoint, "?")
	_, ok := publicEndpoints[path]
	return ok
}

// decodeInto leaves out untouched for a null payload.
func decodeInto(data json.RawMessage, out any) error {
	if out == nil || len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return newParseError(err)
	}
	return nil
}

func (c *HTTPClient) CheckHealth(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	req.Header.Set(common.RequestIDHeaderName, c.newID())

	resp, err := c.doer.Do(req)
	if err != nil {
		c.log.Debug(ctx, "health check failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false
	}
	return resp.StatusCode == http.StatusOK && strings.TrimSpace(string(body)) == "Healthy"
}
