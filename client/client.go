// Package client implements the request-dispatch layer of the SDK: bearer
// token lifecycle, wallet-conditioned transport selection, JSON and
// multipart encoding, and the uniform error-normalization contract.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/seimoney/seimoney-go/metrics"
	"github.com/seimoney/seimoney-go/payment"
	"github.com/seimoney/seimoney-go/store"
)

// TokenStoreKey is the fixed key under which the bearer token is persisted
// in the process-wide string store.
const TokenStoreKey = "token"

const defaultTimeout = 30 * time.Second

var validate = validator.New()

// Config carries the client configuration. A missing API URL fails fast at
// construction, before any network activity.
type Config struct {
	APIURL string `validate:"required,url"`
	Token  string
}

// Client owns the two alternate transports (plain and wallet-payment
// augmented), attaches auth headers, and normalizes every failure into the
// three-shape Error contract. Token and instance-level signer are shared
// mutable state with last-write-wins semantics; neither affects requests
// already in flight.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      store.Store
	logger     *zap.Logger
	metrics    metrics.Recorder
	payOpts    []payment.TransportOption

	mu     sync.Mutex
	token  string
	signer payment.Signer
}

// New builds a client. When no token is configured, a previously persisted
// one is read from the store. No network call occurs here.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	s := applyOptions(opts)

	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.APIURL, "/"),
		httpClient: s.httpClient,
		store:      s.store,
		logger:     s.logger,
		metrics:    s.metrics,
		payOpts:    s.payOpts,
	}

	if cfg.Token != "" {
		c.SetToken(cfg.Token)
	} else if saved, ok := c.store.Get(TokenStoreKey); ok && saved != "" {
		c.SetToken(saved)
	}

	return c, nil
}

// SetToken replaces the active bearer token for all subsequent requests and
// persists it. In-flight requests keep whatever header set they captured at
// dispatch time.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if err := c.store.Set(TokenStoreKey, token); err != nil {
		c.logger.Warn("failed to persist token", zap.Error(err))
	}
}

// Token returns the active bearer token.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// UpdateWalletClient installs an instance-level signer so that every
// subsequent request routes through a payment-capable transport. A nil
// signer, or one without a bound account, reverts to the plain transport.
//
// Deprecated: pass the signer per call with WithSigner instead; the
// instance-level switch exists for the single-owner convenience case only
// and is always overridden by a per-call signer.
func (c *Client) UpdateWalletClient(signer payment.Signer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if payment.HasAccount(signer) {
		c.signer = signer
	} else {
		c.signer = nil
	}
}

func (c *Client) instanceSigner() payment.Signer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.signer
}

// CallOption adjusts a single dispatch.
type CallOption func(*callSettings)

type callSettings struct {
	signer  payment.Signer
	headers http.Header
	route   string
}

// WithSigner routes exactly this request through a wallet-payment transport
// constructed for this call, leaving the instance transport untouched.
// Signers without a bound account are ignored.
func WithSigner(s payment.Signer) CallOption {
	return func(cs *callSettings) {
		if payment.HasAccount(s) {
			cs.signer = s
		}
	}
}

// WithRoute sets the route template recorded in metrics for this request,
// e.g. "/files/fulfill/{id}". Paths embedding resource IDs must pass one
// so metric labels stay bounded; the raw path is recorded otherwise.
func WithRoute(route string) CallOption {
	return func(cs *callSettings) { cs.route = route }
}

// WithHeader sets an extra header on this request.
func WithHeader(key, value string) CallOption {
	return func(cs *callSettings) {
		if cs.headers == nil {
			cs.headers = make(http.Header)
		}
		cs.headers.Set(key, value)
	}
}

// Get issues a GET and decodes the JSON response into out (skipped when out
// is nil).
func (c *Client) Get(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out, opts)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out, opts)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out, opts)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out, opts)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", out, opts)
}

// PostForm issues a POST with a multipart/form-data body.
func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any, opts ...CallOption) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return newUnknownError(err)
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, out, opts)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, opts []CallOption) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return newUnknownError(fmt.Errorf("encode request body: %w", err))
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, reader, "application/json", out, opts)
}

// do issues exactly one HTTP request (the payment transport may replay it
// once to settle a 402) and normalizes every failure.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any, opts []CallOption) error {
	var cs callSettings
	for _, opt := range opts {
		if opt != nil {
			opt(&cs)
		}
	}

	// Buffer non-seekable bodies so the payment transport can replay them.
	if body != nil {
		if _, ok := body.(*bytes.Reader); !ok {
			data, err := io.ReadAll(body)
			if err != nil {
				return newUnknownError(fmt.Errorf("read request body: %w", err))
			}
			body = bytes.NewReader(data)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return newUnknownError(err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, values := range cs.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	httpClient := c.transportFor(cs.signer)

	route := cs.route
	if route == "" {
		route = path
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		c.metrics.ObserveRequest(method, route, 0, elapsed)
		c.logger.Debug("request transport failure",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return normalizeTransportError(err, fmt.Sprintf("%s %s", method, req.URL))
	}
	defer resp.Body.Close()

	c.metrics.ObserveRequest(method, route, resp.StatusCode, elapsed)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newUnknownError(fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return newHTTPError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return newUnknownError(fmt.Errorf("decode response body: %w", err))
	}
	return nil
}

// transportFor selects the http.Client for one dispatch: a one-off
// payment-augmented client for a per-call signer, the instance-level
// augmented client when UpdateWalletClient installed one, else the plain
// client. The per-call signer always wins.
func (c *Client) transportFor(callSigner payment.Signer) *http.Client {
	signer := callSigner
	if signer == nil {
		signer = c.instanceSigner()
	}
	if signer == nil {
		return c.httpClient
	}

	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	opts := append([]payment.TransportOption{payment.WithLogger(c.logger)}, c.payOpts...)

	return &http.Client{
		Transport:     payment.NewTransport(base, signer, opts...),
		Timeout:       c.httpClient.Timeout,
		CheckRedirect: c.httpClient.CheckRedirect,
		Jar:           c.httpClient.Jar,
	}
}
