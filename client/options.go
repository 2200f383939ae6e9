package client

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/seimoney/seimoney-go/metrics"
	"github.com/seimoney/seimoney-go/payment"
	"github.com/seimoney/seimoney-go/store"
)

// Option configures client construction using the functional options
// pattern.
type Option func(*settings)

type settings struct {
	logger     *zap.Logger
	httpClient *http.Client
	store      store.Store
	metrics    metrics.Recorder
	timeout    time.Duration
	payOpts    []payment.TransportOption
}

// WithLogger sets a custom logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithHTTPClient sets the underlying plain-transport HTTP client. The
// client is used as supplied; its timeout and transport are never
// modified.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

// WithStore sets the string store used to persist the bearer token.
func WithStore(st store.Store) Option {
	return func(s *settings) { s.store = st }
}

// WithMetrics sets the request-metrics recorder.
func WithMetrics(r metrics.Recorder) Option {
	return func(s *settings) { s.metrics = r }
}

// WithTimeout sets the per-request timeout of the HTTP client the SDK
// constructs when none is supplied. It has no effect alongside
// WithHTTPClient; timeouts on a supplied client are the caller's.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithPaymentOptions appends options applied to every payment transport the
// client constructs, e.g. payment.WithMaxAmount.
func WithPaymentOptions(opts ...payment.TransportOption) Option {
	return func(s *settings) { s.payOpts = append(s.payOpts, opts...) }
}

// applyOptions applies defaults, then user options. A supplied HTTP client
// is kept untouched; only the client constructed here gets the default
// timeout. The default store is the per-user credentials file, degrading
// to memory when no config directory is available.
func applyOptions(opts []Option) settings {
	s := settings{
		logger:  zap.NewNop(),
		metrics: metrics.NoopRecorder{},
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: s.timeout}
	}
	if s.store == nil {
		s.store = defaultStore()
	}
	return s
}

func defaultStore() store.Store {
	path, err := store.DefaultPath()
	if err != nil {
		return store.NewMemStore()
	}
	fs, err := store.NewFileStore(path)
	if err != nil {
		return store.NewMemStore()
	}
	return fs
}
