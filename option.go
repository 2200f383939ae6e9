package seimoney

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/seimoney/seimoney-go/client"
	"github.com/seimoney/seimoney-go/metrics"
	"github.com/seimoney/seimoney-go/payment"
	"github.com/seimoney/seimoney-go/store"
)

// Option configures the SDK.
type Option = client.Option

// WithLogger sets a custom logger.
func WithLogger(l *zap.Logger) Option {
	return client.WithLogger(l)
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return client.WithHTTPClient(c)
}

// WithStore sets the string store used to persist the bearer token.
func WithStore(st store.Store) Option {
	return client.WithStore(st)
}

// WithMetrics sets the request-metrics recorder.
func WithMetrics(r metrics.Recorder) Option {
	return client.WithMetrics(r)
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return client.WithTimeout(d)
}

// WithPaymentOptions configures every payment transport the SDK constructs,
// e.g. payment.WithMaxAmount to cap what a signer may authorize.
func WithPaymentOptions(opts ...payment.TransportOption) Option {
	return client.WithPaymentOptions(opts...)
}
