package inscrib3

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/inscrib3/drops-go/client"
	"github.com/inscrib3/drops-go/config"
	"github.com/inscrib3/drops-go/drops"
)

// Option configures [New].
type Option func(*options) error

type options struct {
	cfg    config.Config
	client []client.Option
	drops  []drops.Option
}

// WithNetwork selects the bitcoin network. Defaults to mainnet.
func WithNetwork(network config.Network) Option {
	return func(o *options) error {
		o.cfg.Network = network
		return nil
	}
}

// WithChain selects the chain. Defaults to bitcoin.
func WithChain(chain config.Chain) Option {
	return func(o *options) error {
		o.cfg.Chain = chain
		return nil
	}
}

// WithBaseURL points the SDK at a different backend.
func WithBaseURL(baseURL string) Option {
	return func(o *options) error {
		o.cfg.BaseURL = baseURL
		return nil
	}
}

// ————————————————————————————————————————————————————————————————————
// Forwarded client options
// ————————————————————————————————————————————————————————————————————

// WithHTTPClient replaces the underlying [http.Client].
func WithHTTPClient(hc *http.Client) Option { return withClient(client.WithClient(hc)) }

// WithTransport sets the base [http.RoundTripper].
func WithTransport(rt http.RoundTripper) Option { return withClient(client.WithTransport(rt)) }

// WithTimeout bounds every request. Zero, the default, means no timeout.
func WithTimeout(d time.Duration) Option { return withClient(client.WithTimeout(d)) }

// WithUserAgent sets a persistent User-Agent header.
func WithUserAgent(ua string) Option { return withClient(client.WithUserAgent(ua)) }

// WithRequestID stamps each request with a random X-Request-ID.
func WithRequestID() Option { return withClient(client.WithRequestID()) }

// WithThrottle rate limits outgoing requests.
func WithThrottle(rps, burst int) Option { return withClient(client.WithThrottle(rps, burst)) }

// WithLogger injects the logger used for transport diagnostics.
func WithLogger(logger *slog.Logger) Option { return withClient(client.WithLogger(logger)) }

// WithTracer traces each operation and each HTTP round trip.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		o.client = append(o.client, client.WithTracer(tracer))
		o.drops = append(o.drops, drops.WithTracer(tracer))
		return nil
	}
}

// WithUploadProgress logs multipart encoding progress for uploads.
func WithUploadProgress() Option {
	return func(o *options) error {
		o.drops = append(o.drops, drops.WithUploadProgress())
		return nil
	}
}

func withClient(opt client.Option) Option {
	return func(o *options) error {
		o.client = append(o.client, opt)
		return nil
	}
}
