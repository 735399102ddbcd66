package postmark

import (
	"net/http"
	"time"
)

// Defaults applied to every client.
const (
	DefaultRequestHost = "api.postmarkapp.com"
	DefaultTimeout     = 30 * time.Second
	Version            = "1.0.0"
	DefaultUserAgent   = "Postmark.Go - " + Version
)

// Header names carrying the API token.
const (
	ServerTokenHeader  = "X-Postmark-Server-Token"
	AccountTokenHeader = "X-Postmark-Account-Token"
)

// Options is the connection configuration shared by every call made through a
// client. The record is held by pointer: changes made after construction are
// seen by the next request. Callers that change it while requests are in
// flight must synchronize themselves.
type Options struct {
	UseTLS      bool          `json:"use_tls"      yaml:"use_tls"`
	RequestHost string        `json:"request_host" yaml:"request_host"`
	Timeout     time.Duration `json:"timeout"      yaml:"timeout"`
}

// DefaultOptions returns a fully populated Options record.
func DefaultOptions() *Options {
	return &Options{
		UseTLS:      true,
		RequestHost: DefaultRequestHost,
		Timeout:     DefaultTimeout,
	}
}

// Scheme returns "https" or "http" depending on UseTLS.
func (o *Options) Scheme() string {
	if o.UseTLS {
		return "https"
	}

	return "http"
}

// BaseURL returns the scheme and host requests are sent to.
func (o *Options) BaseURL() string {
	return o.Scheme() + "://" + o.RequestHost
}

// Config collects everything needed to build a client.
type Config struct {
	Options       *Options
	Logger        Logger
	Debug         bool
	ClientVersion string
	HTTPClient    *http.Client
	Interceptors  *InterceptorChain
}

// Option configures a Config.
type Option func(*Config)

// NewConfig returns a Config with defaults applied, then opts.
func NewConfig(opts ...Option) *Config {
	config := &Config{
		Options:       DefaultOptions(),
		ClientVersion: DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithTLS switches between https and http.
func WithTLS(useTLS bool) Option {
	return func(c *Config) {
		c.Options.UseTLS = useTLS
	}
}

// WithRequestHost overrides the API host. Empty values are ignored.
func WithRequestHost(host string) Option {
	return func(c *Config) {
		if host != "" {
			c.Options.RequestHost = host
		}
	}
}

// WithTimeout overrides the per-request timeout. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.Options.Timeout = timeout
		}
	}
}

// WithOptions replaces the Options record. The client keeps the pointer, so
// later changes to opts are seen by the client. Gaps are filled with defaults.
func WithOptions(opts *Options) Option {
	return func(c *Config) {
		if opts == nil {
			return
		}

		if opts.RequestHost == "" {
			opts.RequestHost = DefaultRequestHost
		}

		if opts.Timeout <= 0 {
			opts.Timeout = DefaultTimeout
		}

		c.Options = opts
	}
}

// WithLogger sets the logger used by the HTTP layer.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithDebug enables request/response logging when a Logger is set.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithClientVersion overrides the identifying string sent as User-Agent.
func WithClientVersion(version string) Option {
	return func(c *Config) {
		if version != "" {
			c.ClientVersion = version
		}
	}
}

// WithHTTPClient sets the underlying *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithInterceptors sets the request/response interceptor chain.
func WithInterceptors(chain *InterceptorChain) Option {
	return func(c *Config) {
		c.Interceptors = chain
	}
}
