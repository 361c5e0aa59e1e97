package watson

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Config holds client configuration shared by all Watson services.
type Config struct {
	// URL is the service endpoint. Each service supplies its own
	// default when left empty.
	URL string

	// Version is the API version date (yyyy-MM-dd). Pinning the
	// version keeps calls working when the service introduces
	// breaking changes.
	Version string

	// Authenticator adds credentials to outgoing requests.
	Authenticator Authenticator

	// HTTPClient overrides the shared HTTP client.
	HTTPClient *http.Client

	// Logger is the structured logger to use.
	Logger *slog.Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// DefaultHeaders are added to every request. Used for headers like
	// X-Watson-Learning-Opt-Out and X-Watson-Metadata.
	DefaultHeaders http.Header

	// EnableBreaker wraps requests in a circuit breaker that opens
	// after consecutive server-side failures.
	EnableBreaker bool

	// BreakerTimeout is how long the breaker stays open before
	// probing again.
	BreakerTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Logger:         slog.Default(),
		BreakerTimeout: 30 * time.Second,
	}
}

// Apply applies functional options to the config.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Validate checks the configuration for required fields.
func (c *Config) Validate() error {
	if c.Version == "" {
		return ErrMissingVersion
	}
	return nil
}

// Option is a functional option for configuring a service client.
type Option func(*Config)

// WithURL sets the service endpoint.
func WithURL(url string) Option {
	return func(c *Config) {
		c.URL = url
	}
}

// WithVersion sets the API version date (yyyy-MM-dd).
func WithVersion(version string) Option {
	return func(c *Config) {
		c.Version = version
	}
}

// WithBasicAuth authenticates with a username and password.
func WithBasicAuth(username, password string) Option {
	return func(c *Config) {
		c.Authenticator = &BasicAuthenticator{Username: username, Password: password}
	}
}

// WithIAMAPIKey authenticates by exchanging an IBM Cloud API key for
// IAM tokens, refreshed automatically before expiry.
func WithIAMAPIKey(apiKey string) Option {
	return func(c *Config) {
		c.Authenticator = NewIAMAuthenticator(apiKey)
	}
}

// WithBearerToken authenticates with a caller-managed access token.
func WithBearerToken(token string) Option {
	return func(c *Config) {
		c.Authenticator = &BearerAuthenticator{Token: token}
	}
}

// WithAuthenticator sets a custom authenticator.
func WithAuthenticator(auth Authenticator) Option {
	return func(c *Config) {
		c.Authenticator = auth
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithDefaultHeader adds a header to every request made by the client.
func WithDefaultHeader(name, value string) Option {
	return func(c *Config) {
		if c.DefaultHeaders == nil {
			c.DefaultHeaders = http.Header{}
		}
		c.DefaultHeaders.Add(name, value)
	}
}

// WithCircuitBreaker enables a circuit breaker around requests. The
// breaker opens after consecutive retryable failures and stays open for
// timeout before letting a probe request through.
func WithCircuitBreaker(timeout time.Duration) Option {
	return func(c *Config) {
		c.EnableBreaker = true
		if timeout > 0 {
			c.BreakerTimeout = timeout
		}
	}
}

// newBreaker builds the gobreaker instance for a service client.
func newBreaker(name string, timeout time.Duration) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}
