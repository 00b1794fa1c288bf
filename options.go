package databricks

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request network timeout. Each retry attempt
// gets the full timeout. Default: 180s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRetryLimit sets the number of attempts made before giving up on a
// transient failure. Must be at least 1. Default: 3.
func WithRetryLimit(n int) Option {
	return func(c *Client) {
		c.retryLimit = n
	}
}

// WithRetryDelay sets the fixed wait between retry attempts. The delay
// is the same for every retry; there is no backoff. Default: 1s.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger that receives auth-selection and retry
// attempt notifications. By default logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent replaces the User-Agent header sent with every request.
// Default: "databricks-go/<version>".
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}
