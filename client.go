package databricks

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultTimeout    = 180 * time.Second
	defaultRetryLimit = 3
	defaultRetryDelay = 1 * time.Second
)

// Client is the Databricks jobs API client.
//
// A Client holds only immutable configuration and is safe for
// concurrent use by multiple goroutines. Connection material is
// resolved from the [ConnectionProvider] fresh on every call.
type Client struct {
	conns      ConnectionProvider
	httpClient *http.Client
	timeout    time.Duration
	retryLimit int
	retryDelay time.Duration
	logger     *slog.Logger
	userAgent  string
}

// NewClient creates a new client.
//
// The retry limit must be at least 1 and the retry delay non-negative;
// violating either is a configuration error reported here, before any
// call is made.
func NewClient(conns ConnectionProvider, opts ...Option) (*Client, error) {
	if conns == nil {
		return nil, newError(CodeInvalidConfig, "connection provider is required", 0, nil)
	}

	c := &Client{
		conns:      conns,
		httpClient: http.DefaultClient,
		timeout:    defaultTimeout,
		retryLimit: defaultRetryLimit,
		retryDelay: defaultRetryDelay,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		userAgent:  "databricks-go/" + Version,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.retryLimit < 1 {
		return nil, newError(CodeInvalidConfig,
			fmt.Sprintf("retry limit must be greater than or equal to 1, got %d", c.retryLimit), 0, nil)
	}
	if c.retryDelay < 0 {
		return nil, newError(CodeInvalidConfig,
			fmt.Sprintf("retry delay must be non-negative, got %v", c.retryDelay), 0, nil)
	}

	return c, nil
}
