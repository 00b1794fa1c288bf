package databricks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"
)

// maxErrorBodySize limits the size of error response bodies surfaced in
// error messages. 4KB is sufficient for the API's error payloads while
// protecting against misconfigured servers returning huge bodies.
const maxErrorBodySize = 4096

// doAPICall performs one logical API call with bounded retries.
//
// The connection is resolved fresh from the provider, the target URL is
// https://<host>/<path>, and the request is signed by the selected
// authenticator. GET requests send params as query parameters; POST and
// PATCH requests send them as a JSON body. A 2xx response is decoded
// into out when out is non-nil.
//
// Failures where no response was received and responses with status 500
// or above consume one attempt each, with a fixed delay between
// attempts; any other failure aborts immediately.
func (c *Client) doAPICall(ctx context.Context, e endpoint, params map[string]any, out any) error {
	switch e.method {
	case http.MethodGet, http.MethodPost, http.MethodPatch:
	default:
		return newError(CodeInvalidConfig, "unexpected HTTP method: "+e.method, 0, nil)
	}

	conn, err := c.conns.Connection(ctx)
	if err != nil {
		return newError(CodeInvalidConfig, "resolving connection", 0, err)
	}
	auth, host := c.resolveAuth(conn)

	callURL := "https://" + host + "/" + e.path

	var body []byte
	if e.method == http.MethodGet {
		if len(params) > 0 {
			query := url.Values{}
			for key, value := range params {
				query.Set(key, fmt.Sprint(value))
			}
			callURL += "?" + query.Encode()
		}
	} else if params != nil {
		body, err = json.Marshal(params)
		if err != nil {
			return newError(CodeInvalidConfig, "encoding request body", 0, err)
		}
	}

	for attempt := 1; ; attempt++ {
		callErr := c.attemptOnce(ctx, e.method, callURL, auth, body, out)
		if callErr == nil {
			return nil
		}

		var apiErr *Error
		if !errors.As(callErr, &apiErr) || !apiErr.retryable() {
			// The caller probably made a mistake. Don't retry.
			return callErr
		}

		c.logger.Warn("api request failed",
			slog.Int("attempt", attempt),
			slog.String("method", e.method),
			slog.String("path", e.path),
			slog.Any("error", callErr))

		if attempt == c.retryLimit {
			return newError(CodeRetriesExhausted,
				fmt.Sprintf("api requests failed %d times, giving up", c.retryLimit),
				apiErr.Status, callErr)
		}

		select {
		case <-time.After(c.retryDelay):
		case <-ctx.Done():
			return newError(CodeCancelled, "cancelled while waiting to retry", 0, ctx.Err())
		}
	}
}

// attemptOnce executes a single HTTP request and classifies its outcome.
func (c *Client) attemptOnce(ctx context.Context, method, callURL string, auth authenticator, body []byte, out any) error {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, callURL, reader)
	if err != nil {
		return newError(CodeInvalidConfig, "building request", 0, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	auth.sign(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return newError(CodeCancelled, "request cancelled", 0, ctx.Err())
		}
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return newError(CodeAPIError,
			fmt.Sprintf("response: %s, status code: %d", bytes.TrimSpace(respBody), resp.StatusCode),
			resp.StatusCode, nil)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newError(CodeInvalidResponse, "decoding response body", resp.StatusCode, err)
	}
	return nil
}

// classifyTransportError maps errors from the HTTP client, where no
// response was received, onto the transient error code.
func classifyTransportError(err error) *Error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(CodeConnectionFailed, "request timed out", 0, err)
	}
	return newError(CodeConnectionFailed, "connection failed", 0, err)
}
