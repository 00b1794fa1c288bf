package databricks_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakejobs/databricks-go"
)

// TestRetry_SucceedsAfterServerErrors verifies the happy retry path:
// two 500s consume two attempts and two fixed delays, the third attempt
// succeeds.
func TestRetry_SucceedsAfterServerErrors(t *testing.T) {
	// Arrange: fail the first two attempts.
	var attempts atomic.Int32
	const retryDelay = 50 * time.Millisecond
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			mustEncode(w, map[string]any{"error": "upstream outage"})
			return
		}
		mustEncode(w, map[string]any{"run_id": 42})
	}),
		databricks.WithRetryLimit(3),
		databricks.WithRetryDelay(retryDelay),
	)

	// Act
	start := time.Now()
	runID, err := client.SubmitRun(context.Background(), map[string]any{"job_id": 1})
	elapsed := time.Since(start)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(42), runID)
	assert.EqualValues(t, 3, attempts.Load())
	assert.GreaterOrEqual(t, elapsed, 2*retryDelay, "expected two fixed inter-retry sleeps")
}

// TestRetry_Exhaustion verifies that a persistent 5xx gives up after
// exactly retry-limit attempts with a retry-exhaustion error.
func TestRetry_Exhaustion(t *testing.T) {
	var attempts atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}),
		databricks.WithRetryLimit(2),
		databricks.WithRetryDelay(time.Millisecond),
	)

	_, err := client.SubmitRun(context.Background(), map[string]any{"job_id": 1})

	require.Error(t, err)
	assert.EqualValues(t, 2, attempts.Load())

	var apiErr *databricks.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, databricks.CodeRetriesExhausted, apiErr.Code)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Contains(t, apiErr.Message, "giving up")
	// The last attempt's failure stays reachable through the chain.
	var cause *databricks.Error
	require.ErrorAs(t, apiErr.Cause, &cause)
	assert.Equal(t, databricks.CodeAPIError, cause.Code)
}

// TestRetry_ClientErrorShortCircuits verifies that a 4xx never retries
// and surfaces the response body and status code.
func TestRetry_ClientErrorShortCircuits(t *testing.T) {
	var attempts atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
		mustEncode(w, map[string]any{"error_code": "RESOURCE_DOES_NOT_EXIST"})
	}),
		databricks.WithRetryLimit(3),
		databricks.WithRetryDelay(time.Millisecond),
	)

	_, err := client.GetRunPageURL(context.Background(), 42)

	require.Error(t, err)
	assert.EqualValues(t, 1, attempts.Load(), "4xx responses must not be retried")

	var apiErr *databricks.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, databricks.CodeAPIError, apiErr.Code)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Contains(t, apiErr.Message, "RESOURCE_DOES_NOT_EXIST")
	assert.Contains(t, apiErr.Message, "404")
}

// TestRetry_ConnectionErrorIsTransient verifies that a pure network
// failure (no response received) consumes attempts like a 5xx.
func TestRetry_ConnectionErrorIsTransient(t *testing.T) {
	// Arrange: a server that is already gone.
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	httpClient := server.Client()
	host := server.URL
	server.Close()

	client, err := databricks.NewClient(databricks.StaticConnection{
		Host:  host,
		Token: testToken,
	},
		databricks.WithHTTPClient(httpClient),
		databricks.WithRetryLimit(2),
		databricks.WithRetryDelay(time.Millisecond),
	)
	require.NoError(t, err)

	// Act
	_, err = client.SubmitRun(context.Background(), map[string]any{"job_id": 1})

	// Assert: both attempts were spent on the dead host.
	var apiErr *databricks.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, databricks.CodeRetriesExhausted, apiErr.Code)
	var cause *databricks.Error
	require.ErrorAs(t, apiErr.Cause, &cause)
	assert.Equal(t, databricks.CodeConnectionFailed, cause.Code)
}

// TestMalformedResponseIsFatal verifies that a 2xx with a body that is
// not JSON aborts without retrying.
func TestMalformedResponseIsFatal(t *testing.T) {
	var attempts atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		_, _ = w.Write([]byte("<html>not json</html>"))
	}),
		databricks.WithRetryLimit(3),
		databricks.WithRetryDelay(time.Millisecond),
	)

	_, err := client.GetJobID(context.Background(), 42)

	require.Error(t, err)
	assert.EqualValues(t, 1, attempts.Load())

	var apiErr *databricks.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, databricks.CodeInvalidResponse, apiErr.Code)
}

// TestContextCancellation verifies that a cancelled caller context
// aborts the call instead of burning through retries.
func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SubmitRun(ctx, map[string]any{"job_id": 1})

	require.Error(t, err)
	var apiErr *databricks.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, databricks.CodeCancelled, apiErr.Code)
}

// TestConcurrentCalls verifies that independent calls share no state:
// a burst of concurrent queries all resolve correctly.
func TestConcurrentCalls(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mustEncode(w, map[string]any{
			"run_id": 42,
			"state": map[string]any{
				"life_cycle_state": "RUNNING",
				"state_message":    "In run",
			},
		})
	}))

	const workers = 8
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, err := client.GetRunState(context.Background(), 42)
			errs <- err
		}()
	}
	for i := 0; i < workers; i++ {
		require.NoError(t, <-errs)
	}
}
