// Package databricks provides a Go client for the Databricks jobs REST API.
//
// The client submits and manages job runs, polls run state, and issues
// cluster and library lifecycle calls. Every call goes through a shared
// execution engine that resolves credentials, signs the request, and
// retries transient failures with a fixed delay.
//
// # Installation
//
// To install the client, use go get:
//
//	go get github.com/lakejobs/databricks-go
//
// # Quick Start
//
// Create a client from a connection and submit a run:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//	    "os"
//
//	    "github.com/lakejobs/databricks-go"
//	)
//
//	func main() {
//	    client, err := databricks.NewClient(databricks.StaticConnection{
//	        Host:  "xx.cloud.databricks.com",
//	        Token: os.Getenv("DATABRICKS_TOKEN"),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    runID, err := client.SubmitRun(context.Background(), map[string]any{
//	        "new_cluster": map[string]any{
//	            "spark_version": "7.3.x-scala2.12",
//	            "node_type_id":  "i3.xlarge",
//	            "num_workers":   2,
//	        },
//	        "notebook_task": map[string]any{"notebook_path": "/Users/me/etl"},
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("run %d started\n", runID)
//	}
//
// # Client Configuration
//
// The client is configured with functional options:
//
//	client, err := databricks.NewClient(provider,
//	    databricks.WithTimeout(3*time.Minute),
//	    databricks.WithRetryLimit(5),
//	    databricks.WithRetryDelay(2*time.Second),
//	)
//
// Connection material (host and credentials) is supplied by a
// [ConnectionProvider] and re-resolved on every call, so rotated
// credentials take effect without rebuilding the client. Use
// [StaticConnection] when the connection is fixed for the process
// lifetime.
//
// # Retry Behavior
//
// Failures where no response was received (connection errors, timeouts)
// and responses with status 500 or above are considered transient and
// retried up to the configured limit, waiting a fixed delay between
// attempts. Any other failure aborts immediately. See [Client] options
// for tuning.
//
// # Error Handling
//
// All failures are reported as *[Error] values carrying a code, the
// upstream HTTP status when one was received, and the underlying cause:
//
//	runID, err := client.RunNow(ctx, jobSpec)
//	if err != nil {
//	    var apiErr *databricks.Error
//	    if errors.As(err, &apiErr) {
//	        switch apiErr.Code {
//	        case databricks.CodeRetriesExhausted:
//	            // Transient outage outlasted the retry budget.
//	        case databricks.CodeAPIError:
//	            // The API rejected the call; apiErr.Status and
//	            // apiErr.Message carry the response.
//	        }
//	    }
//	}
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines. Calls
// share no mutable state; each one resolves its connection, signs, and
// retries independently.
//
// # API Version Compatibility
//
// This client targets Databricks REST API 2.0. Use [IsCompatible] to
// check a workspace-reported API version against the supported range.
package databricks
