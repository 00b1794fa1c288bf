package databricks

import "fmt"

// Error code values carried by [Error.Code].
const (
	// CodeInvalidConfig marks configuration mistakes caught before any
	// network I/O, such as an unsupported HTTP method or a retry limit
	// below 1. Never retried.
	CodeInvalidConfig = "INVALID_CONFIG"

	// CodeConnectionFailed marks network-level failures where no
	// response was received (connection refused, timeout). Transient.
	CodeConnectionFailed = "CONNECTION_FAILED"

	// CodeAPIError marks a non-2xx response from the API. Responses
	// with status 500 and above are transient; the rest are not.
	CodeAPIError = "API_ERROR"

	// CodeInvalidResponse marks a 2xx response whose body could not be
	// decoded, or that is missing a required field.
	CodeInvalidResponse = "INVALID_RESPONSE"

	// CodeRetriesExhausted marks a call abandoned after the configured
	// number of attempts all failed transiently.
	CodeRetriesExhausted = "RETRIES_EXHAUSTED"

	// CodeCancelled marks a call abandoned because the caller's context
	// was cancelled or its deadline passed.
	CodeCancelled = "CANCELLED"

	// CodeUnexpectedState marks a run life-cycle state outside the
	// recognized set, usually a state introduced by a newer API.
	CodeUnexpectedState = "UNEXPECTED_STATE"
)

// Error represents a Databricks client error.
type Error struct {
	// Code classifies the failure; see the Code constants.
	Code string

	// Message is a human-readable description. For API errors it
	// includes the response body.
	Message string

	// Status is the upstream HTTP status code, when a response was
	// received. Zero otherwise.
	Status int

	// Cause is the underlying error, if any.
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("databricks: %s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("databricks: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// retryable reports whether the failure is transient: either no response
// was received at all, or the server answered with a 5xx.
func (e *Error) retryable() bool {
	return e.Code == CodeConnectionFailed || e.Status >= 500
}

func newError(code, message string, status int, cause error) *Error {
	return &Error{Code: code, Message: message, Status: status, Cause: cause}
}
