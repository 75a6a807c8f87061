package client

import (
	"errors"
	"fmt"
	"net/http"
)

// maxErrBodySize caps the amount of response body read when
// building an error for an unexpected status code.
const maxErrBodySize = 4 << 10 // 4KB

// StatusAny2xx can be passed to [Client.Do] as the expected code to
// accept any successful (2xx) response.
const StatusAny2xx = 0

// execFn represents a func to operate on a response.
type execFn func(response *http.Response) error

var (
	// ErrUnexpectedStatusCode is the sentinel error wrapped by [UnexpectedStatusError].
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	// ErrAuthFailure is joined with [ErrUnexpectedStatusCode] when the server
	// responds with 401 Unauthorized or 403 Forbidden.
	ErrAuthFailure = errors.New("auth failure")
	// ErrConflictingBody is returned by [Request] when both a JSON payload
	// and a multipart form are supplied.
	ErrConflictingBody = errors.New("payload and multipart form are mutually exclusive")
)

// UnexpectedStatusError is returned when the HTTP response status code
// does not match the expected value.
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%v: %d, body: %s", e.Err, e.StatusCode, e.Body)
}

func (e *UnexpectedStatusError) Unwrap() error {
	return e.Err
}

// statusMatches reports whether got satisfies exp, treating
// StatusAny2xx as the whole success class.
func statusMatches(exp, got int) bool {
	if exp == StatusAny2xx {
		return got >= http.StatusOK && got < http.StatusMultipleChoices
	}

	return got == exp
}
