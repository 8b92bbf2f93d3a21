package upstream

import (
	"fmt"
)

// NetworkError means the upstream could not be reached or did not answer in time.
type NetworkError struct {
	Source  string
	Path    string
	Timeout bool
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s %s: request timed out: %v", e.Source, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: upstream unreachable: %v", e.Source, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusError carries a non-2xx upstream response.
type StatusError struct {
	Source     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: upstream returned %d: %s", e.Source, e.Path, e.StatusCode, e.Message)
}

// PayloadError means the upstream answered 2xx with a body of the wrong shape.
type PayloadError struct {
	Source string
	Path   string
	Reason string
	Err    error
}

func (e *PayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: invalid response payload: %s: %v", e.Source, e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s: invalid response payload: %s", e.Source, e.Path, e.Reason)
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}
