package services

import "fmt"

// UpstreamError is a non-success HTTP status from one of the NBA sources.
// The status and reason phrase are surfaced verbatim to the caller.
type UpstreamError struct {
	Source     string // "NBA CDN" or "NBA Stats"
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s Error: %s", e.Source, e.Status)
}

// TransportError is a network-level failure (DNS, refused connection,
// timeout) reaching an upstream.
type TransportError struct {
	Source string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s unreachable: %v", e.Source, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
