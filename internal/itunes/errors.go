package itunes

import "fmt"

// TransportError reports an exchange that could not be completed.
type TransportError struct {
	URI string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s failed: %v", e.URI, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError reports a response whose status was not 200 OK.
type HTTPStatusError struct {
	URI        string
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	return fmt.Sprintf("search %s returned status %s", e.URI, status)
}

// MalformedResponseError reports a body that does not decode into a Response.
type MalformedResponseError struct {
	URI string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("decode response from %s: %v", e.URI, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
