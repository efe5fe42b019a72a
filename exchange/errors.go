package exchange

import "fmt"

// ConnectError is returned when no response could be obtained at all:
// DNS failure, refused connection, reset, etc.
type ConnectError struct {
	URL string
	Err error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("cannot connect to %s: %v", e.URL, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func (e *ConnectError) Message() string {
	return "Error: Unable to connect to the server. Perhaps the network is offline or the server hostname cannot be resolved."
}

// StatusError reports a response whose status code is not 2xx.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed: %s", e.Status)
}

func (e *StatusError) Message() string {
	return fmt.Sprintf("Error: Request failed with status code: %d.", e.StatusCode)
}
