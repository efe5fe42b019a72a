package exchange

import (
	"net/http"
	"time"
)

type Options struct {
	// Timeout is zero by default: a request blocks until the transport
	// resolves or fails.
	Timeout         time.Duration
	FollowRedirects bool
	Auth            AuthOptions

	// Transport replaces http.DefaultTransport when non-nil.
	Transport http.RoundTripper
}

type AuthOptions struct {
	Enabled  bool
	UserName string
	Password string
}
