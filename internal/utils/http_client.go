package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. Embedding exposes the full resty API
// while leaving room for application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTP client with its own
// configuration and connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
