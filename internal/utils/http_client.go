package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// defaultRequestTimeout bounds calls when the caller configured none.
const defaultRequestTimeout = 15 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own connection pool, a JSON
// Accept header and the given timeout (15s when timeout is not positive).
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().Get("https://api-takumi.mihoyo.com/...")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
