package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient] at construction.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the URL every relative request path is resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) { c.SetBaseURL(baseURL) }
}

// WithTimeout bounds every request made by the client.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) { c.SetTimeout(timeout) }
}

// WithCookieJar replaces the client's cookie jar.
func WithCookieJar(jar http.CookieJar) HTTPClientOption {
	return func(c *resty.Client) { c.SetCookieJar(jar) }
}

// WithoutRedirects makes the client return the first response instead of
// following 3xx redirects.
func WithoutRedirects() HTTPClientOption {
	return func(c *resty.Client) {
		c.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))
	}
}

// WithUserAgent sets the User-Agent header of every request.
func WithUserAgent(userAgent string) HTTPClientOption {
	return func(c *resty.Client) { c.SetHeader("User-Agent", userAgent) }
}

// NewHTTPClient creates and returns a new HTTPClient instance configured by
// opts.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithTimeout(10 * time.Second))
//	resp, err := client.R().Get("https://api.example.com/zones")
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}

	return &HTTPClient{Client: client}
}
