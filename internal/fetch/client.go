// Package fetch retrieves externally hosted files over HTTP.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// StatusError reports a non-success HTTP response, carrying the status
// and the response body for the operator to inspect.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned bad status: %d - %s", e.URL, e.StatusCode, e.Body)
}

// Client fetches source files referenced by project documents.
//
// Image hosts the community links to are a mixed bag, so the client
// sends a plain GET with a generous timeout and treats anything outside
// 2xx as a failure.
type Client struct {
	http *resty.Client
}

// NewClient creates a Client with a 60 second request timeout.
func NewClient() *Client {
	return &Client{
		http: resty.New().SetTimeout(60 * time.Second),
	}
}

// GetBytes fetches url and returns the body. A non-2xx status or an
// empty body is an error.
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	body := resp.Body()
	if len(body) == 0 {
		return nil, fmt.Errorf("%s returned empty body", url)
	}
	return body, nil
}
