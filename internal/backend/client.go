// Package backend talks to the content API that makes finished projects
// visible to consumers.
package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/eldritchfan/fancontent/internal/model"
)

// Client is a bearer-authenticated client for the content API.
type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient creates a Client for the API at baseURL, authenticating
// every request with token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(30 * time.Second).
			SetAuthToken(token),
		baseURL: baseURL,
	}
}

type registerRequest struct {
	BucketPath string            `json:"bucket_path"`
	Meta       model.ProjectMeta `json:"meta"`
}

// RegisterProject registers an uploaded project document with the API,
// pointing it at the object-store location of the project JSON. Any
// non-2xx response is an error carrying the status and body.
func (c *Client) RegisterProject(ctx context.Context, bucketPath string, meta model.ProjectMeta) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(registerRequest{BucketPath: bucketPath, Meta: meta}).
		Post(c.baseURL + "/v1/admin/fan_made_project")
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("registering project: %d - %s", resp.StatusCode(), resp.Body())
	}
	return nil
}
