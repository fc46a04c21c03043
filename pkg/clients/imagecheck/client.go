package imagecheck

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client probes product image URLs with a HEAD request.
type Client struct {
	httpClient *resty.Client
}

// New builds an image check client with a short timeout; probes run inline
// with product saves and must not stall them.
func New() *Client {
	restyClient := resty.New()
	restyClient.SetTimeout(10 * time.Second)

	return &Client{httpClient: restyClient}
}

// Check reports whether rawURL looks like a fetchable http(s) URL and the
// server answers a HEAD request without an error status.
func (c *Client) Check(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse image url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported image url scheme %q", parsed.Scheme)
	}

	resp, err := c.httpClient.R().SetContext(ctx).Head(rawURL)
	if err != nil {
		return fmt.Errorf("probe image url: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("image url answered status %d", resp.StatusCode())
	}
	return nil
}
