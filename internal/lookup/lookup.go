// Package lookup queries a vendor's product search for purchase suggestions.
// It is strictly best-effort: any failure (timeout, bad status, unexpected
// body) yields an empty result, never an error that blocks catalog pages.
package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// Timeout bounds a single vendor request.
const Timeout = 5 * time.Second

// DefaultBaseURL is the vendor search endpoint. Overridable for tests.
const DefaultBaseURL = "https://api.bunnings.com.au/v1/products/search"

// Result is one product suggestion from the vendor.
type Result struct {
	Title string  `json:"title"`
	Price float64 `json:"price,omitempty"`
	URL   string  `json:"url,omitempty"`
}

// Client performs vendor product lookups.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a lookup client with the default endpoint and timeout.
func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{Timeout: Timeout},
	}
}

// Search returns product suggestions for a query term. Failures are
// swallowed and reported as an empty list.
func (c *Client) Search(ctx context.Context, term string) []Result {
	if term == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"?q="+url.QueryEscape(term), nil)
	if err != nil {
		return nil
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var body struct {
		Results []Result `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil
	}
	return body.Results
}
