// Package transport provides the authenticated JSON HTTP client shared
// by the catalogue and mapping API clients.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/loukach/infocar-eurotax-mapper/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = 30 * time.Second

const userAgent = "infocar-eurotax-mapper"

// Client provides JSON HTTP client functionality with authentication
// against a single base URL.
type Client struct {
	http     *http.Client
	baseURL  string
	provider string
	auth     Authenticator
	apiKey   string
}

// New creates a transport client for the named provider API. The
// provider name only labels errors.
func New(provider, baseURL string, auth Authenticator, apiKey string) *Client {
	if auth == nil {
		auth = &NoAuth{}
	}
	return &Client{
		http:     &http.Client{Timeout: DefaultHTTPTimeout},
		baseURL:  strings.TrimRight(baseURL, "/"),
		provider: provider,
		auth:     auth,
		apiKey:   apiKey,
	}
}

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// PostJSON performs a POST request with a JSON body and decodes the
// JSON response into out.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// PutJSON performs a PUT request with a JSON body and decodes the JSON
// response into out.
func (c *Client) PutJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &errors.APIError{
				Provider: c.provider,
				Endpoint: endpoint,
				Message:  "encode request body",
				Err:      err,
			}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &errors.APIError{
			Provider: c.provider,
			Endpoint: endpoint,
			Message:  "create request",
			Err:      err,
		}
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		c.auth.Apply(req, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errors.ErrTimeout
		}
		if ctx.Err() == context.Canceled {
			return errors.ErrCanceled
		}
		return &errors.APIError{
			Provider:   c.provider,
			StatusCode: http.StatusBadGateway,
			Endpoint:   endpoint,
			Message:    err.Error(),
			Err:        err,
		}
	}
	defer resp.Body.Close()

	return c.decode(resp, endpoint, out)
}

// decode reads a response, mapping non-2xx statuses to APIError and
// decoding successful bodies into out when requested.
func (c *Client) decode(resp *http.Response, endpoint string, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if resp.StatusCode == http.StatusNotFound {
			return &errors.NotFoundError{Resource: c.provider, ID: endpoint}
		}
		return &errors.APIError{
			Provider:   c.provider,
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    strings.TrimSpace(string(payload)),
		}
	}

	if out == nil {
		return nil
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", endpoint, err)
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return &errors.APIError{
			Provider: c.provider,
			Endpoint: endpoint,
			Message:  "decode response body",
			Err:      err,
		}
	}
	return nil
}
