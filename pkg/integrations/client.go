package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zonca/citegen/pkg/httputil"
)

// Client provides shared HTTP functionality for the registry, DOI, and
// repository collaborators. It owns the User-Agent header and the mapping
// from HTTP status codes to sentinel errors.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given default headers, applied to all
// requests made through this client. A User-Agent is added unless headers
// already carries one. Pass nil if no extra headers are needed.
func NewClient(headers map[string]string) *Client {
	merged := map[string]string{"User-Agent": UserAgent}
	for k, v := range headers {
		merged[k] = v
	}
	return &Client{
		http:    NewHTTPClient(),
		headers: merged,
	}
}

// SetTimeout overrides the default request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.http.Timeout = d
	}
}

// SetUserAgent overrides the default User-Agent header.
func (c *Client) SetUserAgent(ua string) {
	if ua != "" {
		c.headers["User-Agent"] = ua
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	body, err := c.doRequest(ctx, url, nil)
	if err != nil {
		return err
	}
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

// GetText performs an HTTP GET request and returns the response body as a
// string. Useful for non-JSON endpoints like BibTeX content negotiation.
func (c *Client) GetText(ctx context.Context, url string, headers map[string]string) (string, error) {
	body, err := c.doRequest(ctx, url, headers)
	if err != nil {
		return "", err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	return string(data), err
}

// Exists reports whether url resolves to an existing resource. It issues a
// HEAD request and falls back to GET when the server rejects HEAD with
// 405 Method Not Allowed. Redirects are followed; any transport failure or
// non-2xx final status counts as non-existent. Exists never returns an error
// and never retries.
func (c *Client) Exists(ctx context.Context, url string) bool {
	if url == "" {
		return false
	}
	ok, status := c.probe(ctx, http.MethodHead, url)
	if status == http.StatusMethodNotAllowed {
		ok, _ = c.probe(ctx, http.MethodGet, url)
	}
	return ok
}

func (c *Client) probe(ctx context.Context, method, url string) (ok bool, status int) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return false, 0
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false, 0
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300, resp.StatusCode
}

func (c *Client) doRequest(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
