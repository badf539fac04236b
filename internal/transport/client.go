// Package transport talks to addon endpoints. An addon publishes its
// manifest at <base>/manifest.json and answers resource requests on paths
// derived from the request ref. This package performs the network I/O the
// manifest core deliberately leaves out.
package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/flixkit-labs/flixkit/internal/branding"
	"github.com/flixkit-labs/flixkit/internal/manifest"
)

// ManifestSuffix is the path every addon transport URL ends with.
const ManifestSuffix = "/manifest.json"

// Client fetches documents from addon endpoints.
type Client struct {
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(t *Client) {
		t.httpClient = c
	}
}

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	c := &Client{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads the raw document at url.
func (c *Client) Fetch(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", branding.CLIName())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("addon returned status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// FetchManifest downloads and decodes the manifest published at url. An
// addon whose manifest fails to decode is unusable; the error is returned
// for the caller to surface, never treated as fatal here.
func (c *Client) FetchManifest(url string) (*manifest.Manifest, error) {
	body, err := c.Fetch(url)
	if err != nil {
		return nil, err
	}
	m, err := manifest.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("manifest from %s: %w", url, err)
	}
	return m, nil
}

// Get requests one resource from the addon behind transportURL. The
// transport URL always points at the manifest document; the resource path
// replaces that suffix.
func (c *Client) Get(transportURL string, ref manifest.ResourceRef) (json.RawMessage, error) {
	base, found := strings.CutSuffix(transportURL, ManifestSuffix)
	if !found {
		return nil, fmt.Errorf("transport URL %q does not end in %s", transportURL, ManifestSuffix)
	}
	return c.Fetch(base + ref.Path())
}
