// Package api implements the account backend calls that keep a user's
// addon collection in sync across devices.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/flixkit-labs/flixkit/internal/addon"
)

// Client talks to the account backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(a *Client) {
		a.httpClient = c
	}
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiError is the error object of the backend response envelope.
type apiError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// envelope is the backend response wrapper: exactly one of result or error
// is set.
type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  *apiError       `json:"error"`
}

type collectionSetRequest struct {
	Type    string           `json:"type"`
	AuthKey string           `json:"authKey"`
	Addons  addon.Collection `json:"addons"`
}

type collectionGetRequest struct {
	Type    string `json:"type"`
	AuthKey string `json:"authKey"`
	Update  bool   `json:"update"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type collectionGetResponse struct {
	Addons addon.Collection `json:"addons"`
}

// PushAddonCollection replaces the server-side addon collection with the
// given one.
func (c *Client) PushAddonCollection(authKey string, addons addon.Collection) error {
	if addons == nil {
		addons = addon.Collection{}
	}
	req := collectionSetRequest{Type: "AddonCollectionSet", AuthKey: authKey, Addons: addons}
	var result successResponse
	if err := c.post("addonCollectionSet", req, &result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("backend rejected the addon collection")
	}
	return nil
}

// PullAddonCollection fetches the server-side addon collection.
func (c *Client) PullAddonCollection(authKey string) (addon.Collection, error) {
	req := collectionGetRequest{Type: "AddonCollectionGet", AuthKey: authKey, Update: true}
	var result collectionGetResponse
	if err := c.post("addonCollectionGet", req, &result); err != nil {
		return nil, err
	}
	return result.Addons, nil
}

// post sends one backend call and unwraps the response envelope into
// result.
func (c *Client) post(endpoint string, body, result interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", endpoint, err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/api/"+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned status %d for %s", resp.StatusCode, endpoint)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("parsing %s response: %w", endpoint, err)
	}
	if env.Error != nil {
		return fmt.Errorf("backend error %d: %s", env.Error.Code, env.Error.Message)
	}
	if env.Result == nil {
		return fmt.Errorf("%s response carries neither result nor error", endpoint)
	}
	if err := json.Unmarshal(env.Result, result); err != nil {
		return fmt.Errorf("parsing %s result: %w", endpoint, err)
	}
	return nil
}
