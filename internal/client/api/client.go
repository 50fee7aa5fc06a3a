// Package api implements the HTTP transport to the deltasync server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/deltasync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the operations the sync client performs against the
// server.
type ClientAPI interface {
	// SendBatch uploads one batch of patches.
	SendBatch(ctx context.Context, patches []api.DeltaPatch) (*api.SyncResponse, error)

	// GetObject fetches the authoritative state of one object.
	GetObject(ctx context.Context, objectID string) (*api.ObjectResponse, error)

	// Health reports whether the server is reachable.
	Health(ctx context.Context) error
}

// Client is the HTTP implementation of ClientAPI.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client bound to the server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendBatch uploads one ordered batch of patches to the server and returns
// its verdict. Implements the sync coordinator's Transport interface.
func (c *Client) SendBatch(ctx context.Context, patches []api.DeltaPatch) (*api.SyncResponse, error) {
	req := api.SyncRequest{Patches: patches}

	var resp api.SyncResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync", req, &resp); err != nil {
		return nil, fmt.Errorf("sync request failed: %w", err)
	}
	return &resp, nil
}

// GetObject fetches the authoritative state of one object.
func (c *Client) GetObject(ctx context.Context, objectID string) (*api.ObjectResponse, error) {
	path := "/api/v1/objects/" + url.PathEscape(objectID)

	var resp api.ObjectResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get object request failed: %w", err)
	}
	return &resp, nil
}

// Health checks server availability. Used as the reachability signal.
func (c *Client) Health(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, nil); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// doRequest performs one HTTP request with a JSON body and decodes the
// JSON response into result when it is non-nil.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
