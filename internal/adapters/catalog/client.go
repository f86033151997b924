// Package catalog implements ports.Catalog over the CurseForge-compatible HTTP API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/zerr"
)

const apiKeyHeader = "x-api-key"

var _ ports.Catalog = (*Client)(nil)

// Client implements ports.Catalog. Every call is a single HTTP request.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the API at baseURL. The timeout bounds each request,
// body included. An empty apiKey sends no key header.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// fileResponse is the envelope of GET /mods/{projectID}/files/{fileID}.
type fileResponse struct {
	Data domain.RemoteFile `json:"data"`
}

// ResolveFile looks up the file name and download URL of ref.
func (c *Client) ResolveFile(ctx context.Context, ref domain.AssetRef) (domain.RemoteFile, error) {
	url := fmt.Sprintf("%s/mods/%d/files/%d", c.baseURL, ref.ProjectID, ref.FileID)

	body, err := c.get(ctx, url)
	if err != nil {
		return domain.RemoteFile{}, err
	}

	var resp fileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.RemoteFile{}, zerr.With(zerr.Wrap(err, "failed to decode catalog response"), "url", url)
	}
	return resp.Data, nil
}

// Download fetches the full body at url.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build request"), "url", url)
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "request failed"), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domain.Fail(domain.ErrUnexpectedStatus, "status_code", resp.StatusCode, "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read response body"), "url", url)
	}
	return body, nil
}
