// Package index queries a PyPI-compatible package index for published
// versions. The index is the single source of truth for the current version;
// every other source is a fallback.
package index

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"releasecraft/internal/errors"
	"releasecraft/internal/semver"
)

const userAgent = "releasecraft-release-tool/1.0"

type packagePayload struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
	Releases map[string][]json.RawMessage `json:"releases"`
}

type cacheEntry struct {
	payload *packagePayload
	fetched time.Time
}

// Client talks to a production and a staging index. Responses are cached per
// endpoint for a short TTL to stay under index rate limits.
type Client struct {
	httpClient *http.Client
	indexURL   string
	stagingURL string
	pkg        string
	cacheTTL   time.Duration
	cache      map[string]cacheEntry
}

func NewClient(indexURL, stagingURL, pkg string, cacheTTL time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		indexURL:   indexURL,
		stagingURL: stagingURL,
		pkg:        pkg,
		cacheTTL:   cacheTTL,
		cache:      make(map[string]cacheEntry),
	}
}

func (c *Client) fetch(ctx context.Context, baseURL string) (*packagePayload, error) {
	if entry, ok := c.cache[baseURL]; ok && time.Since(entry.fetched) < c.cacheTTL {
		return entry.payload, nil
	}

	url := fmt.Sprintf("%s/%s/json", baseURL, c.pkg)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.ErrIndexRequest.WithError(err).WithContext("url", url)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.ErrIndexRequest.WithError(err).WithContext("url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.ErrPackageNotFound.WithContext("package", c.pkg).WithContext("url", url)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.ErrIndexRequest.
			WithError(fmt.Errorf("unexpected status %d", resp.StatusCode)).
			WithContext("url", url)
	}

	var payload packagePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.ErrIndexResponse.WithError(err).WithContext("url", url)
	}

	c.cache[baseURL] = cacheEntry{payload: &payload, fetched: time.Now()}
	return &payload, nil
}

func (c *Client) versions(ctx context.Context, baseURL string) ([]string, error) {
	payload, err := c.fetch(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	all := make([]string, 0, len(payload.Releases))
	for version := range payload.Releases {
		all = append(all, version)
	}
	return all, nil
}

// ProductionVersion returns the latest final release on the production
// index, or "" when the package has none.
func (c *Client) ProductionVersion(ctx context.Context) (string, error) {
	versions, err := c.versions(ctx, c.indexURL)
	if err != nil {
		return "", err
	}
	return semver.Latest(versions, false), nil
}

// StagingVersion returns the latest version on the staging index, including
// pre-releases, or "" when the package has none.
func (c *Client) StagingVersion(ctx context.Context) (string, error) {
	versions, err := c.versions(ctx, c.stagingURL)
	if err != nil {
		return "", err
	}
	return semver.Latest(versions, true), nil
}

// Package reports the package name the client was built for.
func (c *Client) Package() string {
	return c.pkg
}
