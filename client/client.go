package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/totegamma/citydesk"
	"github.com/totegamma/citydesk/internal/domain"
)

const defaultTimeout = 3 * time.Second

// Client fetches documents from the backing origin.
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func New(baseURL string) *Client {
	httpClient := http.Client{
		Timeout: defaultTimeout,
	}

	c := &Client{
		client:    &httpClient,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "citydesk",
	}
	httpClient.Transport = c
	return c
}

func (c *Client) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)
	return http.DefaultTransport.RoundTrip(req)
}

// BaseURL returns the normalized origin base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchAsset retrieves a document from the origin, preserving the origin's
// content type. Missing documents are reported as not-found; everything else
// is an origin fault.
func (c *Client) FetchAsset(ctx context.Context, path string) (citydesk.Asset, error) {
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return citydesk.Asset{}, errors.Wrap(err, "failed to create request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return citydesk.Asset{}, errors.Wrap(err, "failed to fetch from origin")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return citydesk.Asset{}, domain.NotFoundError{Resource: "asset"}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return citydesk.Asset{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return citydesk.Asset{}, errors.Wrap(err, "failed to read origin response")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return citydesk.Asset{
		ContentType: contentType,
		Body:        body,
	}, nil
}

// FetchText retrieves a document body as a string, used for externally
// stored templates.
func (c *Client) FetchText(ctx context.Context, path string) (string, error) {
	asset, err := c.FetchAsset(ctx, path)
	if err != nil {
		return "", err
	}
	return string(asset.Body), nil
}
