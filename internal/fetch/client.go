// Package fetch retrieves a pool's public page and extracts the JSON state
// document the page embeds in a <script id="store"> tag.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"poolmirror/internal/domain"
	"poolmirror/internal/infra"
)

const storeScriptID = "store"

// Options controls how the pool page client is configured.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client fetches pool pages over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
}

// NewClient validates the options and constructs a Client.
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = infra.DefaultPoolBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("fetch: invalid base url: %w", err)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient, logger: opts.Logger}, nil
}

// StoreJSON downloads the page for poolID and returns the embedded raw store
// document. Transport failures, non-2xx statuses and a page without the store
// script are all fatal for the run.
func (c *Client) StoreJSON(ctx context.Context, poolID string) ([]byte, error) {
	pageURL := c.baseURL + url.PathEscape(poolID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: get pool page: %w", err)
	}
	defer res.Body.Close()

	if c.logger != nil {
		c.logger.Debug().Str("url", pageURL).Int("status", res.StatusCode).Msg("fetched pool page")
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("fetch: pool page returned status %d", res.StatusCode)
	}

	raw, err := extractStoreJSON(res.Body)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// extractStoreJSON walks the parsed document for <script id="store"> and
// returns its text content.
func extractStoreJSON(r io.Reader) ([]byte, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("fetch: parse pool page: %w", err)
	}

	var raw string
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "script" {
			for _, attr := range n.Attr {
				if attr.Key == "id" && attr.Val == storeScriptID {
					var sb strings.Builder
					for child := n.FirstChild; child != nil; child = child.NextSibling {
						if child.Type == html.TextNode {
							sb.WriteString(child.Data)
						}
					}
					raw = sb.String()
					return true
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if walk(child) {
				return true
			}
		}
		return false
	}

	if !walk(doc) || strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("fetch: %w", domain.ErrStoreMissing)
	}
	return []byte(raw), nil
}
