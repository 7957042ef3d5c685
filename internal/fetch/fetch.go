// Package fetch resolves document URLs into sizes and text content. It
// understands http(s) URLs, file paths and data URLs, so tests and local
// tooling work without a storage backend.
package fetch

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const maxBodyBytes = 64 << 20

// Client fetches documents. The zero value is not usable; construct with New.
type Client struct {
	http *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Size returns the document size in bytes without downloading the content.
// For http URLs it issues a HEAD request; for data URLs the size is computed
// from the encoding; for file paths it stats the file.
func (c *Client) Size(ctx context.Context, fileURL string) (int64, error) {
	switch scheme(fileURL) {
	case "data":
		return dataURLSize(fileURL)
	case "http", "https":
		return c.headSize(ctx, fileURL)
	default:
		info, err := os.Stat(filePath(fileURL))
		if err != nil {
			return 0, fmt.Errorf("stat %s: %w", fileURL, err)
		}
		return info.Size(), nil
	}
}

// FetchText downloads the document and returns its content as text.
func (c *Client) FetchText(ctx context.Context, fileURL string) (string, error) {
	switch scheme(fileURL) {
	case "data":
		b, err := dataURLContent(fileURL)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case "http", "https":
		return c.get(ctx, fileURL)
	default:
		b, err := os.ReadFile(filePath(fileURL))
		if err != nil {
			return "", fmt.Errorf("read %s: %w", fileURL, err)
		}
		return string(b), nil
	}
}

func (c *Client) headSize(ctx context.Context, fileURL string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, fileURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build HEAD request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HEAD %s: %w", fileURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("HEAD %s: status %d", fileURL, resp.StatusCode)
	}
	if resp.ContentLength < 0 {
		return 0, fmt.Errorf("HEAD %s: no content length", fileURL)
	}
	return resp.ContentLength, nil
}

func (c *Client) get(ctx context.Context, fileURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", fmt.Errorf("build GET request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", fileURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("GET %s: status %d", fileURL, resp.StatusCode)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", fileURL, err)
	}
	return string(b), nil
}

func scheme(fileURL string) string {
	if i := strings.Index(fileURL, ":"); i > 1 {
		return strings.ToLower(fileURL[:i])
	}
	return ""
}

func filePath(fileURL string) string {
	return strings.TrimPrefix(fileURL, "file://")
}

// dataURLSize computes the decoded payload size from the encoding alone, no
// decode pass needed for base64.
func dataURLSize(u string) (int64, error) {
	meta, payload, err := splitDataURL(u)
	if err != nil {
		return 0, err
	}
	if strings.Contains(meta, "base64") {
		n := int64(len(payload))
		padding := int64(strings.Count(payload[max(0, len(payload)-2):], "="))
		return n/4*3 - padding, nil
	}
	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return 0, fmt.Errorf("decode data url: %w", err)
	}
	return int64(len(decoded)), nil
}

func dataURLContent(u string) ([]byte, error) {
	meta, payload, err := splitDataURL(u)
	if err != nil {
		return nil, err
	}
	if strings.Contains(meta, "base64") {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("decode data url: %w", err)
		}
		return b, nil
	}
	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data url: %w", err)
	}
	return []byte(decoded), nil
}

func splitDataURL(u string) (meta, payload string, err error) {
	rest := strings.TrimPrefix(u, "data:")
	i := strings.Index(rest, ",")
	if i < 0 {
		return "", "", fmt.Errorf("malformed data url")
	}
	return rest[:i], rest[i+1:], nil
}
