package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/lucasv/prepdeck/internal/errors"
	"github.com/lucasv/prepdeck/internal/logger"
)

// Client talks to the learning-platform backend over REST. Session
// credentials are cookie-based; the jar carries them across calls after the
// external auth flow has established them.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		log: logger.Default().WithPrefix("gateway"),
	}, nil
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out (when non-nil). op names the call for error reporting.
func (c *Client) doJSON(ctx context.Context, op, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.NewInternalError(fmt.Errorf("encode %s request: %w", op, err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(ctx, op, req, out)
}

// doRaw issues a request with a raw (non-JSON) body, used for audio uploads.
func (c *Client) doRaw(ctx context.Context, op, method, path, contentType string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.NewInternalError(err)
	}
	req.Header.Set("Content-Type", contentType)
	return c.send(ctx, op, req, out)
}

func (c *Client) send(ctx context.Context, op string, req *http.Request, out any) error {
	log := logger.FromContext(ctx).WithPrefix("gateway").WithFields(map[string]any{
		"op":   op,
		"path": req.URL.Path,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed: %v", err)
		return errors.NewRemoteError(op, err)
	}
	defer resp.Body.Close()

	log.Debug("response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return errors.NewRemoteStatusError(op, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error("failed to decode response: %v", err)
		return errors.NewRemoteError(op, err)
	}
	return nil
}

func queryPath(path string, params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	if encoded := q.Encode(); encoded != "" {
		return path + "?" + encoded
	}
	return path
}
