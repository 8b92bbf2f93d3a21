package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hawaiielite-properties/pkg/logger"
	"hawaiielite-properties/pkg/metrics"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	DefaultTimeout  = 30 * time.Second
	maxBodySize     = 10 << 20
	maxMessageChars = 300
)

// Client issues GET requests against one upstream host. It never retries.
type Client struct {
	name       string
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. Headers are sent on every request.
func NewClient(name, baseURL string, timeout time.Duration, headers map[string]string) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewRapidAPIClient creates a client that authenticates with the RapidAPI key/host headers.
func NewRapidAPIClient(name, baseURL, host, apiKey string, timeout time.Duration) *Client {
	return NewClient(name, baseURL, timeout, map[string]string{
		"X-RapidAPI-Key":  apiKey,
		"X-RapidAPI-Host": host,
	})
}

func (c *Client) Name() string {
	return c.name
}

// GetJSON fetches path and decodes the body into a generic JSON value,
// checking it against schema when one is given.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, schema *jsonschema.Schema) (interface{}, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	return c.decode(path, body, schema)
}

// GetObject is GetJSON for endpoints that answer with a single JSON object.
func (c *Client) GetObject(ctx context.Context, path string, params url.Values, schema *jsonschema.Schema) (map[string]interface{}, error) {
	value, err := c.GetJSON(ctx, path, params, schema)
	if err != nil {
		return nil, err
	}
	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil, c.payloadError(path, "expected a JSON object", nil)
	}
	return obj, nil
}

// GetInto validates the body against schema and then decodes it into dest.
func (c *Client) GetInto(ctx context.Context, path string, params url.Values, schema *jsonschema.Schema, dest interface{}) error {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return err
	}
	if _, err := c.decode(path, body, schema); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return c.payloadError(path, "unexpected field types", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", c.name, err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(c.name, path).Observe(time.Since(start).Seconds())
	if err != nil {
		var netErr net.Error
		timeout := errors.As(err, &netErr) && netErr.Timeout()
		metrics.UpstreamErrorsTotal.WithLabelValues(c.name, "network").Inc()
		logger.GlobalLogger.Errorf("Upstream request failed: source=%s, path=%s, timeout=%t, error=%v", c.name, path, timeout, err)
		return nil, &NetworkError{Source: c.name, Path: path, Timeout: timeout, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(c.name, "network").Inc()
		logger.GlobalLogger.Errorf("Failed to read upstream response: source=%s, path=%s, status=%s, error=%v", c.name, path, resp.Status, err)
		return nil, &NetworkError{Source: c.name, Path: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamErrorsTotal.WithLabelValues(c.name, "status").Inc()
		message := extractMessage(body, resp.StatusCode)
		logger.GlobalLogger.Errorf("Upstream returned error status: source=%s, path=%s, status=%d, message=%s", c.name, path, resp.StatusCode, message)
		return nil, &StatusError{Source: c.name, Path: path, StatusCode: resp.StatusCode, Message: message}
	}

	logger.GlobalLogger.Debugf("Upstream request ok: source=%s, path=%s, bytes=%d, duration=%v", c.name, path, len(body), time.Since(start))
	return body, nil
}

func (c *Client) decode(path string, body []byte, schema *jsonschema.Schema) (interface{}, error) {
	var value interface{}
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, c.payloadError(path, "response is not valid JSON", err)
	}
	if schema != nil {
		if err := schema.Validate(value); err != nil {
			return nil, c.payloadError(path, "response does not match the expected shape", err)
		}
	}
	return value, nil
}

func (c *Client) payloadError(path, reason string, err error) error {
	metrics.UpstreamErrorsTotal.WithLabelValues(c.name, "payload").Inc()
	logger.GlobalLogger.Errorf("Invalid upstream payload: source=%s, path=%s, reason=%s, error=%v", c.name, path, reason, err)
	return &PayloadError{Source: c.name, Path: path, Reason: reason, Err: err}
}

// extractMessage pulls a human readable message out of an error body.
func extractMessage(body []byte, status int) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg, ok := payload["message"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := payload["error"].(string); ok && msg != "" {
			return msg
		}
		if nested, ok := payload["error"].(map[string]interface{}); ok {
			if msg, ok := nested["message"].(string); ok && msg != "" {
				return msg
			}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		if len(text) > maxMessageChars {
			text = text[:maxMessageChars]
		}
		return text
	}
	return http.StatusText(status)
}
