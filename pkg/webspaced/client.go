package webspaced

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/netsoc/webspace-cli/pkg/logging"
)

const (
	// DefaultSocketPath is where webspaced listens unless configured otherwise.
	DefaultSocketPath = "/run/webspaced/server.sock"

	// DefaultTimeout bounds a single request, including reading the response.
	DefaultTimeout = 5 * time.Minute

	// UserHeader asks the daemon to perform the request as another user.
	// Only honoured for webspace admins.
	UserHeader = "X-Webspace-User"

	// RequestIDHeader carries a per-request ID for correlating daemon logs.
	RequestIDHeader = "X-Request-ID"
)

// The host part is never resolved; the transport always dials the socket.
const requestBase = "http://webspaced"

// Client talks to webspaced over its Unix socket.
type Client struct {
	socketPath string
	baseURL    string
	user       string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithUser sets the user to impersonate on every request.
func WithUser(user string) Option {
	return func(c *Client) {
		c.user = user
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient replaces the HTTP client. The caller is responsible for
// routing its connections to the daemon.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a client for the daemon listening on socketPath.
func New(socketPath string, opts ...Option) *Client {
	c := &Client{
		socketPath: socketPath,
		baseURL:    "http+unix://" + url.PathEscape(socketPath),
		logger:     logging.Nop(),
	}
	c.httpClient = &http.Client{
		Timeout:   DefaultTimeout,
		Transport: c.unixTransport(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// unixTransport dials the socket for every request; connections are not
// kept alive between requests.
func (c *Client) unixTransport() *http.Transport {
	return &http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", c.socketPath)
		},
		DisableKeepAlives: true,
	}
}

// SocketPath returns the path of the daemon socket.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// BaseURL returns the socket address in its percent-encoded URL form,
// e.g. http+unix://%2Frun%2Fwebspaced%2Fserver.sock.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// User returns the impersonated user, or "" if none.
func (c *Client) User() string {
	return c.user
}

// Do performs a request and decodes the response into out.
//
// body, when non-nil, is sent as JSON. out may be nil (the body is
// discarded), a *string (the body is returned as text) or a pointer to a
// JSON-decodable value. A 204 response never decodes anything.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: fmt.Sprintf("failed to encode request: %v", err), Err: err}
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestBase+path, bodyReader)
	if err != nil {
		return &Error{Message: fmt.Sprintf("failed to create request: %v", err), Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.user != "" {
		req.Header.Set(UserHeader, c.user)
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "requestId", reqID, "error", err)
		return &Error{
			Message: fmt.Sprintf("cannot connect to webspaced at %s: %v", c.socketPath, err),
			Err:     err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"requestId", reqID,
		"duration", time.Since(start),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return parseError(resp)
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read response: %v", err), Err: err}
	}
	return decodeBody(resp.StatusCode, data, out)
}

func decodeBody(status int, data []byte, out any) error {
	if s, ok := out.(*string); ok {
		*s = string(data)
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{StatusCode: status, Message: fmt.Sprintf("failed to parse response: %v", err), Err: err}
	}
	return nil
}

// parseError builds an Error from a failed response. The server's JSON
// "message" is used when present; anything else falls back to the status line.
func parseError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var errResp errorResponse
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Message != "" {
		return &Error{StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	return &Error{
		StatusCode: resp.StatusCode,
		Message:    "server returned " + statusLine(resp),
	}
}

func statusLine(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
