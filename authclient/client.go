package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sessionauth "github.com/inticky/sessionauth"
)

const defaultTimeout = 30 * time.Second

// Client talks to the backend auth endpoints. Construct with [New]; the zero
// value is not usable.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customizes a [Client].
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Use it to inject
// transports with custom TLS, proxies, or test doubles.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// New creates a Client rooted at baseURL (e.g. "https://support.example.com/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ sessionauth.AuthService = (*Client)(nil)

// Login exchanges credentials for a token and user payload.
func (c *Client) Login(ctx context.Context, creds sessionauth.Credentials) (*sessionauth.LoginResponse, error) {
	var out sessionauth.LoginResponse
	if err := c.post(ctx, "/auth/login", "", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateToken asks the backend whether token is still acceptable.
func (c *Client) ValidateToken(ctx context.Context, token string) (*sessionauth.ValidationResult, error) {
	var out sessionauth.ValidationResult
	if err := c.post(ctx, "/auth/validate", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshToken exchanges token for a fresh one.
func (c *Client) RefreshToken(ctx context.Context, token string) (*sessionauth.LoginResponse, error) {
	var out sessionauth.LoginResponse
	if err := c.post(ctx, "/auth/refresh", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser fetches the account behind token.
func (c *Client) CurrentUser(ctx context.Context, token string) (*sessionauth.User, error) {
	var out sessionauth.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path, token string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, token, in, out)
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError decodes the backend's {"message": ...} error body; a body that
// does not parse still yields an APIError carrying the status code.
func apiError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(raw, &payload)

	message := payload.Message
	if message == "" {
		message = payload.Error
	}
	return &sessionauth.APIError{StatusCode: resp.StatusCode, Message: message}
}
