// Package apiclient is the HTTP client every service call goes through. It attaches
// the session's bearer token and recovers from an expired token with one refresh and
// one retry.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/temco-admin/internal/errors"
	"github.com/jrsteele09/temco-admin/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// RefreshTokenKey is the storage entry holding the refresh token, kept apart from the session.
	RefreshTokenKey = "refreshToken"
	// RefreshTokenHeader carries the refresh token on the refresh call.
	RefreshTokenHeader = "X-Refresh-Token"
	// RequestIDHeader tags every outgoing request.
	RequestIDHeader = "X-Request-ID"

	RouteAuthRefresh = "/auth/refresh"
	// RouteAuthLogin answers 401 for bad credentials, which says nothing about the session.
	RouteAuthLogin = "/auth/login"

	defaultTimeout = 30 * time.Second
)

var (
	// ErrUnavailable marks a request that never got an HTTP response.
	ErrUnavailable = errors.New("api unavailable")

	errContextDone = errors.New("request cancelled")
)

// TokenHolder is the part of the session store the client needs.
type TokenHolder interface {
	AccessToken() string
	SetAccessToken(token string)
	Logout()
}

// Redirector sends the user back to the login entry point after an unrecoverable 401.
type Redirector interface {
	RedirectToLogin()
}

// RedirectFunc adapts a function to Redirector.
type RedirectFunc func()

func (f RedirectFunc) RedirectToLogin() { f() }

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    TokenHolder
	tokens     storage.Storage
	redirector Redirector
	logger     zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func WithRedirector(r Redirector) Option {
	return func(c *Client) {
		c.redirector = r
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a client for the API at baseURL (e.g. http://host/temco-bank/api/v1).
// tokens is where the refresh token lives.
func New(baseURL string, session TokenHolder, tokens storage.Storage, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		session:    session,
		tokens:     tokens,
		redirector: RedirectFunc(func() {}),
		logger:     log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do sends a JSON request and decodes a JSON response into out (which may be nil).
//
// A 401 triggers at most one token refresh and one retry of this request. When the
// refresh is impossible or fails the session is cleared, the redirector fires and the
// original 401 is returned. A 401 from the login route is returned as is.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		payload = b
	}

	status, respBody, err := c.send(ctx, method, path, payload, c.session.AccessToken())
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && path != RouteAuthLogin {
		unauthorized := newError(method, path, status, respBody)

		token, err := c.refresh(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Str("path", path).Msg("Session expired, signing out")
			c.expireSession()
			return unauthorized
		}

		status, respBody, err = c.send(ctx, method, path, payload, token)
		if err != nil {
			return err
		}
	}

	return decode(method, path, status, respBody, out)
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, token string) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.roundTrip(ctx, req)
}

func (c *Client) roundTrip(ctx context.Context, req *http.Request) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, errContextDone, ctx.Err())
		}
		return 0, nil, fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response %s %s: %w: %w", req.Method, req.URL.Path, ErrUnavailable, err)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Str("request_id", req.Header.Get(RequestIDHeader)).
		Msg("API request")

	return resp.StatusCode, body, nil
}

func decode(method, path string, status int, body []byte, out any) error {
	if status < 200 || status >= 300 {
		return newError(method, path, status, body)
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
