// Package api is the HTTP client for the listing service. It attaches the
// host identity token, normalizes the two response envelope shapes and maps
// HTTP statuses to typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Prefix      = "/api/v1"
	TokenHeader = "X-API-Token"
	maxBody     = 10 << 20
)

// TokenSource supplies the host identity token. An empty token sends the
// request unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource with a fixed value.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

type Client struct {
	HTTP    *http.Client
	BaseURL string
	Tokens  TokenSource
}

// New builds a client for baseURL (without the /api/v1 prefix).
func New(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/") + Prefix,
		Tokens:  tokens,
	}
}

// Do sends one request and decodes the (possibly enveloped) response into
// out. out may be nil when the body is not needed.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	raw, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(Unwrap(raw), out); err != nil {
		return &FormatError{Path: path, Err: err}
	}
	return nil
}

// List is Do for endpoints returning a collection. A payload that is not
// an array yields an empty slice and a FormatError.
func List[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	raw, err := c.send(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	payload := Unwrap(raw)
	if !isArray(payload) {
		log.Printf("[api] unexpected response format from %s: %.200s", path, raw)
		return []T{}, &FormatError{Path: path, Err: errors.New("expected an array")}
	}
	out := []T{}
	if err := json.Unmarshal(payload, &out); err != nil {
		return []T{}, &FormatError{Path: path, Err: err}
	}
	return out, nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	rid := uuid.NewString()
	req.Header.Set("X-Request-ID", rid)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Tokens != nil {
		if tok := c.Tokens.Token(); tok != "" {
			req.Header.Set(TokenHeader, tok)
		}
	}

	start := time.Now()
	res, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("[api] rid=%s %s %s err=%v", rid, method, path, err)
		return nil, &TransportError{Method: method, URL: u, Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		return nil, &TransportError{Method: method, URL: u, Err: err}
	}
	log.Printf("[api] rid=%s %s %s status=%d dur=%s", rid, method, path, res.StatusCode, time.Since(start))

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return raw, nil
	case res.StatusCode == http.StatusUnauthorized:
		return nil, ErrAuthenticationRequired
	case res.StatusCode == http.StatusForbidden:
		return nil, ErrInsufficientPermissions
	default:
		log.Printf("[api] rid=%s error body: %.500s", rid, raw)
		return nil, &HTTPError{Status: res.StatusCode, StatusText: http.StatusText(res.StatusCode)}
	}
}

// Unwrap returns T for a body shaped either as {"body": T} or as T.
func Unwrap(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return trimmed
	}
	if inner, ok := env["body"]; ok {
		return inner
	}
	return trimmed
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
