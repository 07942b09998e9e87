// Package api holds the typed clients for the BoviCare REST API. Every call
// goes through the shared http.Client, whose transport attaches the bearer
// token and watches for credential rejection.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	errs "github.com/bovicare/bovicare-cli/internal/errors"
	"github.com/pkg/errors"
)

// Client is the shared base for all API clients.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates the base client. baseURL must not carry a trailing slash.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

func (c *Client) Auth() *AuthAPI         { return &AuthAPI{c: c} }
func (c *Client) Users() *UsersAPI       { return &UsersAPI{c: c} }
func (c *Client) Cows() *CowsAPI         { return &CowsAPI{c: c} }
func (c *Client) Alerts() *AlertsAPI     { return &AlertsAPI{c: c} }
func (c *Client) Measures() *MeasuresAPI { return &MeasuresAPI{c: c} }

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "[Client.do] marshal %s %s", method, path)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] new request %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] %s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "[Client.do] decode %s %s", method, path)
	}
	return nil
}

// apiError is the FastAPI error body shape.
type apiError struct {
	Detail string `json:"detail"`
}

func statusError(resp *http.Response) error {
	var body apiError
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &body)
	detail := body.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		sentinel = errs.ErrUnauthorized
	case http.StatusNotFound:
		sentinel = errs.ErrNotFound
	case http.StatusConflict:
		sentinel = errs.ErrConflict
	default:
		sentinel = errs.ErrInternal
	}
	return fmt.Errorf("%s %s: %s (status %d): %w",
		resp.Request.Method, resp.Request.URL.Path, detail, resp.StatusCode, sentinel)
}
