// Package transport is the request/response stage wrapped around every API
// call: bearer token out, credential-rejection watch in.
package transport

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenSource exposes the persisted access token. tokenstore.Store
// satisfies it.
type TokenSource interface {
	AccessToken() string
}

// AuthTransport is an http.RoundTripper that clones each outbound request to
// attach "Authorization: Bearer <token>" when a token is present, stamps an
// X-Request-ID, and invokes the unauthorized hook when a response comes back
// 401. The 401 response itself is returned untouched so the caller's own
// error handling still runs.
type AuthTransport struct {
	base   http.RoundTripper
	tokens TokenSource
	log    zerolog.Logger

	mu             sync.RWMutex
	onUnauthorized func()
}

// Option configures an AuthTransport.
type Option func(*AuthTransport)

// WithBase sets the underlying round tripper (defaults to
// http.DefaultTransport).
func WithBase(base http.RoundTripper) Option {
	return func(t *AuthTransport) {
		t.base = base
	}
}

func New(tokens TokenSource, log zerolog.Logger, options ...Option) *AuthTransport {
	t := &AuthTransport{
		base:   http.DefaultTransport,
		tokens: tokens,
		log:    log,
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// SetOnUnauthorized registers the forced-logout hook. The transport is
// usable before the hook (or even the session manager) exists; a 401 then
// simply passes through.
func (t *AuthTransport) SetOnUnauthorized(hook func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onUnauthorized = hook
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request
	out := req.Clone(req.Context())
	if token := t.tokens.AccessToken(); token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}
	if out.Header.Get("X-Request-ID") == "" {
		out.Header.Set("X-Request-ID", uuid.NewString())
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.log.Warn().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Msg("credentials rejected, forcing logout")
		t.mu.RLock()
		hook := t.onUnauthorized
		t.mu.RUnlock()
		if hook != nil {
			hook()
		}
	}
	return resp, nil
}
