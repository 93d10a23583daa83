// Package api implements the typed client for the remote FoodDash REST API.
// All outgoing requests flow through one boundary that attaches the bearer
// credential, enforces a fixed timeout, and translates transport and status
// failures into the domain error taxonomy. A 401 from any authenticated call
// additionally fires the unauthorized hook so the session store can force a
// logout without every call site knowing about it.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/fooddash/client-go/internal/core/domain"
	"github.com/fooddash/client-go/internal/metrics"
)

const defaultTimeout = 15 * time.Second

// Client talks to the remote API. It is safe for concurrent use.
type Client struct {
	http           *resty.Client
	onUnauthorized func()
	log            zerolog.Logger
}

// New builds a Client. tokenSource is consulted on every request; when it
// returns a non-empty credential the Authorization header is attached.
func New(baseURL string, timeout time.Duration, tokenSource func() string, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	hc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := tokenSource(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	return &Client{http: hc, log: log.With().Str("component", "api").Logger()}
}

// OnUnauthorized registers the hook fired when an authenticated call is
// rejected with a 401.
func (c *Client) OnUnauthorized(fn func()) { c.onUnauthorized = fn }

// envelope is the response wrapper every endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// call executes one request. path may contain resty path-parameter
// placeholders resolved via params; logical is the label used for metrics.
//
// With authFlow set (login/registration), the envelope is returned even on a
// 4xx so the caller can surface the server's message as an AuthError, and a
// 401 does not trip the forced-logout hook, since a failed login is not an
// expired session.
func (c *Client) call(ctx context.Context, method, path, logical string, params map[string]string, body any, authFlow bool) (*envelope, int, error) {
	start := time.Now()
	observe := func(outcome string) {
		metrics.APIRequestDuration.WithLabelValues(logical, outcome).Observe(time.Since(start).Seconds())
	}

	req := c.http.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetPathParams(params)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		observe("network")
		c.log.Warn().Err(err).Str("path", logical).Msg("request failed")
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	env := &envelope{}
	if len(resp.Body()) > 0 {
		// A non-JSON body (proxy error page, etc.) leaves the envelope
		// zeroed, which downstream treats as an unsuccessful response.
		_ = json.Unmarshal(resp.Body(), env)
	}

	code := resp.StatusCode()
	if authFlow {
		observe(outcomeFor(code))
		return env, code, nil
	}

	switch {
	case code == http.StatusUnauthorized:
		observe("expired")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, code, domain.ErrSessionExpired
	case code == http.StatusForbidden:
		observe("permission")
		return nil, code, domain.ErrPermission
	case code >= http.StatusBadRequest:
		observe("server")
		return nil, code, &domain.APIError{StatusCode: code, Message: env.Message}
	}

	observe("ok")
	return env, code, nil
}

func outcomeFor(code int) string {
	if code >= http.StatusBadRequest {
		return "auth"
	}
	return "ok"
}
