// Package linkedin implements the session-authenticated retrieval client.
// It owns the captured session cookie, performs Voyager API exchanges, and
// normalizes responses into pkg/models records. Response classification
// always precedes parsing so a throttle or login wall is never reported as
// a parse failure.
package linkedin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/bharathsd/linkedin-mcp/internal/config"
	"github.com/bharathsd/linkedin-mcp/internal/lierr"
)

// maxBodyBytes caps response reads. Voyager profile views run large but
// nowhere near this.
const maxBodyBytes = 4 << 20

// Credential is the captured li_at session cookie. Write-once for the
// process lifetime. Its String method is deliberately opaque so the value
// cannot leak through formatting.
type Credential struct {
	value string
}

// NewCredential wraps a raw cookie value.
func NewCredential(value string) Credential {
	return Credential{value: value}
}

// IsSet reports whether a credential was supplied.
func (c Credential) IsSet() bool {
	return c.value != ""
}

// String implements fmt.Stringer without exposing the value.
func (c Credential) String() string {
	if c.value == "" {
		return "<unset>"
	}
	return "<credential>"
}

// Client performs authenticated exchanges with the LinkedIn web surface.
// Safe for concurrent use: all fields are immutable after construction and
// in-flight requests are bounded by a semaphore.
type Client struct {
	cfg  *config.Config
	cred Credential
	csrf string
	http *http.Client
	sem  *semaphore.Weighted
}

// New constructs a Client. csrfToken may be empty, in which case a
// synthetic per-process token is generated; Voyager only requires that the
// csrf-token header match the JSESSIONID cookie.
func New(cfg *config.Config, cred Credential, csrfToken string) *Client {
	if csrfToken == "" {
		csrfToken = fmt.Sprintf("ajax:%d", uuid.New().ID())
	}

	concurrency := cfg.MaxConcurrent
	if concurrency <= 0 {
		concurrency = config.DefaultMaxConcurrent
	}

	transport := &http.Transport{
		MaxIdleConns:          concurrency,
		MaxIdleConnsPerHost:   concurrency,
		IdleConnTimeout:       30 * time.Second,
		ResponseHeaderTimeout: cfg.RequestTimeout(),
		ForceAttemptHTTP2:     true,
	}

	return &Client{
		cfg:  cfg,
		cred: cred,
		csrf: csrfToken,
		http: &http.Client{
			Timeout:   cfg.RequestTimeout(),
			Transport: transport,
			// Redirects are classified, not followed: a 302 to the login
			// wall is the primary expired-session signal.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		sem: semaphore.NewWeighted(int64(concurrency)),
	}
}

// Configured reports whether the client holds a credential.
func (c *Client) Configured() bool {
	return c.cred.IsSet()
}

// getJSON performs one authenticated GET against a Voyager path and
// returns the raw payload after classification. op names the operation for
// logs and error context.
func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	if !c.cred.IsSet() {
		return nil, lierr.E(lierr.KindNotConfigured, "%s: no session credential; set %s", op, config.CredentialEnv)
	}

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, classifyTransportErr(op, err)
	}
	defer c.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, lierr.Wrap(lierr.KindInvalidInput, err, "%s: build request", op)
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	c.decorate(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportErr(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, classifyTransportErr(op, err)
	}

	out := classify(resp.StatusCode, resp.Header, body)

	log.Debug().
		Str("operation", op).
		Int("status", resp.StatusCode).
		Int("bodyBytes", len(body)).
		Int64("durationMs", time.Since(start).Milliseconds()).
		Str("outcome", out.kind.label()).
		Msg("LinkedIn exchange")

	if err := out.err(op); err != nil {
		return nil, err
	}
	return body, nil
}

// decorate attaches the session cookies and the headers Voyager expects.
// The credential appears only here.
func (c *Client) decorate(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: "li_at", Value: c.cred.value})
	req.AddCookie(&http.Cookie{Name: "JSESSIONID", Value: `"` + c.csrf + `"`})

	req.Header.Set("csrf-token", c.csrf)
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("x-restli-protocol-version", "2.0.0")
	req.Header.Set("x-li-page-instance", "urn:li:page:d_flagship3_search;"+uuid.NewString())
}

// classifyTransportErr maps network-layer failures onto the error taxonomy.
func classifyTransportErr(op string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return lierr.Wrap(lierr.KindTimeout, err, "%s: no response within deadline", op)
	case errors.Is(err, context.Canceled):
		return lierr.Wrap(lierr.KindTimeout, err, "%s: request abandoned", op)
	default:
		return lierr.Wrap(lierr.KindUpstreamUnavailable, err, "%s: request failed", op)
	}
}
