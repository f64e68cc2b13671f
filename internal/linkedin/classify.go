package linkedin

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/bharathsd/linkedin-mcp/internal/lierr"
)

// outcomeKind tags the classification of a raw response. Classification is
// decided from status, headers, and body markers before any field access.
type outcomeKind int

const (
	outcomeOK outcomeKind = iota
	outcomeAuthExpired
	outcomeRateLimited
	outcomeNotFound
	outcomeMalformed
	outcomeUpstream
)

func (k outcomeKind) label() string {
	switch k {
	case outcomeOK:
		return "success"
	case outcomeAuthExpired:
		return "auth-expired"
	case outcomeRateLimited:
		return "rate-limited"
	case outcomeNotFound:
		return "not-found"
	case outcomeMalformed:
		return "malformed"
	default:
		return "upstream"
	}
}

// outcome is the classified response.
type outcome struct {
	kind       outcomeKind
	status     int
	retryAfter int
	detail     string
}

// statusBotWall is LinkedIn's non-standard "request denied" status used by
// its bot detection layer.
const statusBotWall = 999

// loginPaths are redirect targets that signal a logged-out session.
var loginPaths = []string{"/login", "/uas/login", "/authwall", "/checkpoint"}

// classify decides the outcome of a raw Voyager response. It never parses
// the payload structure; it only looks for coarse markers, so a challenge
// page is reported as throttling rather than a parse failure.
func classify(status int, header http.Header, body []byte) outcome {
	switch {
	case status >= 300 && status < 400:
		loc := header.Get("Location")
		if isLoginRedirect(loc) {
			return outcome{kind: outcomeAuthExpired, status: status, detail: "redirected to login"}
		}
		return outcome{kind: outcomeUpstream, status: status, detail: "unexpected redirect"}

	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return outcome{kind: outcomeAuthExpired, status: status, detail: "session rejected"}

	case status == http.StatusTooManyRequests:
		return outcome{kind: outcomeRateLimited, status: status, retryAfter: retryAfterSeconds(header), detail: "throttled"}

	case status == statusBotWall:
		return outcome{kind: outcomeRateLimited, status: status, detail: "bot wall"}

	case status == http.StatusNotFound, status == http.StatusGone:
		return outcome{kind: outcomeNotFound, status: status, detail: "resource not found"}

	case status >= 200 && status < 300:
		return classifyBody(status, header, body)

	default:
		return outcome{kind: outcomeUpstream, status: status, detail: "unexpected status"}
	}
}

// classifyBody inspects a 2xx payload for interstitial pages served with a
// success status.
func classifyBody(status int, header http.Header, body []byte) outcome {
	if looksLikeHTML(header, body) {
		lower := bytes.ToLower(body)
		switch {
		case bytes.Contains(lower, []byte("captcha")) || bytes.Contains(lower, []byte("challenge")):
			return outcome{kind: outcomeRateLimited, status: status, detail: "challenge page"}
		case bytes.Contains(lower, []byte("authwall")) || bytes.Contains(lower, []byte("sign in")):
			return outcome{kind: outcomeAuthExpired, status: status, detail: "auth wall"}
		default:
			return outcome{kind: outcomeMalformed, status: status, detail: "expected JSON, got HTML"}
		}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return outcome{kind: outcomeMalformed, status: status, detail: "empty payload"}
	}
	return outcome{kind: outcomeOK, status: status}
}

// err converts a non-success outcome into a coded error for the given
// operation, or nil for success.
func (o outcome) err(op string) error {
	switch o.kind {
	case outcomeOK:
		return nil
	case outcomeAuthExpired:
		return lierr.E(lierr.KindAuthExpired, "%s: %s (status %d)", op, o.detail, o.status)
	case outcomeRateLimited:
		e := lierr.E(lierr.KindRateLimited, "%s: %s (status %d)", op, o.detail, o.status)
		e.RetryAfterSec = o.retryAfter
		return e
	case outcomeNotFound:
		return lierr.E(lierr.KindNotFound, "%s: %s (status %d)", op, o.detail, o.status)
	case outcomeMalformed:
		return lierr.E(lierr.KindParseError, "%s: %s (status %d)", op, o.detail, o.status)
	default:
		return lierr.E(lierr.KindUpstreamUnavailable, "%s: %s (status %d)", op, o.detail, o.status)
	}
}

func isLoginRedirect(location string) bool {
	if location == "" {
		return false
	}
	for _, p := range loginPaths {
		if strings.Contains(location, p) {
			return true
		}
	}
	return false
}

func looksLikeHTML(header http.Header, body []byte) bool {
	if strings.Contains(header.Get("Content-Type"), "text/html") {
		return true
	}
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) > 0 && trimmed[0] == '<'
}

func retryAfterSeconds(header http.Header) int {
	v := header.Get("Retry-After")
	if v == "" {
		return 0
	}
	sec, err := strconv.Atoi(v)
	if err != nil || sec < 0 {
		return 0
	}
	return sec
}
