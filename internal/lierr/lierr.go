// Package lierr defines the error taxonomy shared by the session client
// and the tool adapter. Every failure surfaced to a tool caller carries
// exactly one Kind.
package lierr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. Kinds are part of the tool contract: they are
// serialized verbatim into structured tool errors.
type Kind string

const (
	// KindNotConfigured means no session credential was supplied at startup.
	KindNotConfigured Kind = "not_configured"
	// KindInvalidInput means the caller's arguments were rejected before
	// any network call was made.
	KindInvalidInput Kind = "invalid_input"
	// KindAuthExpired means LinkedIn no longer accepts the session cookie.
	// Requires a fresh credential; never retried automatically.
	KindAuthExpired Kind = "auth_expired"
	// KindRateLimited means LinkedIn throttled the request. The caller
	// decides when to retry; the client never sleeps.
	KindRateLimited Kind = "rate_limited"
	// KindNotFound means the target resource does not exist or is not visible.
	KindNotFound Kind = "not_found"
	// KindParseError means a successful response did not match the expected shape.
	KindParseError Kind = "parse_error"
	// KindTimeout means no response arrived within the per-call deadline.
	KindTimeout Kind = "timeout"
	// KindUpstreamUnavailable covers network and server failures unrelated to auth.
	KindUpstreamUnavailable Kind = "upstream_unavailable"
)

// Retryable reports whether a caller-directed retry can reasonably succeed
// without out-of-band remediation.
func (k Kind) Retryable() bool {
	switch k {
	case KindTimeout, KindUpstreamUnavailable, KindRateLimited:
		return true
	}
	return false
}

// Error is the coded error type. It wraps an optional cause and supports
// errors.Is matching on Kind.
type Error struct {
	Kind    Kind
	Message string
	// RetryAfterSec is a throttle hint in seconds, when the upstream
	// supplied one. Zero means no hint.
	RetryAfterSec int
	cause         error
}

// E constructs a new coded error.
func E(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same Kind, so callers can write
// errors.Is(err, lierr.E(lierr.KindAuthExpired, "")).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf extracts the Kind from any error chain. Unclassified errors map
// to KindUpstreamUnavailable.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstreamUnavailable
}

// RetryAfter extracts the throttle hint from an error chain, if any.
func RetryAfter(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.RetryAfterSec
	}
	return 0
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
