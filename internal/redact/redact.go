// Package redact scrubs the session credential from anything that could
// reach the caller or the logs.
package redact

import (
	"bytes"
	"io"
	"strings"
)

const placeholder = "[REDACTED]"

// Redactor replaces every occurrence of the registered secrets with a
// fixed placeholder. Safe for concurrent use; secrets are write-once.
type Redactor struct {
	secrets []string
}

// New creates a Redactor for the given secrets. Empty secrets are ignored
// so an unconfigured credential never turns into a match-everything rule.
func New(secrets ...string) *Redactor {
	r := &Redactor{}
	for _, s := range secrets {
		if s != "" {
			r.secrets = append(r.secrets, s)
		}
	}
	return r
}

// Sanitize returns text with every secret occurrence replaced.
func (r *Redactor) Sanitize(text string) string {
	for _, s := range r.secrets {
		text = strings.ReplaceAll(text, s, placeholder)
	}
	return text
}

// SanitizeErr sanitizes an error's message. Returns nil for nil input.
// The original chain is intentionally dropped: a wrapped cause could
// re-expose the secret through errors.Unwrap formatting.
func (r *Redactor) SanitizeErr(err error) string {
	if err == nil {
		return ""
	}
	return r.Sanitize(err.Error())
}

// Writer wraps w so every write is sanitized first. Used for the log
// destination, which guarantees no log line can carry the credential.
func (r *Redactor) Writer(w io.Writer) io.Writer {
	return &redactWriter{redactor: r, dst: w}
}

type redactWriter struct {
	redactor *Redactor
	dst      io.Writer
}

func (w *redactWriter) Write(p []byte) (int, error) {
	clean := p
	for _, s := range w.redactor.secrets {
		clean = bytes.ReplaceAll(clean, []byte(s), []byte(placeholder))
	}
	if _, err := w.dst.Write(clean); err != nil {
		return 0, err
	}
	// Report the original length so callers like zerolog do not treat the
	// length change as a short write.
	return len(p), nil
}
