// Package mcp is the tool adapter: it exposes the session client's
// operations as MCP tools and enforces the call/response contract.
package mcp

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/bharathsd/linkedin-mcp/internal/lierr"
	"github.com/bharathsd/linkedin-mcp/internal/linkedin"
	"github.com/bharathsd/linkedin-mcp/internal/redact"
	"github.com/bharathsd/linkedin-mcp/pkg/models"
)

// SessionClient is the session-authenticated retrieval surface the adapter
// translates tool calls into.
type SessionClient interface {
	Configured() bool
	ProfileSelf(ctx context.Context) (*models.Profile, error)
	ProfileByURL(ctx context.Context, profileURL string) (*models.Profile, error)
	SearchProfiles(ctx context.Context, query string, filters linkedin.SearchFilters, limit int) ([]models.ProfileSummary, error)
	SearchJobs(ctx context.Context, keywords, location string, limit int) ([]models.JobPosting, error)
	Connections(ctx context.Context, cursor string, limit int) (*models.ConnectionPage, error)
	Feed(ctx context.Context, limit int) ([]models.FeedItem, error)
}

// Server wires the tool catalog onto an MCP server. Stateless between
// calls apart from the immutable session client, so concurrent tool calls
// need no locking.
type Server struct {
	client   SessionClient
	redactor *redact.Redactor
	mcp      *server.MCPServer
}

// NewServer creates the adapter and registers the tool catalog.
func NewServer(client SessionClient, redactor *redact.Redactor, version string) *Server {
	s := &Server{
		client:   client,
		redactor: redactor,
		mcp: server.NewMCPServer(
			"linkedin-mcp",
			version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
	}
	s.registerTools()
	return s
}

// Run serves the MCP protocol on stdin/stdout until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
}

// RunSSE serves the same catalog over SSE on addr, with a health route,
// until ctx is done.
func (s *Server) RunSSE(ctx context.Context, addr string) error {
	sse := server.NewSSEServer(s.mcp)

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Mount("/", sse)

	srv := &http.Server{Addr: addr, Handler: r}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// toolError is the structured error payload returned to the caller.
type toolError struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	Retryable     bool   `json:"retryable"`
	RetryAfterSec int    `json:"retry_after_sec,omitempty"`
}

// errorResult maps a failure onto the structured tool error. Message text
// passes through the redactor so the credential can never leak.
func (s *Server) errorResult(tool string, err error) *mcp.CallToolResult {
	kind := lierr.KindOf(err)
	payload := toolError{
		Error:         string(kind),
		Message:       s.redactor.SanitizeErr(err),
		Retryable:     kind.Retryable(),
		RetryAfterSec: lierr.RetryAfter(err),
	}

	log.Warn().
		Str("tool", tool).
		Str("errorKind", string(kind)).
		Msg("Tool call failed")

	data, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		return mcp.NewToolResultError(string(kind))
	}
	return mcp.NewToolResultError(string(data))
}

// jsonResult serializes a successful payload.
func (s *Server) jsonResult(tool string, payload any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return s.errorResult(tool, lierr.Wrap(lierr.KindParseError, err, "%s: encode result", tool))
	}
	return mcp.NewToolResultText(s.redactor.Sanitize(string(data)))
}
