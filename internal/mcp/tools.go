package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bharathsd/linkedin-mcp/internal/config"
	"github.com/bharathsd/linkedin-mcp/internal/lierr"
	"github.com/bharathsd/linkedin-mcp/internal/linkedin"
	"github.com/bharathsd/linkedin-mcp/pkg/models"
)

// registerTools declares the externally visible catalog. Tool names are a
// stable contract; argument shapes mirror the session client operations.
func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("get_my_profile",
		mcp.WithDescription("Get your LinkedIn profile: name, headline, summary, experience, education, and skills"),
	), s.handleGetMyProfile)

	s.mcp.AddTool(mcp.NewTool("get_profile_by_url",
		mcp.WithDescription("Get any LinkedIn profile by URL or public identifier"),
		mcp.WithString("profile_url",
			mcp.Required(),
			mcp.Description("Full profile URL (e.g. 'https://linkedin.com/in/johndoe') or bare public identifier ('johndoe')"),
		),
	), s.handleGetProfileByURL)

	s.mcp.AddTool(mcp.NewTool("search_profiles",
		mcp.WithDescription("Search LinkedIn profiles by keywords, optionally narrowed by title, company, or location"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Free-text search query")),
		mcp.WithString("title", mcp.Description("Job title filter")),
		mcp.WithString("company", mcp.Description("Company filter")),
		mcp.WithString("location", mcp.Description("Location filter")),
		mcp.WithNumber("limit", mcp.Description("Number of results"), mcp.DefaultNumber(config.DefaultSearchLimit)),
	), s.handleSearchProfiles)

	s.mcp.AddTool(mcp.NewTool("search_jobs",
		mcp.WithDescription("Search LinkedIn job postings"),
		mcp.WithString("keywords", mcp.Required(), mcp.Description("Job search keywords (e.g. 'software engineer')")),
		mcp.WithString("location", mcp.Description("Location (e.g. 'San Francisco', 'Remote')")),
		mcp.WithNumber("limit", mcp.Description("Number of results"), mcp.DefaultNumber(config.DefaultSearchLimit)),
	), s.handleSearchJobs)

	s.mcp.AddTool(mcp.NewTool("get_my_connections",
		mcp.WithDescription("List your LinkedIn connections, one page at a time"),
		mcp.WithString("cursor", mcp.Description("Opaque pagination cursor from a previous call; omit for the first page")),
		mcp.WithNumber("limit", mcp.Description("Page size"), mcp.DefaultNumber(config.DefaultConnectionsPage)),
	), s.handleGetMyConnections)

	s.mcp.AddTool(mcp.NewTool("get_feed",
		mcp.WithDescription("Get recent posts from your LinkedIn feed"),
		mcp.WithNumber("limit", mcp.Description("Number of posts"), mcp.DefaultNumber(config.DefaultFeedLimit)),
	), s.handleGetFeed)
}

// requireConfigured rejects calls before any network activity when no
// credential is present.
func (s *Server) requireConfigured(tool string) error {
	if !s.client.Configured() {
		return lierr.E(lierr.KindNotConfigured, "%s: %s is not set; supply a LinkedIn session cookie and restart", tool, config.CredentialEnv)
	}
	return nil
}

func (s *Server) handleGetMyProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "get_my_profile"
	if err := s.requireConfigured(tool); err != nil {
		return s.errorResult(tool, err), nil
	}

	profile, err := s.client.ProfileSelf(ctx)
	if err != nil {
		return s.errorResult(tool, err), nil
	}
	return s.jsonResult(tool, profile), nil
}

func (s *Server) handleGetProfileByURL(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "get_profile_by_url"
	if err := s.requireConfigured(tool); err != nil {
		return s.errorResult(tool, err), nil
	}

	profileURL, err := req.RequireString("profile_url")
	if err != nil {
		return s.errorResult(tool, lierr.Wrap(lierr.KindInvalidInput, err, "%s: profile_url is required", tool)), nil
	}
	// Validate before any network call.
	if _, err := linkedin.PublicIDFromInput(profileURL); err != nil {
		return s.errorResult(tool, err), nil
	}

	profile, err := s.client.ProfileByURL(ctx, profileURL)
	if err != nil {
		return s.errorResult(tool, err), nil
	}
	return s.jsonResult(tool, profile), nil
}

func (s *Server) handleSearchProfiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "search_profiles"
	if err := s.requireConfigured(tool); err != nil {
		return s.errorResult(tool, err), nil
	}

	query, err := req.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return s.errorResult(tool, lierr.E(lierr.KindInvalidInput, "%s: query is required", tool)), nil
	}
	filters := linkedin.SearchFilters{
		Title:    req.GetString("title", ""),
		Company:  req.GetString("company", ""),
		Location: req.GetString("location", ""),
	}
	limit := req.GetInt("limit", config.DefaultSearchLimit)
	if limit < 0 {
		return s.errorResult(tool, lierr.E(lierr.KindInvalidInput, "%s: limit must not be negative", tool)), nil
	}

	results, err := s.client.SearchProfiles(ctx, query, filters, limit)
	if err != nil {
		return s.errorResult(tool, err), nil
	}
	return s.jsonResult(tool, struct {
		Count   int                     `json:"count"`
		Results []models.ProfileSummary `json:"results"`
	}{Count: len(results), Results: results}), nil
}

func (s *Server) handleSearchJobs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "search_jobs"
	if err := s.requireConfigured(tool); err != nil {
		return s.errorResult(tool, err), nil
	}

	keywords, err := req.RequireString("keywords")
	if err != nil || strings.TrimSpace(keywords) == "" {
		return s.errorResult(tool, lierr.E(lierr.KindInvalidInput, "%s: keywords is required", tool)), nil
	}
	location := req.GetString("location", "")
	limit := req.GetInt("limit", config.DefaultSearchLimit)
	if limit < 0 {
		return s.errorResult(tool, lierr.E(lierr.KindInvalidInput, "%s: limit must not be negative", tool)), nil
	}

	jobs, err := s.client.SearchJobs(ctx, keywords, location, limit)
	if err != nil {
		return s.errorResult(tool, err), nil
	}
	return s.jsonResult(tool, struct {
		Count int                 `json:"count"`
		Jobs  []models.JobPosting `json:"jobs"`
	}{Count: len(jobs), Jobs: jobs}), nil
}

func (s *Server) handleGetMyConnections(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "get_my_connections"
	if err := s.requireConfigured(tool); err != nil {
		return s.errorResult(tool, err), nil
	}

	cursor := req.GetString("cursor", "")
	limit := req.GetInt("limit", config.DefaultConnectionsPage)
	if limit < 0 {
		return s.errorResult(tool, lierr.E(lierr.KindInvalidInput, "%s: limit must not be negative", tool)), nil
	}

	page, err := s.client.Connections(ctx, cursor, limit)
	if err != nil {
		return s.errorResult(tool, err), nil
	}
	return s.jsonResult(tool, struct {
		Count       int                 `json:"count"`
		Connections []models.Connection `json:"connections"`
		NextCursor  string              `json:"next_cursor,omitempty"`
	}{Count: len(page.Connections), Connections: page.Connections, NextCursor: page.NextCursor}), nil
}

func (s *Server) handleGetFeed(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "get_feed"
	if err := s.requireConfigured(tool); err != nil {
		return s.errorResult(tool, err), nil
	}

	limit := req.GetInt("limit", config.DefaultFeedLimit)
	if limit < 0 {
		return s.errorResult(tool, lierr.E(lierr.KindInvalidInput, "%s: limit must not be negative", tool)), nil
	}
	if limit > config.MaxFeedLimit {
		limit = config.MaxFeedLimit
	}

	posts, err := s.client.Feed(ctx, limit)
	if err != nil {
		return s.errorResult(tool, err), nil
	}
	return s.jsonResult(tool, struct {
		Count int               `json:"count"`
		Posts []models.FeedItem `json:"posts"`
	}{Count: len(posts), Posts: posts}), nil
}
