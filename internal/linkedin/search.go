package linkedin

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/bharathsd/linkedin-mcp/internal/lierr"
	"github.com/bharathsd/linkedin-mcp/pkg/models"
)

const blendedSearchPath = "/voyager/api/search/blended"

// SearchFilters narrows a profile search. All fields are optional.
type SearchFilters struct {
	Title    string
	Company  string
	Location string
}

// SearchProfiles runs a people search. Zero matches yield an empty slice,
// not an error. Rank order follows the source.
func (c *Client) SearchProfiles(ctx context.Context, query string, filters SearchFilters, limit int) ([]models.ProfileSummary, error) {
	const op = "search_profiles"

	if strings.TrimSpace(query) == "" {
		return nil, lierr.E(lierr.KindInvalidInput, "search query is empty")
	}
	if limit <= 0 {
		limit = c.cfg.SearchLimit
	}

	keywords := query
	// Structured filters fold into the keyword string; the blended endpoint
	// has no separate parameters for them.
	for _, extra := range []string{filters.Title, filters.Company, filters.Location} {
		if extra != "" {
			keywords += " " + extra
		}
	}

	params := url.Values{}
	params.Set("keywords", keywords)
	params.Set("filters", "List(resultType->PEOPLE)")
	params.Set("queryContext", "List(spellCorrectionEnabled->true)")
	params.Set("count", strconv.Itoa(limit))

	body, err := c.getJSON(ctx, op, blendedSearchPath, params)
	if err != nil {
		return nil, err
	}

	var blended blendedResponse
	if err := json.Unmarshal(body, &blended); err != nil {
		return nil, lierr.Wrap(lierr.KindParseError, err, "%s: decode search payload", op)
	}

	results := make([]models.ProfileSummary, 0, len(blended.Elements))
	for _, el := range blended.Elements {
		hit := el.HitInfo.Profile
		if hit == nil {
			continue
		}
		name := joinName(hit.FirstName, hit.LastName)
		if name == "" {
			continue
		}
		results = append(results, models.ProfileSummary{
			Name:       name,
			Headline:   hit.Headline,
			Location:   hit.GeoLocationName,
			PublicID:   hit.PublicIdentifier,
			ProfileURL: ProfileURL(hit.PublicIdentifier),
		})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// SearchJobs runs a job search. Same empty-result policy as SearchProfiles.
func (c *Client) SearchJobs(ctx context.Context, keywords, location string, limit int) ([]models.JobPosting, error) {
	const op = "search_jobs"

	if strings.TrimSpace(keywords) == "" {
		return nil, lierr.E(lierr.KindInvalidInput, "job search keywords are empty")
	}
	if limit <= 0 {
		limit = c.cfg.SearchLimit
	}

	params := url.Values{}
	params.Set("keywords", keywords)
	params.Set("filters", "List(resultType->JOBS)")
	params.Set("queryContext", "List(spellCorrectionEnabled->true)")
	params.Set("count", strconv.Itoa(limit))
	if location != "" {
		params.Set("location", location)
	}

	body, err := c.getJSON(ctx, op, blendedSearchPath, params)
	if err != nil {
		return nil, err
	}

	var blended blendedResponse
	if err := json.Unmarshal(body, &blended); err != nil {
		return nil, lierr.Wrap(lierr.KindParseError, err, "%s: decode search payload", op)
	}

	jobs := make([]models.JobPosting, 0, len(blended.Elements))
	for _, el := range blended.Elements {
		hit := el.HitInfo.JobPosting
		if hit == nil || hit.Title == "" {
			continue
		}
		job := models.JobPosting{
			Title:       hit.Title,
			Company:     hit.CompanyName,
			Location:    hit.FormattedLocation,
			Description: hit.DescriptionSnippet,
		}
		if hit.JobPostingID != 0 {
			job.JobURL = fmt.Sprintf("https://www.linkedin.com/jobs/view/%d", hit.JobPostingID)
		}
		if hit.ListedAt > 0 {
			job.PostedAt = time.UnixMilli(hit.ListedAt).UTC().Format(time.RFC3339)
		}
		jobs = append(jobs, job)
		if len(jobs) >= limit {
			break
		}
	}
	return jobs, nil
}
