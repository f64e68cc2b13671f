package linkedin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bharathsd/linkedin-mcp/internal/config"
	"github.com/bharathsd/linkedin-mcp/internal/lierr"
)

const peopleSearchFixture = `{"elements": [
	{"hitInfo": {"*profile": {"firstName": "Ada", "lastName": "Lovelace", "headline": "Engineer", "geoLocationName": "London", "publicIdentifier": "ada"}}},
	{"hitInfo": {}},
	{"hitInfo": {"*profile": {"firstName": "Grace", "lastName": "Hopper", "headline": "Rear Admiral", "geoLocationName": "Arlington", "publicIdentifier": "grace"}}}
]}`

const jobSearchFixture = `{"elements": [
	{"hitInfo": {"*jobPosting": {"title": "Go Engineer", "companyName": "Example", "formattedLocation": "Remote", "jobPostingId": 123456, "listedAt": 1717200000000}}},
	{"hitInfo": {"*jobPosting": {"title": "", "companyName": "Nameless"}}},
	{"hitInfo": {"*jobPosting": {"title": "Platform Engineer", "companyName": "Other", "formattedLocation": "Berlin"}}}
]}`

// SearchSuite exercises the blended search operations.
type SearchSuite struct {
	suite.Suite
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

func (s *SearchSuite) newClient(handler http.HandlerFunc) *Client {
	ts := httptest.NewServer(handler)
	s.T().Cleanup(ts.Close)

	cfg := &config.Config{
		BaseURL:           ts.URL,
		RequestTimeoutSec: 5,
		MaxConcurrent:     2,
		SearchLimit:       10,
	}
	return New(cfg, NewCredential(testCredential), "ajax:123")
}

func (s *SearchSuite) TestSearchProfiles_RankOrderPreserved() {
	var gotKeywords, gotFilters string
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(blendedSearchPath, r.URL.Path)
		gotKeywords = r.URL.Query().Get("keywords")
		gotFilters = r.URL.Query().Get("filters")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(peopleSearchFixture))
	})

	results, err := client.SearchProfiles(context.Background(), "compiler pioneers", SearchFilters{}, 10)
	s.Require().NoError(err)

	s.Equal("compiler pioneers", gotKeywords)
	s.Equal("List(resultType->PEOPLE)", gotFilters)

	// The empty hitInfo element is skipped; source order is kept.
	s.Require().Len(results, 2)
	s.Equal("Ada Lovelace", results[0].Name)
	s.Equal("https://www.linkedin.com/in/ada", results[0].ProfileURL)
	s.Equal("Grace Hopper", results[1].Name)
}

func (s *SearchSuite) TestSearchProfiles_FiltersFoldIntoKeywords() {
	var gotKeywords string
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		gotKeywords = r.URL.Query().Get("keywords")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements": []}`))
	})

	filters := SearchFilters{Title: "CTO", Company: "Example", Location: "Berlin"}
	_, err := client.SearchProfiles(context.Background(), "jane", filters, 10)
	s.Require().NoError(err)
	s.Equal("jane CTO Example Berlin", gotKeywords)
}

func (s *SearchSuite) TestSearchProfiles_NoMatches_EmptyNotError() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements": []}`))
	})

	results, err := client.SearchProfiles(context.Background(), "nobody at all", SearchFilters{}, 10)
	s.Require().NoError(err)
	s.Empty(results)
}

func (s *SearchSuite) TestSearchProfiles_EmptyQuery_InvalidInput() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Fail("no request expected for invalid input")
	})

	_, err := client.SearchProfiles(context.Background(), "   ", SearchFilters{}, 10)
	s.True(lierr.IsKind(err, lierr.KindInvalidInput))
}

func (s *SearchSuite) TestSearchJobs_MapsPostings() {
	var gotFilters string
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		gotFilters = r.URL.Query().Get("filters")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(jobSearchFixture))
	})

	jobs, err := client.SearchJobs(context.Background(), "go engineer", "Remote", 10)
	s.Require().NoError(err)
	s.Equal("List(resultType->JOBS)", gotFilters)

	// The untitled posting is skipped.
	s.Require().Len(jobs, 2)
	s.Equal("Go Engineer", jobs[0].Title)
	s.Equal("https://www.linkedin.com/jobs/view/123456", jobs[0].JobURL)
	s.Equal("2024-06-01T00:00:00Z", jobs[0].PostedAt)
	s.Equal("Platform Engineer", jobs[1].Title)
	s.Empty(jobs[1].JobURL)
	s.Empty(jobs[1].PostedAt)
}

func (s *SearchSuite) TestSearchJobs_NoMatches_EmptyNotError() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements": []}`))
	})

	jobs, err := client.SearchJobs(context.Background(), "extremely rare role", "", 10)
	s.Require().NoError(err)
	s.Empty(jobs)
}

func (s *SearchSuite) TestSearchJobs_LimitTruncates() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(jobSearchFixture))
	})

	jobs, err := client.SearchJobs(context.Background(), "go", "", 1)
	s.Require().NoError(err)
	s.Len(jobs, 1)
}
