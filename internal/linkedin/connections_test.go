package linkedin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bharathsd/linkedin-mcp/internal/config"
	"github.com/bharathsd/linkedin-mcp/internal/lierr"
)

// ConnectionsSuite exercises cursor pagination against a fixture listing.
type ConnectionsSuite struct {
	suite.Suite
	client *Client
	total  int
}

func TestConnectionsSuite(t *testing.T) {
	suite.Run(t, new(ConnectionsSuite))
}

func (s *ConnectionsSuite) SetupTest() {
	s.total = 5
	ts := httptest.NewServer(http.HandlerFunc(s.serveConnections))
	s.T().Cleanup(ts.Close)

	cfg := &config.Config{
		BaseURL:           ts.URL,
		RequestTimeoutSec: 5,
		MaxConcurrent:     2,
		ConnectionsPage:   2,
	}
	s.client = New(cfg, NewCredential(testCredential), "ajax:123")
}

// serveConnections pages through s.total synthetic members using Voyager's
// start/count parameters.
func (s *ConnectionsSuite) serveConnections(w http.ResponseWriter, r *http.Request) {
	s.Equal("/voyager/api/relationships/connections", r.URL.Path)

	var start, count int
	fmt.Sscanf(r.URL.Query().Get("start"), "%d", &start)
	fmt.Sscanf(r.URL.Query().Get("count"), "%d", &count)

	elements := ""
	for i := start; i < start+count && i < s.total; i++ {
		if elements != "" {
			elements += ","
		}
		elements += fmt.Sprintf(`{"connectedMember": {"firstName": "Member", "lastName": "%d", "headline": "Engineer %d", "publicIdentifier": "member-%d"}}`, i, i, i)
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"elements": [%s], "paging": {"start": %d, "count": %d, "total": %d}}`, elements, start, count, s.total)
}

func (s *ConnectionsSuite) TestConnections_NoDuplicatesAcrossPages() {
	seen := map[string]bool{}
	cursor := ""
	pages := 0

	for {
		page, err := s.client.Connections(context.Background(), cursor, 2)
		s.Require().NoError(err)
		pages++

		for _, conn := range page.Connections {
			s.False(seen[conn.ProfileURL], "connection %s repeated across pages", conn.ProfileURL)
			seen[conn.ProfileURL] = true
		}

		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
		s.Require().Less(pages, 10, "pagination did not terminate")
	}

	s.Len(seen, s.total)
	s.Equal(3, pages)
}

func (s *ConnectionsSuite) TestConnections_FirstPage_OrderPreserved() {
	page, err := s.client.Connections(context.Background(), "", 2)
	s.Require().NoError(err)
	s.Require().Len(page.Connections, 2)
	s.Equal("Member 0", page.Connections[0].Name)
	s.Equal("Member 1", page.Connections[1].Name)
	s.NotEmpty(page.NextCursor)
}

func (s *ConnectionsSuite) TestConnections_MalformedCursor_InvalidInput() {
	for _, cursor := range []string{"not base64 !!", "bm90IGpzb24"} {
		s.Run(cursor, func() {
			_, err := s.client.Connections(context.Background(), cursor, 2)
			s.True(lierr.IsKind(err, lierr.KindInvalidInput), "cursor %q: got %v", cursor, err)
		})
	}
}

func (s *ConnectionsSuite) TestCursor_RoundTrip() {
	for _, start := range []int{0, 1, 250} {
		decoded, err := decodeCursor(encodeCursor(start))
		s.Require().NoError(err)
		s.Equal(start, decoded)
	}

	start, err := decodeCursor("")
	s.Require().NoError(err)
	s.Equal(0, start)
}

func (s *ConnectionsSuite) TestConnections_EmptyListing() {
	s.total = 0
	page, err := s.client.Connections(context.Background(), "", 2)
	s.Require().NoError(err)
	s.Empty(page.Connections)
	s.Empty(page.NextCursor)
}
