package linkedin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bharathsd/linkedin-mcp/internal/config"
)

const feedFixture = `{"elements": [
	{"value": {"com.linkedin.voyager.feed.render.UpdateV2": {
		"commentary": {"text": {"text": "Excited to share our launch!"}},
		"actor": {"name": {"text": "Jane Doe"}, "subDescription": {"text": "2h"}},
		"socialDetail": {"totalSocialActivityCounts": {"numLikes": 120, "numComments": 14}}
	}}},
	{"value": {}},
	{"value": {"com.linkedin.voyager.feed.render.UpdateV2": {
		"commentary": {"text": {"text": "Second post"}}
	}}},
	{"value": {"com.linkedin.voyager.feed.render.UpdateV2": {
		"actor": {"name": {"text": "Reshare Only"}}
	}}}
]}`

// FeedSuite exercises feed retrieval and defensive parsing.
type FeedSuite struct {
	suite.Suite
}

func TestFeedSuite(t *testing.T) {
	suite.Run(t, new(FeedSuite))
}

func (s *FeedSuite) newClient(handler http.HandlerFunc) *Client {
	ts := httptest.NewServer(handler)
	s.T().Cleanup(ts.Close)

	cfg := &config.Config{
		BaseURL:           ts.URL,
		RequestTimeoutSec: 5,
		MaxConcurrent:     2,
		FeedLimit:         10,
	}
	return New(cfg, NewCredential(testCredential), "ajax:123")
}

func (s *FeedSuite) TestFeed_SourceOrderAndOptionalFields() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/voyager/api/feed/updates", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedFixture))
	})

	items, err := client.Feed(context.Background(), 10)
	s.Require().NoError(err)

	// The element without an update renders nothing; the rest keep order.
	s.Require().Len(items, 3)
	s.Equal("Jane Doe", items[0].Author)
	s.Equal("Excited to share our launch!", items[0].Text)
	s.Equal("2h", items[0].PostedAt)
	s.Equal(int64(120), items[0].LikeCount)
	s.Equal(int64(14), items[0].CommentCount)

	// Missing optionals stay zero-valued.
	s.Equal("Second post", items[1].Text)
	s.Empty(items[1].Author)
	s.Zero(items[1].LikeCount)

	s.Equal("Reshare Only", items[2].Author)
	s.Empty(items[2].Text)
}

func (s *FeedSuite) TestFeed_LimitApplied() {
	var gotCount string
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		gotCount = r.URL.Query().Get("count")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedFixture))
	})

	items, err := client.Feed(context.Background(), 2)
	s.Require().NoError(err)
	s.Equal("2", gotCount)
	s.Len(items, 2)
}

func (s *FeedSuite) TestFeed_EmptyFeed() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements": []}`))
	})

	items, err := client.Feed(context.Background(), 10)
	s.Require().NoError(err)
	s.Empty(items)
}
