package linkedin

import (
	"context"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/bharathsd/linkedin-mcp/internal/lierr"
	"github.com/bharathsd/linkedin-mcp/pkg/models"
)

// Feed fetches at most limit items from the session owner's feed, newest
// first as supplied by the source.
func (c *Client) Feed(ctx context.Context, limit int) ([]models.FeedItem, error) {
	const op = "get_feed"

	if limit <= 0 {
		limit = c.cfg.FeedLimit
	}

	params := url.Values{}
	params.Set("count", strconv.Itoa(limit))

	body, err := c.getJSON(ctx, op, "/voyager/api/feed/updates", params)
	if err != nil {
		return nil, err
	}

	var resp feedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, lierr.Wrap(lierr.KindParseError, err, "%s: decode feed payload", op)
	}

	items := make([]models.FeedItem, 0, len(resp.Elements))
	for _, el := range resp.Elements {
		update := el.Value.UpdateV2
		if update == nil {
			continue
		}

		item := models.FeedItem{}
		if update.Commentary != nil {
			item.Text = update.Commentary.Text.Text
		}
		if update.Actor != nil {
			item.Author = update.Actor.Name.Text
			if update.Actor.SubDescription != nil {
				item.PostedAt = update.Actor.SubDescription.Text
			}
		}
		if update.SocialDetail != nil && update.SocialDetail.TotalSocialActivityCounts != nil {
			item.LikeCount = update.SocialDetail.TotalSocialActivityCounts.NumLikes
			item.CommentCount = update.SocialDetail.TotalSocialActivityCounts.NumComments
		}

		if item.Text == "" && item.Author == "" {
			continue
		}
		items = append(items, item)
		if len(items) >= limit {
			break
		}
	}
	return items, nil
}
