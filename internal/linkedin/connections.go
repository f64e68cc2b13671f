package linkedin

import (
	"context"
	"encoding/base64"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/bharathsd/linkedin-mcp/internal/lierr"
	"github.com/bharathsd/linkedin-mcp/pkg/models"
)

// pageMarker is the decoded form of a connections cursor. The encoded
// token is opaque to every caller; only this package mints and reads it.
type pageMarker struct {
	Start int `json:"start"`
}

// Connections fetches one page of the session owner's connections.
// cursor is either empty (first page) or a token returned by a prior call.
// The returned page carries the next cursor, empty when the listing is
// exhausted.
func (c *Client) Connections(ctx context.Context, cursor string, limit int) (*models.ConnectionPage, error) {
	const op = "get_my_connections"

	start, err := decodeCursor(cursor)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = c.cfg.ConnectionsPage
	}

	params := url.Values{}
	params.Set("start", strconv.Itoa(start))
	params.Set("count", strconv.Itoa(limit))

	body, err := c.getJSON(ctx, op, "/voyager/api/relationships/connections", params)
	if err != nil {
		return nil, err
	}

	var resp connectionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, lierr.Wrap(lierr.KindParseError, err, "%s: decode connections payload", op)
	}

	page := &models.ConnectionPage{
		Connections: make([]models.Connection, 0, len(resp.Elements)),
	}
	for _, el := range resp.Elements {
		member := el.ConnectedMember
		name := joinName(member.FirstName, member.LastName)
		if name == "" {
			continue
		}
		page.Connections = append(page.Connections, models.Connection{
			Name:       name,
			Headline:   member.Headline,
			ProfileURL: ProfileURL(member.PublicIdentifier),
		})
	}

	next := start + len(resp.Elements)
	if len(resp.Elements) > 0 && (resp.Paging.Total == 0 || next < resp.Paging.Total) {
		page.NextCursor = encodeCursor(next)
	}
	return page, nil
}

// encodeCursor mints an opaque page token.
func encodeCursor(start int) string {
	raw, _ := json.Marshal(pageMarker{Start: start})
	return base64.RawURLEncoding.EncodeToString(raw)
}

// decodeCursor reads a page token back. Empty means the first page.
func decodeCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, lierr.Wrap(lierr.KindInvalidInput, err, "malformed pagination cursor")
	}
	var marker pageMarker
	if err := json.Unmarshal(raw, &marker); err != nil {
		return 0, lierr.Wrap(lierr.KindInvalidInput, err, "malformed pagination cursor")
	}
	if marker.Start < 0 {
		return 0, lierr.E(lierr.KindInvalidInput, "malformed pagination cursor")
	}
	return marker.Start, nil
}
