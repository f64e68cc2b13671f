package models

// FeedItem is one post from the session owner's feed, in the order the
// feed supplied it (newest first).
type FeedItem struct {
	Author       string `json:"author,omitempty"`
	Text         string `json:"text"`
	PostedAt     string `json:"posted_at,omitempty"`
	LikeCount    int64  `json:"like_count,omitempty"`
	CommentCount int64  `json:"comment_count,omitempty"`
}
