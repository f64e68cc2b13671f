package models

// Connection is one first-degree connection of the session owner.
type Connection struct {
	Name       string `json:"name"`
	Headline   string `json:"headline,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
}

// ConnectionPage is one page of the connections list. NextCursor is an
// opaque token; an empty value means there are no further pages.
type ConnectionPage struct {
	Connections []Connection `json:"connections"`
	NextCursor  string       `json:"next_cursor,omitempty"`
}
