// Package models contains the normalized LinkedIn records returned by tool calls.
package models

// Experience is a single position entry on a profile, in source order.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// Education is a single school entry on a profile.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
	Field  string `json:"field,omitempty"`
}

// Profile is a fully parsed LinkedIn profile. Immutable once constructed;
// optional fields are empty rather than absent.
type Profile struct {
	Name       string       `json:"name"`
	Headline   string       `json:"headline,omitempty"`
	Summary    string       `json:"summary,omitempty"`
	Location   string       `json:"location,omitempty"`
	Industry   string       `json:"industry,omitempty"`
	ProfileURL string       `json:"profile_url,omitempty"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []string     `json:"skills"`
}

// ProfileSummary is a lightweight search hit. Rank order reflects the
// source ordering and is never re-sorted.
type ProfileSummary struct {
	Name       string `json:"name"`
	Headline   string `json:"headline,omitempty"`
	Location   string `json:"location,omitempty"`
	PublicID   string `json:"public_id,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
}
