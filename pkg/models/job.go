package models

// JobPosting is a single job search hit.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	JobURL      string `json:"job_url,omitempty"`
	PostedAt    string `json:"posted_at,omitempty"`
}
