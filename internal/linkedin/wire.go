package linkedin

import "fmt"

// Voyager wire shapes, pinned to the fields this bridge actually reads.
// The surface is an external contract LinkedIn versions at will; every
// field here is optional at the decode level and checked afterwards.

// meResponse is /voyager/api/me.
type meResponse struct {
	FirstName        string       `json:"firstName"`
	LastName         string       `json:"lastName"`
	Headline         string       `json:"headline"`
	PublicIdentifier string       `json:"publicIdentifier"`
	MiniProfile      *miniProfile `json:"miniProfile"`
}

// miniProfile is the nested identity blob some /me variants return.
type miniProfile struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Occupation       string `json:"occupation"`
	PublicIdentifier string `json:"publicIdentifier"`
}

// profileViewResponse is /voyager/api/identity/profiles/{id}/profileView.
type profileViewResponse struct {
	Profile       profileCore              `json:"profile"`
	PositionView  elementsOf[positionWire] `json:"positionView"`
	EducationView elementsOf[schoolWire]   `json:"educationView"`
	SkillView     elementsOf[skillWire]    `json:"skillView"`
}

type profileCore struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Headline     string `json:"headline"`
	Summary      string `json:"summary"`
	LocationName string `json:"locationName"`
	IndustryName string `json:"industryName"`
}

// elementsOf wraps Voyager's ubiquitous {"elements": [...]} envelope.
type elementsOf[T any] struct {
	Elements []T `json:"elements"`
}

type positionWire struct {
	Title        string          `json:"title"`
	CompanyName  string          `json:"companyName"`
	Description  string          `json:"description"`
	LocationName string          `json:"locationName"`
	TimePeriod   *timePeriodWire `json:"timePeriod"`
}

type timePeriodWire struct {
	StartDate *yearMonth `json:"startDate"`
	EndDate   *yearMonth `json:"endDate"`
}

type yearMonth struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// format renders "M/YYYY", or "YYYY" when the month is absent.
func (ym *yearMonth) format() string {
	if ym == nil || ym.Year == 0 {
		return ""
	}
	if ym.Month == 0 {
		return fmt.Sprintf("%d", ym.Year)
	}
	return fmt.Sprintf("%d/%d", ym.Month, ym.Year)
}

type schoolWire struct {
	SchoolName   string `json:"schoolName"`
	DegreeName   string `json:"degreeName"`
	FieldOfStudy string `json:"fieldOfStudy"`
}

type skillWire struct {
	Name string `json:"name"`
}

// blendedResponse is /voyager/api/search/blended. Each element resolves
// to at most one hit type depending on the requested resultType.
type blendedResponse struct {
	Elements []blendedElement `json:"elements"`
}

type blendedElement struct {
	HitInfo blendedHit `json:"hitInfo"`
}

type blendedHit struct {
	Profile    *searchProfileWire `json:"*profile"`
	JobPosting *searchJobWire     `json:"*jobPosting"`
}

type searchProfileWire struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Headline         string `json:"headline"`
	GeoLocationName  string `json:"geoLocationName"`
	PublicIdentifier string `json:"publicIdentifier"`
}

type searchJobWire struct {
	Title              string `json:"title"`
	CompanyName        string `json:"companyName"`
	FormattedLocation  string `json:"formattedLocation"`
	DescriptionSnippet string `json:"descriptionSnippet"`
	JobPostingID       int64  `json:"jobPostingId"`
	ListedAt           int64  `json:"listedAt"`
}

// connectionsResponse is /voyager/api/relationships/connections.
type connectionsResponse struct {
	Elements []connectionWire `json:"elements"`
	Paging   pagingWire       `json:"paging"`
}

type connectionWire struct {
	ConnectedMember connectedMemberWire `json:"connectedMember"`
}

type connectedMemberWire struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Headline         string `json:"headline"`
	PublicIdentifier string `json:"publicIdentifier"`
}

type pagingWire struct {
	Start int `json:"start"`
	Count int `json:"count"`
	Total int `json:"total"`
}

// feedResponse is /voyager/api/feed/updates.
type feedResponse struct {
	Elements []feedElementWire `json:"elements"`
}

type feedElementWire struct {
	Value feedValueWire `json:"value"`
}

type feedValueWire struct {
	UpdateV2 *updateV2Wire `json:"com.linkedin.voyager.feed.render.UpdateV2"`
}

type updateV2Wire struct {
	Commentary   *commentaryWire   `json:"commentary"`
	Actor        *actorWire        `json:"actor"`
	SocialDetail *socialDetailWire `json:"socialDetail"`
}

type commentaryWire struct {
	Text textWire `json:"text"`
}

type actorWire struct {
	Name           textWire  `json:"name"`
	SubDescription *textWire `json:"subDescription"`
}

type socialDetailWire struct {
	TotalSocialActivityCounts *activityCountsWire `json:"totalSocialActivityCounts"`
}

type activityCountsWire struct {
	NumLikes    int64 `json:"numLikes"`
	NumComments int64 `json:"numComments"`
}

type textWire struct {
	Text string `json:"text"`
}
