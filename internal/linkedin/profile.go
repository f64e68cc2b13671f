package linkedin

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"github.com/bharathsd/linkedin-mcp/internal/lierr"
	"github.com/bharathsd/linkedin-mcp/pkg/models"
)

// publicIDPattern matches the characters LinkedIn allows in a public
// profile identifier.
var publicIDPattern = regexp.MustCompile(`^[A-Za-z0-9%_-]+$`)

// ProfileSelf fetches the session owner's full profile: /me for identity,
// then the profile view for experience, education, and skills.
func (c *Client) ProfileSelf(ctx context.Context) (*models.Profile, error) {
	const op = "get_my_profile"

	body, err := c.getJSON(ctx, op, "/voyager/api/me", nil)
	if err != nil {
		return nil, err
	}

	var me meResponse
	if err := json.Unmarshal(body, &me); err != nil {
		return nil, lierr.Wrap(lierr.KindParseError, err, "%s: decode me payload", op)
	}

	first, last, publicID := me.FirstName, me.LastName, me.PublicIdentifier
	headline := me.Headline
	if first == "" && last == "" && me.MiniProfile != nil {
		first, last = me.MiniProfile.FirstName, me.MiniProfile.LastName
		headline = me.MiniProfile.Occupation
		if publicID == "" {
			publicID = me.MiniProfile.PublicIdentifier
		}
	}

	name := joinName(first, last)
	if name == "" {
		return nil, lierr.E(lierr.KindParseError, "%s: required field name missing from me payload", op)
	}
	if publicID == "" {
		// Identity-only response; return what we have.
		return &models.Profile{
			Name:       name,
			Headline:   headline,
			Experience: []models.Experience{},
			Education:  []models.Education{},
			Skills:     []string{},
		}, nil
	}

	profile, err := c.fetchProfileView(ctx, op, publicID)
	if err != nil {
		return nil, err
	}
	if profile.Headline == "" {
		profile.Headline = headline
	}
	return profile, nil
}

// ProfileByURL fetches any profile by URL or bare public identifier.
func (c *Client) ProfileByURL(ctx context.Context, profileURL string) (*models.Profile, error) {
	const op = "get_profile_by_url"

	publicID, err := PublicIDFromInput(profileURL)
	if err != nil {
		return nil, err
	}
	return c.fetchProfileView(ctx, op, publicID)
}

// fetchProfileView retrieves and normalizes a full profile view.
func (c *Client) fetchProfileView(ctx context.Context, op, publicID string) (*models.Profile, error) {
	body, err := c.getJSON(ctx, op, "/voyager/api/identity/profiles/"+url.PathEscape(publicID)+"/profileView", nil)
	if err != nil {
		return nil, err
	}

	var view profileViewResponse
	if err := json.Unmarshal(body, &view); err != nil {
		return nil, lierr.Wrap(lierr.KindParseError, err, "%s: decode profile view", op)
	}

	name := joinName(view.Profile.FirstName, view.Profile.LastName)
	if name == "" {
		return nil, lierr.E(lierr.KindParseError, "%s: required field name missing from profile view for %q", op, publicID)
	}

	profile := &models.Profile{
		Name:       name,
		Headline:   view.Profile.Headline,
		Summary:    view.Profile.Summary,
		Location:   view.Profile.LocationName,
		Industry:   view.Profile.IndustryName,
		ProfileURL: ProfileURL(publicID),
		Experience: make([]models.Experience, 0, len(view.PositionView.Elements)),
		Education:  make([]models.Education, 0, len(view.EducationView.Elements)),
		Skills:     make([]string, 0, len(view.SkillView.Elements)),
	}

	for _, pos := range view.PositionView.Elements {
		exp := models.Experience{
			Title:       pos.Title,
			Company:     pos.CompanyName,
			Location:    pos.LocationName,
			Description: pos.Description,
		}
		if pos.TimePeriod != nil {
			exp.StartDate = pos.TimePeriod.StartDate.format()
			exp.EndDate = pos.TimePeriod.EndDate.format()
		}
		profile.Experience = append(profile.Experience, exp)
	}

	for _, school := range view.EducationView.Elements {
		profile.Education = append(profile.Education, models.Education{
			School: school.SchoolName,
			Degree: school.DegreeName,
			Field:  school.FieldOfStudy,
		})
	}

	for _, skill := range view.SkillView.Elements {
		if skill.Name != "" {
			profile.Skills = append(profile.Skills, skill.Name)
		}
	}

	return profile, nil
}

// PublicIDFromInput extracts a public identifier from a profile URL, a
// schemeless linkedin.com path, or a bare identifier. Anything else is
// invalid input.
func PublicIDFromInput(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", lierr.E(lierr.KindInvalidInput, "profile url is empty")
	}

	candidate := trimmed
	if strings.Contains(trimmed, "linkedin.com") {
		withScheme := trimmed
		if !strings.Contains(withScheme, "://") {
			withScheme = "https://" + withScheme
		}
		u, err := url.Parse(withScheme)
		if err != nil {
			return "", lierr.Wrap(lierr.KindInvalidInput, err, "malformed profile url %q", trimmed)
		}
		host := strings.ToLower(u.Hostname())
		if host != "linkedin.com" && !strings.HasSuffix(host, ".linkedin.com") {
			return "", lierr.E(lierr.KindInvalidInput, "host %q is not a LinkedIn profile host", host)
		}
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(segments) < 2 || segments[0] != "in" || segments[1] == "" {
			return "", lierr.E(lierr.KindInvalidInput, "url %q is not a profile url (expected /in/<id>)", trimmed)
		}
		candidate = segments[1]
	} else if strings.Contains(trimmed, "/") {
		// A path without a linkedin.com host is ambiguous; reject it.
		return "", lierr.E(lierr.KindInvalidInput, "url %q is not a LinkedIn profile url", trimmed)
	}

	if !publicIDPattern.MatchString(candidate) {
		return "", lierr.E(lierr.KindInvalidInput, "public identifier %q contains invalid characters", candidate)
	}
	return candidate, nil
}

// ProfileURL builds the canonical profile URL for a public identifier.
func ProfileURL(publicID string) string {
	if publicID == "" {
		return ""
	}
	return "https://www.linkedin.com/in/" + publicID
}

// joinName joins name parts, tolerating either being empty.
func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
