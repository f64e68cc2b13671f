package linkedin

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bharathsd/linkedin-mcp/internal/lierr"
)

// ProfileInputSuite covers public identifier extraction and validation.
type ProfileInputSuite struct {
	suite.Suite
}

func TestProfileInputSuite(t *testing.T) {
	suite.Run(t, new(ProfileInputSuite))
}

func (s *ProfileInputSuite) TestPublicIDFromInput_Valid() {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "full https url", input: "https://www.linkedin.com/in/jane-doe", expected: "jane-doe"},
		{name: "trailing slash", input: "https://www.linkedin.com/in/jane-doe/", expected: "jane-doe"},
		{name: "query string", input: "https://www.linkedin.com/in/jane-doe?trk=profile", expected: "jane-doe"},
		{name: "schemeless", input: "linkedin.com/in/jane-doe", expected: "jane-doe"},
		{name: "country subdomain", input: "https://de.linkedin.com/in/jane-doe", expected: "jane-doe"},
		{name: "bare identifier", input: "jane-doe", expected: "jane-doe"},
		{name: "percent encoded", input: "j%C3%A4ne-doe", expected: "j%C3%A4ne-doe"},
		{name: "surrounding whitespace", input: "  jane-doe  ", expected: "jane-doe"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := PublicIDFromInput(tt.input)
			s.Require().NoError(err)
			s.Equal(tt.expected, got)
		})
	}
}

func (s *ProfileInputSuite) TestPublicIDFromInput_Invalid() {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "wrong host", input: "https://example.com/in/jane-doe"},
		{name: "lookalike host", input: "https://evillinkedin.com.example.org/in/jane"},
		{name: "company page", input: "https://www.linkedin.com/company/example"},
		{name: "missing identifier", input: "https://www.linkedin.com/in/"},
		{name: "bare path", input: "some/path"},
		{name: "spaces inside", input: "jane doe"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := PublicIDFromInput(tt.input)
			s.True(lierr.IsKind(err, lierr.KindInvalidInput), "input %q: got %v", tt.input, err)
		})
	}
}

func (s *ProfileInputSuite) TestProfileURL() {
	s.Equal("https://www.linkedin.com/in/jane-doe", ProfileURL("jane-doe"))
	s.Empty(ProfileURL(""))
}

func (s *ProfileInputSuite) TestJoinName() {
	s.Equal("Jane Doe", joinName("Jane", "Doe"))
	s.Equal("Jane", joinName("Jane", ""))
	s.Equal("Doe", joinName("", "Doe"))
	s.Empty(joinName("", ""))
	s.Equal("Jane Doe", joinName(" Jane ", " Doe "))
}
