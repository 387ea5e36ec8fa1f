package portfolio

import (
	"fmt"
	"strings"
)

// Section identifies one named content block of the portfolio page.
type Section string

// The closed set of portfolio sections.
const (
	SectionBio       Section = "bio"
	SectionSkills    Section = "skills"
	SectionProjects  Section = "projects"
	SectionEducation Section = "education"
	SectionInterests Section = "interests"
	SectionContact   Section = "contact"
)

// GeneratedSections lists the sections produced by the generator, in the
// fixed order they are generated.
//
//nolint:gochecknoglobals // Fixed section ordering
var GeneratedSections = []Section{
	SectionBio,
	SectionSkills,
	SectionProjects,
	SectionEducation,
	SectionInterests,
}

// Generated reports whether the section is one the generator produces.
func (s Section) Generated() (result bool) {
	for _, section := range GeneratedSections {
		if s == section {
			result = true
			return result
		}
	}
	return result
}

// Valid reports whether the section belongs to the closed section set.
func (s Section) Valid() (result bool) {
	result = s.Generated() || s == SectionContact
	return result
}

// Title returns the section name with the first letter capitalized, for
// display in tables.
func (s Section) Title() (title string) {
	name := string(s)
	if name == "" {
		return title
	}
	title = strings.ToUpper(name[:1]) + name[1:]
	return title
}

// Profile holds the user's identity details and resume. It is immutable
// once Analysis has been attached.
type Profile struct {
	Name        string
	Resume      string
	GitHubURL   string
	LinkedInURL string
	// Analysis is the structured extraction produced from Resume. Empty
	// when the analysis call failed - later stages must accept that.
	Analysis string
}

// Result is the outcome of generating one section. Either Content is set,
// or Err records why generation failed. Callers decide how to present a
// failure instead of sniffing sentinel prefixes out of the content.
type Result struct {
	Section Section
	Content string
	Err     error
}

// Failed reports whether generation of this section failed.
func (r Result) Failed() (result bool) {
	result = r.Err != nil
	return result
}

// Render returns the content to embed in the page: the generated text on
// success, or a placeholder carrying the error text on failure. The
// placeholder is written into the output verbatim so failures stay visible
// in the rendered page.
func (r Result) Render() (content string) {
	if r.Err != nil {
		content = fmt.Sprintf("Error generating %s content: %v", r.Section, r.Err)
		return content
	}
	content = r.Content
	return content
}

// ContactBlock composes the contact section from the profile: the name,
// then one line per social link that was provided.
func ContactBlock(profile Profile) (block string) {
	lines := []string{profile.Name}
	if profile.GitHubURL != "" {
		lines = append(lines, "GitHub: "+profile.GitHubURL)
	}
	if profile.LinkedInURL != "" {
		lines = append(lines, "LinkedIn: "+profile.LinkedInURL)
	}
	block = strings.Join(lines, "\n")
	return block
}
