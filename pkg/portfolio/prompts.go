package portfolio

import (
	"fmt"
)

// buildAnalysisPrompt creates the resume analysis prompt.
func buildAnalysisPrompt(resume string) (prompt string) {
	prompt = fmt.Sprintf(`Analyze this resume and extract the following information:
%s

Extract and categorize:
1. Technical skills
2. Soft skills
3. Tools and technologies
4. Project highlights
5. Education details
6. Professional experience

Format the response as structured data that can be easily parsed.`, resume)

	return prompt
}

// buildSectionPrompt creates the generation prompt for one section. Each
// section has its own required output shape.
func buildSectionPrompt(section Section, profile Profile) (prompt string) {
	switch section {
	case SectionBio:
		prompt = fmt.Sprintf(`Based on this parsed resume information:
%s

Create a professional bio for %s's portfolio website.
Write in first person, be concise and specific.
Focus on career highlights and expertise areas.
Length: 2-3 short paragraphs.`, profile.Analysis, profile.Name)

	case SectionSkills:
		prompt = fmt.Sprintf(`Based on this parsed resume information:
%s

Extract and organize all technical and professional skills.
Format as bullet points under appropriate categories.
Include only skills mentioned in or clearly implied by the resume.`, profile.Analysis)

	case SectionProjects:
		prompt = fmt.Sprintf(`Based on this parsed resume information:
%s

Create a detailed list of projects.
For each project include:
- Project name
- Brief description
- Technologies used
- Key achievements
Format as structured HTML list items (<li> tags).`, profile.Analysis)

	case SectionEducation:
		prompt = fmt.Sprintf(`Based on this parsed resume information:
%s

Create a structured education section using HTML.
For each education entry, create a div with class 'education-entry' using this format:

<div class="education-entry">
    <h3 class="degree">Degree/Certification Name</h3>
    <div class="institution">Institution Name</div>
    <div class="year">Graduation Year</div>
    <div class="details">
        <ul>
            <li>Relevant coursework or achievement 1</li>
            <li>Relevant coursework or achievement 2</li>
        </ul>
    </div>
</div>

Important:
- Order chronologically, most recent first
- Include all degrees and certifications
- Format consistently
- Include relevant coursework and achievements
- Use proper HTML structure as shown above`, profile.Analysis)

	case SectionInterests:
		prompt = fmt.Sprintf(`Based on this parsed resume information:
%s

Extract and list professional interests and relevant activities.
Include:
- Professional development activities
- Industry involvement
- Technical interests
- Relevant extracurricular activities
Format as concise bullet points.`, profile.Analysis)
	}

	return prompt
}

// buildReviewPrompt creates the consistency review prompt for the bio,
// skills and projects sections.
func buildReviewPrompt(resume, bio, skills, projects string) (prompt string) {
	prompt = fmt.Sprintf(`Review and improve this portfolio content based on the resume:

RESUME:
%s

CURRENT CONTENT:
Bio: %s
Skills: %s
Projects: %s

Ensure:
1. All information matches the resume
2. Professional tone and clarity
3. Proper technical terminology
4. Consistent formatting

Preserve the formatting conventions of each section (paragraphs for bio,
bullet points for skills, HTML list items for projects).

Return ONLY valid JSON in this exact format (no markdown, no commentary):
{
  "bio": "improved bio text",
  "skills": "improved skills text",
  "projects": "improved projects markup"
}

CRITICAL: Ensure all JSON strings are properly escaped. Use \n for newlines, \" for quotes.`,
		resume, bio, skills, projects)

	return prompt
}
