package portfolio

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nikogura/portfolio-forge/pkg/llm"
)

const (
	// reviewerPersona is the system role for the consistency pass.
	reviewerPersona = "You are an expert portfolio content reviewer focusing on accuracy and professionalism."
	// reviewTemperature matches the generation sampling setting.
	reviewTemperature = 0.4
)

// reviewResponse is the structured reply expected from the review pass.
type reviewResponse struct {
	Bio      string `json:"bio"`
	Skills   string `json:"skills"`
	Projects string `json:"projects"`
}

// Reviewer re-submits generated content together with the original resume
// for a single consistency-and-tone pass.
type Reviewer struct {
	client *llm.Client
	logger *slog.Logger
}

// NewReviewer creates a new content reviewer.
func NewReviewer(client *llm.Client, logger *slog.Logger) (reviewer *Reviewer) {
	reviewer = &Reviewer{
		client: client,
		logger: logger,
	}
	return reviewer
}

// Review returns revised bio, skills and projects content. On any failure
// (network, API, unparseable reply) it logs the error and returns the three
// inputs unchanged - the review pass never fails the run.
func (r *Reviewer) Review(ctx context.Context, profile Profile, bio, skills, projects string) (revBio, revSkills, revProjects string) {
	revBio = bio
	revSkills = skills
	revProjects = projects

	prompt := buildReviewPrompt(profile.Resume, bio, skills, projects)

	responseText, err := r.client.Complete(ctx, reviewerPersona, prompt, reviewTemperature)
	if err != nil {
		r.logger.Error("content review failed", "error", err)
		return revBio, revSkills, revProjects
	}

	// Clean markdown code fences if present
	cleanedText := llm.StripMarkdownCodeFences(responseText)

	var resp reviewResponse
	err = json.Unmarshal([]byte(cleanedText), &resp)
	if err != nil {
		r.logger.Error("failed to parse review response", "error", err)
		return revBio, revSkills, revProjects
	}

	// An empty field means the reviewer had nothing for that section.
	if resp.Bio != "" {
		revBio = resp.Bio
	}
	if resp.Skills != "" {
		revSkills = resp.Skills
	}
	if resp.Projects != "" {
		revProjects = resp.Projects
	}

	return revBio, revSkills, revProjects
}
