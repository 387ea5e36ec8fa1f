package portfolio

import (
	"context"
	"log/slog"

	"github.com/nikogura/portfolio-forge/pkg/llm"
	"github.com/pkg/errors"
)

const (
	// generatorPersona is the system role for section generation.
	generatorPersona = "You are a professional portfolio content creator focused on accuracy and relevance."
	// sectionTemperature biases section prose toward factual output.
	sectionTemperature = 0.4
)

// Generator produces the content for the five generated portfolio sections.
type Generator struct {
	client *llm.Client
	logger *slog.Logger
}

// NewGenerator creates a new section generator.
func NewGenerator(client *llm.Client, logger *slog.Logger) (generator *Generator) {
	generator = &Generator{
		client: client,
		logger: logger,
	}
	return generator
}

// Generate requests content for one section. An unknown section name is an
// invalid-argument error raised before any network call. A generation
// failure is not an error to the caller: it is logged and recorded in the
// returned Result, whose Render output carries the failure text into the
// page.
func (g *Generator) Generate(ctx context.Context, section Section, profile Profile) (result Result, err error) {
	if !section.Generated() {
		err = errors.Errorf("invalid section: %s", section)
		return result, err
	}

	prompt := buildSectionPrompt(section, profile)

	content, callErr := g.client.Complete(ctx, generatorPersona, prompt, sectionTemperature)
	if callErr != nil {
		g.logger.Error("section generation failed", "section", string(section), "error", callErr)
		result = Result{Section: section, Err: callErr}
		return result, err
	}

	result = Result{Section: section, Content: content}
	return result, err
}
