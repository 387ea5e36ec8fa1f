package portfolio

import (
	"context"
	"log/slog"

	"github.com/nikogura/portfolio-forge/pkg/llm"
)

const (
	// analyzerPersona is the system role for resume analysis.
	analyzerPersona = "You are an expert resume analyzer. Extract and structure key information accurately."
	// analysisTemperature biases extraction toward deterministic output.
	analysisTemperature = 0.3
)

// Analyzer extracts structured information from raw resume text.
type Analyzer struct {
	client *llm.Client
	logger *slog.Logger
}

// NewAnalyzer creates a new resume analyzer.
func NewAnalyzer(client *llm.Client, logger *slog.Logger) (analyzer *Analyzer) {
	analyzer = &Analyzer{
		client: client,
		logger: logger,
	}
	return analyzer
}

// Analyze sends the resume to the model and returns the structured textual
// extraction. On any failure it logs the error and returns an empty
// analysis - an absent analysis is valid input to the later stages.
func (a *Analyzer) Analyze(ctx context.Context, resume string) (analysis string) {
	prompt := buildAnalysisPrompt(resume)

	analysis, err := a.client.Complete(ctx, analyzerPersona, prompt, analysisTemperature)
	if err != nil {
		a.logger.Error("resume analysis failed", "error", err)
		analysis = ""
		return analysis
	}

	return analysis
}
