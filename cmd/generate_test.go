package cmd

import (
	"testing"

	"github.com/nikogura/portfolio-forge/pkg/config"
	"github.com/nikogura/portfolio-forge/pkg/portfolio"
)

func TestPipelineContextHasNoDeadline(t *testing.T) {
	ctx := pipelineContext()

	_, hasDeadline := ctx.Deadline()
	if hasDeadline {
		t.Error("the interactive run must not carry a deadline")
	}
}

func TestStatsInputIncludesContact(t *testing.T) {
	results := []portfolio.Result{
		{Section: portfolio.SectionBio, Content: "bio text"},
		{Section: portfolio.SectionSkills, Content: "skills text"},
	}

	rows := statsInput(results, "Jane Doe\nGitHub: https://github.com/janedoe")
	if len(rows) != 3 {
		t.Fatalf("expected generated sections plus contact, got %d rows", len(rows))
	}

	last := rows[len(rows)-1]
	if last.Section != portfolio.SectionContact {
		t.Errorf("expected last row to be the contact block, got %s", last.Section)
	}
	if last.Failed() {
		t.Error("contact row should never be a failed result")
	}

	stats := portfolio.Stats(rows)
	if len(stats) != 3 {
		t.Errorf("expected contact counted in stats, got %d entries", len(stats))
	}
}

func TestGetOutputDir(t *testing.T) {
	cfg := config.Config{
		Defaults: config.DefaultConfig{OutputDir: "/from/config"},
	}

	outputDir = ""
	if getOutputDir(cfg) != "/from/config" {
		t.Errorf("expected config default, got %q", getOutputDir(cfg))
	}

	outputDir = "/from/flag"
	defer func() { outputDir = "" }()

	if getOutputDir(cfg) != "/from/flag" {
		t.Errorf("expected flag to win, got %q", getOutputDir(cfg))
	}
}
