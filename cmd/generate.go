package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nikogura/portfolio-forge/pkg/config"
	"github.com/nikogura/portfolio-forge/pkg/llm"
	"github.com/nikogura/portfolio-forge/pkg/logger"
	"github.com/nikogura/portfolio-forge/pkg/portfolio"
	"github.com/nikogura/portfolio-forge/pkg/resume"
	"github.com/nikogura/portfolio-forge/pkg/site"
	"github.com/nikogura/portfolio-forge/pkg/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var resumeFile string

//nolint:gochecknoglobals // Cobra boilerplate
var review bool

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Interactively generate a portfolio website",
	Long: `Generate a portfolio website from your resume.

The command walks you through entering your name, resume, and profile links,
then generates content for each section of the site and writes portfolio.html,
styles.css, and scripts.js to the output directory.

Example:
  portfolio-forge generate
  portfolio-forge generate --resume-file resume.txt --output-dir ./site`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory for the generated site (default from config)")
	generateCmd.Flags().StringVar(&resumeFile, "resume-file", "", "Read the resume from a file or URL instead of pasting it")
	generateCmd.Flags().BoolVar(&review, "review", true, "Run a consistency review pass over the generated content")
}

// runGenerate never fails the process: any error is logged, reported to the
// user, and the command exits cleanly.
func runGenerate(cmd *cobra.Command, args []string) (err error) {
	u := ui.New(os.Stdin, os.Stdout)

	runErr := runPipeline(u)
	if runErr != nil {
		u.Errorf("An error occurred: %v", runErr)
	}

	return err
}

func runPipeline(u *ui.UI) (err error) {
	ctx := pipelineContext()

	u.Banner()

	// Load configuration. The API key must be present before any user
	// input is collected.
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	outDir := getOutputDir(cfg)

	// Per-run log file beside the generated site
	var log *slog.Logger
	var logFile *os.File
	log, logFile, err = logger.OpenRunLog(outDir, getVerbose())
	if err != nil {
		return err
	}
	defer logFile.Close()

	client := llm.NewClient(cfg.OpenAIAPIKey, cfg.GetModel())

	// Collect the user's profile, with resume analysis attached
	var profile portfolio.Profile
	profile, err = collectProfile(ctx, u, client, log)
	if err != nil {
		log.Error("profile collection failed", "error", err.Error())
		return err
	}

	// Generate each site section in order
	results := generateSections(ctx, u, client, log, profile)

	// Optional consistency review over the narrative sections
	if review {
		runReview(ctx, u, client, log, profile, results)
	}

	content := make(map[portfolio.Section]string)
	for _, result := range results {
		content[result.Section] = result.Render()
	}
	content[portfolio.SectionContact] = portfolio.ContactBlock(profile)

	u.ShowStats(portfolio.Stats(statsInput(results, content[portfolio.SectionContact])))

	// Style preference is recorded but all themes currently share the
	// built-in stylesheet.
	var style ui.Style
	style, err = u.SelectStyle()
	if err != nil {
		log.Error("style selection failed", "error", err.Error())
		return err
	}
	log.Debug("style selected", "style", style.Identifier())

	err = site.Emit(outDir, profile.Name, content)
	if err != nil {
		log.Error("site emission failed", "error", err.Error())
		return err
	}

	u.Successf("Portfolio website generated in %s", outDir)
	u.Printf("  %s\n", filepath.Join(outDir, site.HTMLFilename))
	u.Printf("  %s\n", filepath.Join(outDir, site.CSSFilename))
	u.Printf("  %s\n", filepath.Join(outDir, site.JSFilename))

	u.DeploymentGuide()

	u.Println()
	u.Successf("All done! Good luck with your portfolio!")

	return err
}

// pipelineContext returns the context for a full interactive run. The run
// itself carries no deadline - the user may take arbitrarily long at the
// prompts, and each API request already has its own HTTP timeout.
func pipelineContext() (ctx context.Context) {
	ctx = context.Background()
	return ctx
}

// collectProfile gathers the user's name, resume, and profile links, then
// runs the resume analysis. A failed analysis degrades to an empty analysis
// rather than aborting the run.
func collectProfile(ctx context.Context, u *ui.UI, client *llm.Client, log *slog.Logger) (profile portfolio.Profile, err error) {
	u.Header("Let's gather your information")

	profile.Name = u.ReadLine("What is your full name? ")
	if profile.Name == "" {
		err = errors.New("a name is required")
		return profile, err
	}

	if resumeFile != "" {
		u.Printf("Loading resume from: %s\n", resumeFile)
		profile.Resume, err = resume.Load(resumeFile)
		if err != nil {
			err = errors.Wrap(err, "failed to load resume")
			return profile, err
		}
		u.Printf("Resume loaded (%d characters)\n", len(profile.Resume))
	} else {
		// An empty resume is accepted and propagated - the model will
		// simply have little to work with.
		profile.Resume = u.ReadMultiline("Paste your resume below. When finished, press Ctrl+D (Unix/Mac) or Ctrl+Z then Enter (Windows):")
	}

	profile.GitHubURL = u.ReadLine("GitHub profile URL (optional, press Enter to skip): ")
	profile.LinkedInURL = u.ReadLine("LinkedIn profile URL (optional, press Enter to skip): ")

	spinner := startProgress(u, "Analyzing your resume...")
	analyzer := portfolio.NewAnalyzer(client, log)
	profile.Analysis = analyzer.Analyze(ctx, profile.Resume)
	stopProgress(u, spinner, "Resume analysis complete")

	return profile, err
}

// generateSections produces content for each generated section in order.
// Individual section failures surface as failed results, not errors.
func generateSections(ctx context.Context, u *ui.UI, client *llm.Client, log *slog.Logger, profile portfolio.Profile) (results []portfolio.Result) {
	u.Header("Generating your portfolio content")

	generator := portfolio.NewGenerator(client, log)
	results = make([]portfolio.Result, 0, len(portfolio.GeneratedSections))

	for _, section := range portfolio.GeneratedSections {
		spinner := startProgress(u, "Generating "+section.Title()+" section...")

		result, genErr := generator.Generate(ctx, section, profile)
		if genErr != nil {
			// Only reachable with an invalid section, which the
			// fixed iteration order rules out
			result = portfolio.Result{Section: section, Err: genErr}
		}

		if result.Failed() {
			stopProgress(u, spinner, "")
			u.Errorf("Failed to generate %s section: %v", section.Title(), result.Err)
		} else {
			stopProgress(u, spinner, section.Title()+" section generated")
		}

		results = append(results, result)
	}

	return results
}

// runReview applies the consistency review to the narrative sections,
// updating the results in place. Review failures leave content unchanged.
func runReview(ctx context.Context, u *ui.UI, client *llm.Client, log *slog.Logger, profile portfolio.Profile, results []portfolio.Result) {
	indexes := make(map[portfolio.Section]int)
	for i, result := range results {
		indexes[result.Section] = i
	}

	bio := reviewInput(results, indexes, portfolio.SectionBio)
	skills := reviewInput(results, indexes, portfolio.SectionSkills)
	projects := reviewInput(results, indexes, portfolio.SectionProjects)

	spinner := startProgress(u, "Reviewing content for consistency...")
	reviewer := portfolio.NewReviewer(client, log)
	revBio, revSkills, revProjects := reviewer.Review(ctx, profile, bio, skills, projects)
	stopProgress(u, spinner, "Consistency review complete")

	applyReview(results, indexes, portfolio.SectionBio, revBio)
	applyReview(results, indexes, portfolio.SectionSkills, revSkills)
	applyReview(results, indexes, portfolio.SectionProjects, revProjects)
}

func reviewInput(results []portfolio.Result, indexes map[portfolio.Section]int, section portfolio.Section) (content string) {
	i, found := indexes[section]
	if !found || results[i].Failed() {
		return content
	}
	content = results[i].Content
	return content
}

func applyReview(results []portfolio.Result, indexes map[portfolio.Section]int, section portfolio.Section, reviewed string) {
	i, found := indexes[section]
	if !found || results[i].Failed() || reviewed == "" {
		return
	}
	results[i].Content = reviewed
}

// statsInput returns the rows for the statistics table: the generated
// sections plus the composed contact block.
func statsInput(results []portfolio.Result, contact string) (rows []portfolio.Result) {
	rows = append(rows, results...)
	rows = append(rows, portfolio.Result{Section: portfolio.SectionContact, Content: contact})
	return rows
}

// startProgress shows a spinner, or a plain status line in verbose mode.
func startProgress(u *ui.UI, message string) (s *ui.Spinner) {
	if getVerbose() {
		u.Println(message)
		return s
	}

	s = u.NewSpinner(message)
	s.Start()
	return s
}

func stopProgress(u *ui.UI, s *ui.Spinner, successMessage string) {
	if s != nil {
		s.Stop()
	}
	if successMessage != "" {
		u.Successf("%s", successMessage)
	}
}

// getOutputDir returns the output directory from flag or config.
func getOutputDir(cfg config.Config) (outDir string) {
	outDir = outputDir
	if outDir == "" {
		outDir = cfg.Defaults.OutputDir
	}
	return outDir
}
