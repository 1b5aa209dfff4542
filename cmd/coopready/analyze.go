package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lawrence-dass/coop-ready-sub002/internal/analysis"
	"github.com/lawrence-dass/coop-ready-sub002/internal/config"
	"github.com/lawrence-dass/coop-ready-sub002/internal/llm"
	"github.com/lawrence-dass/coop-ready-sub002/internal/observability"
	"github.com/lawrence-dass/coop-ready-sub002/internal/quality"
	"github.com/lawrence-dass/coop-ready-sub002/internal/resilience"
	"github.com/lawrence-dass/coop-ready-sub002/internal/scoring"
	"github.com/lawrence-dass/coop-ready-sub002/internal/structural"
	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description and check its structure",
	Long: `Runs the composite scorer and the structural rule engine for one resume/job pair.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath     string
	analyzeResume         string
	analyzeJob            string
	analyzeKeywords       string
	analyzeArchetype      string
	analyzeSectionOrder   []string
	analyzeEnhanced       bool
	analyzeAPIKey         string
	analyzeOutputFile     string
	analyzeVerbose        bool
	analyzeCircuitBreaker bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to parsed resume JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVarP(&analyzeKeywords, "keywords", "k", "", "Path to keyword analysis JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeArchetype, "archetype", "a", "", "Candidate archetype: coop, fulltime, career_changer")
	analyzeCmd.Flags().StringSliceVar(&analyzeSectionOrder, "section-order", nil, "Resume section order, e.g. skills,education,projects,experience")
	analyzeCmd.Flags().BoolVar(&analyzeEnhanced, "enhanced", false, "Use the five-component enhanced scorer")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCmd.Flags().BoolVar(&analyzeCircuitBreaker, "circuit-breaker", false, "Wrap external calls in a circuit breaker")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := analyzeConfig(cmd)
	if err != nil {
		return err
	}

	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}
	jobDescription, err := loadJobDescription(cfg.Job)
	if err != nil {
		return err
	}
	keywords, err := loadKeywords(cfg.Keywords)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	invokerOpts := []resilience.Option{resilience.WithLogger(logger)}
	if cfg.CircuitBreaker {
		invokerOpts = append(invokerOpts, resilience.WithCircuitBreaker("quality-judge"))
	}
	invoker := resilience.NewInvoker(invokerOpts...)

	judge := quality.NewLLMJudge(client, invoker, logger)
	service := analysis.NewService(
		scoring.NewScorer(judge, logger),
		structural.NewEngine(structural.WithLogger(logger)),
		logger,
	)

	report, err := service.Run(ctx, analysis.Request{
		Resume:          resume,
		JobDescription:  jobDescription,
		KeywordAnalysis: keywords,
		Archetype:       types.Archetype(cfg.Archetype),
		SectionOrder:    cfg.SectionOrder,
		Enhanced:        cfg.Enhanced,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScoreBreakdown(report.Score)
		printer.PrintEnhancedScore(report.Enhanced)
		printer.PrintStructuralSuggestions(report.Structural)
	}

	return writeOutput(analyzeOutputFile, report)
}

// analyzeConfig merges the config file, CLI overrides, and environment into
// one validated configuration.
func analyzeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Command-line args take priority; only override if the flag was set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("keywords") {
		cfg.Keywords = analyzeKeywords
	}
	if cmd.Flags().Changed("archetype") {
		cfg.Archetype = analyzeArchetype
	}
	if cmd.Flags().Changed("section-order") {
		cfg.SectionOrder = analyzeSectionOrder
	}
	if cmd.Flags().Changed("enhanced") {
		cfg.Enhanced = analyzeEnhanced
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("circuit-breaker") {
		cfg.CircuitBreaker = analyzeCircuitBreaker
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if cfg.Resume == "" {
		return cfg, fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" {
		return cfg, fmt.Errorf("--job is required (via flag or config)")
	}
	if cfg.Keywords == "" {
		return cfg, fmt.Errorf("--keywords is required (via flag or config)")
	}
	if cfg.Archetype == "" {
		return cfg, fmt.Errorf("--archetype is required (via flag or config)")
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return cfg, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	return cfg, nil
}
