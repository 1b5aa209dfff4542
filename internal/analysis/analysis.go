// Package analysis orchestrates one resume-against-job analysis run: the
// composite scorer and the structural rule engine execute concurrently, and
// their outputs are combined into a single report.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lawrence-dass/coop-ready-sub002/internal/scoring"
	"github.com/lawrence-dass/coop-ready-sub002/internal/structural"
	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

// Request carries everything one analysis run needs. Resume and keyword
// analysis are produced upstream; this package never parses documents.
type Request struct {
	Resume          *types.ParsedResume    `json:"resume"`
	JobDescription  string                 `json:"job_description"`
	KeywordAnalysis *types.KeywordAnalysis `json:"keyword_analysis"`
	Archetype       types.Archetype        `json:"archetype"`
	SectionOrder    []string               `json:"section_order"`
	Enhanced        bool                   `json:"enhanced"`
}

// Report is the combined output of one run.
type Report struct {
	RunID       string                        `json:"run_id"`
	Score       *types.ScoreBreakdown         `json:"score,omitempty"`
	Enhanced    *types.EnhancedScoreBreakdown `json:"enhanced_score,omitempty"`
	Structural  []types.StructuralSuggestion  `json:"structural_suggestions"`
	Duration    time.Duration                 `json:"duration"`
	CompletedAt time.Time                     `json:"completed_at"`
}

// Service wires the scorer and the structural engine. The two have no data
// dependency on each other, so a run executes them concurrently.
type Service struct {
	scorer *scoring.Scorer
	engine *structural.Engine
	logger zerolog.Logger
}

// NewService creates an analysis service.
func NewService(scorer *scoring.Scorer, engine *structural.Engine, logger zerolog.Logger) *Service {
	return &Service{scorer: scorer, engine: engine, logger: logger}
}

// Run executes one analysis. Scoring failures abort the run; the structural
// engine cannot fail. The request's resume is never mutated.
func (s *Service) Run(ctx context.Context, req Request) (*Report, error) {
	runID := uuid.NewString()
	start := time.Now()
	logger := s.logger.With().Str("run_id", runID).Logger()
	logger.Info().
		Str("archetype", string(req.Archetype)).
		Bool("enhanced", req.Enhanced).
		Msg("analysis run started")

	report := &Report{RunID: runID}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if req.Enhanced {
			enhanced, err := s.scorer.ScoreEnhanced(gCtx, req.KeywordAnalysis, req.Resume, req.JobDescription)
			if err != nil {
				return err
			}
			report.Enhanced = enhanced
			return nil
		}
		score, err := s.scorer.Score(gCtx, req.KeywordAnalysis, req.Resume, req.JobDescription)
		if err != nil {
			return err
		}
		report.Score = score
		return nil
	})

	g.Go(func() error {
		var rawText string
		if req.Resume != nil {
			rawText = req.Resume.RawText
		}
		report.Structural = s.engine.Evaluate(structural.Input{
			Archetype:    req.Archetype,
			Resume:       req.Resume,
			SectionOrder: req.SectionOrder,
			RawText:      rawText,
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("analysis run failed")
		return nil, err
	}

	report.Duration = time.Since(start)
	report.CompletedAt = time.Now()
	logger.Info().
		Dur("duration", report.Duration).
		Int("structural_suggestions", len(report.Structural)).
		Msg("analysis run completed")
	return report, nil
}
