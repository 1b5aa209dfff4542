package analysis

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawrence-dass/coop-ready-sub002/internal/quality"
	"github.com/lawrence-dass/coop-ready-sub002/internal/scoring"
	"github.com/lawrence-dass/coop-ready-sub002/internal/structural"
	"github.com/lawrence-dass/coop-ready-sub002/internal/types"
)

type stubJudge struct {
	result quality.Result
}

func (s *stubJudge) JudgeContentQuality(_ context.Context, _, _ string) quality.Result {
	return s.result
}

func strPtr(s string) *string { return &s }

func newService(judge quality.Judge) *Service {
	logger := zerolog.Nop()
	return NewService(scoring.NewScorer(judge, logger), structural.NewEngine(), logger)
}

func testRequest() Request {
	return Request{
		Resume: &types.ParsedResume{
			Summary: strPtr("Backend developer with Go experience."),
			Skills:  []types.Skill{{Name: "Go", Category: types.SkillTechnical}},
			Experience: []types.JobEntry{
				{Company: "Acme", Title: "Developer", Dates: "2023 - 2024", BulletPoints: []string{"Built APIs"}},
			},
			Education: []types.EducationEntry{
				{Institution: "Seneca", Degree: "Diploma", Dates: "2020 - 2022"},
			},
			Projects: strPtr("Inventory tracker."),
			RawText:  "Summary\nBackend developer.\n\nSkills\nGo\n\nExperience\nAcme",
		},
		JobDescription:  "Software developer role using Go.",
		KeywordAnalysis: &types.KeywordAnalysis{MatchRate: 80},
		Archetype:       types.ArchetypeCoop,
		SectionOrder:    []string{"skills", "education", "projects", "experience"},
	}
}

func TestRun_CombinesScoreAndStructural(t *testing.T) {
	service := newService(&stubJudge{result: quality.Result{Score: 70}})

	report, err := service.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	require.NotNil(t, report.Score)
	assert.Nil(t, report.Enhanced)
	assert.False(t, report.Score.Degraded)
	require.Len(t, report.Structural, 1)
	assert.Equal(t, "coop_projects_heading", report.Structural[0].ID)
	assert.False(t, report.CompletedAt.IsZero())
}

func TestRun_EnhancedMode(t *testing.T) {
	service := newService(&stubJudge{result: quality.Result{Score: 70}})
	req := testRequest()
	req.Enhanced = true

	report, err := service.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Nil(t, report.Score)
	require.NotNil(t, report.Enhanced)
	assert.Len(t, report.Enhanced.Components, 5)
}

func TestRun_ScoringValidationErrorAborts(t *testing.T) {
	service := newService(&stubJudge{result: quality.Result{Score: 70}})
	req := testRequest()
	req.KeywordAnalysis = nil

	_, err := service.Run(context.Background(), req)

	var validationErr *scoring.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestRun_DoesNotMutateRequestResume(t *testing.T) {
	service := newService(&stubJudge{result: quality.Result{Score: 70}})
	req := testRequest()
	req.Resume.Other = strPtr("   ") // whitespace-only, normalized to absent internally

	_, err := service.Run(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, req.Resume.Other)
	assert.Equal(t, "   ", *req.Resume.Other)
}

func TestRun_DistinctRunIDs(t *testing.T) {
	service := newService(&stubJudge{result: quality.Result{Score: 70}})

	first, err := service.Run(context.Background(), testRequest())
	require.NoError(t, err)
	second, err := service.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}
