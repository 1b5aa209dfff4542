// Package quality obtains the content-quality judgment for a resume from the
// external text-generation call. PII is tokenized before the text leaves the
// process and restored in anything that comes back; every call goes through the
// invocation resilience layer. Failures degrade, they never propagate.
package quality

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lawrence-dass/coop-ready-sub002/internal/llm"
	"github.com/lawrence-dass/coop-ready-sub002/internal/redact"
	"github.com/lawrence-dass/coop-ready-sub002/internal/resilience"
	"github.com/lawrence-dass/coop-ready-sub002/internal/schemas"
	"github.com/rs/zerolog"
)

// Result is the explicit outcome of a quality judgment. Exactly one shape:
// a usable score, or a degraded marker with the reason the signal is missing.
// Callers are forced to handle the fallback path; there is no error to swallow.
type Result struct {
	Score        int
	Observations []string
	Degraded     bool
	Reason       string
}

// Judge produces content-quality scores for resume text
type Judge interface {
	JudgeContentQuality(ctx context.Context, resumeText, jobDescription string) Result
}

// LLMJudge implements Judge on top of the external text-generation call
type LLMJudge struct {
	client  llm.Client
	invoker *resilience.Invoker
	logger  zerolog.Logger
}

// NewLLMJudge creates a judge that calls the model through the given invoker
func NewLLMJudge(client llm.Client, invoker *resilience.Invoker, logger zerolog.Logger) *LLMJudge {
	return &LLMJudge{
		client:  client,
		invoker: invoker,
		logger:  logger,
	}
}

// judgeResponse is the expected JSON response shape
type judgeResponse struct {
	Score        int      `json:"score"`
	Observations []string `json:"observations"`
}

// JudgeContentQuality asks the external model to rate resume content quality
// against the job description. The resume text is redacted before it crosses
// the call boundary; observations have their tokens restored before returning.
func (j *LLMJudge) JudgeContentQuality(ctx context.Context, resumeText, jobDescription string) Result {
	// One token map covers the whole request so token names stay distinct
	// across both texts and restoration sees everything that crossed over
	tokens := redact.NewTokenMap()
	redactedResume := tokens.Redact(resumeText)
	redactedJob := tokens.Redact(jobDescription)

	prompt := buildJudgePrompt(redactedResume, redactedJob)

	raw, err := j.invoker.Invoke(ctx, func(ctx context.Context) (string, error) {
		return j.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	})
	if err != nil {
		j.logger.Warn().Err(err).Msg("content quality judgment unavailable")
		return Result{Degraded: true, Reason: "quality judgment unavailable"}
	}

	response, err := parseJudgeResponse(raw)
	if err != nil {
		j.logger.Warn().Err(err).Msg("content quality response failed validation")
		return Result{Degraded: true, Reason: "quality judgment response invalid"}
	}

	observations := make([]string, 0, len(response.Observations))
	for _, obs := range response.Observations {
		observations = append(observations, redact.Restore(obs, tokens))
	}

	return Result{Score: response.Score, Observations: observations}
}

// parseJudgeResponse validates the raw response against the judgment schema
// and decodes it. Structural failures are classified malformed and never retried.
func parseJudgeResponse(raw string) (*judgeResponse, error) {
	cleaned := llm.CleanJSONBlock(raw)

	if err := schemas.ValidateResponse(schemas.QualityJudgmentSchema, cleaned); err != nil {
		return nil, &resilience.InvocationError{
			Type:      resilience.ErrorMalformed,
			Message:   resilience.UserMessage(resilience.ErrorMalformed),
			Retryable: false,
			Cause:     err,
		}
	}

	var response judgeResponse
	if err := json.Unmarshal([]byte(cleaned), &response); err != nil {
		return nil, &resilience.InvocationError{
			Type:      resilience.ErrorMalformed,
			Message:   resilience.UserMessage(resilience.ErrorMalformed),
			Retryable: false,
			Cause:     err,
		}
	}

	return &response, nil
}

// buildJudgePrompt constructs the judgment prompt over already-redacted text
func buildJudgePrompt(resumeText, jobDescription string) string {
	var sb strings.Builder

	sb.WriteString("You are evaluating how well a resume's content matches a job description.\n")
	sb.WriteString("Rate the resume's content quality from 0 to 100, considering specificity,\n")
	sb.WriteString("quantified impact, and relevance to the role. Ignore formatting.\n\n")
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString("{\n  \"score\": <integer 0-100>,\n  \"observations\": [\"<short observation>\", ...]\n}\n\n")
	sb.WriteString(fmt.Sprintf("Job description:\n%s\n\n", jobDescription))
	sb.WriteString(fmt.Sprintf("Resume:\n%s\n", resumeText))

	return sb.String()
}
