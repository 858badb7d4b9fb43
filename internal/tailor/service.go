package tailor

import (
	"context"
	"strings"
	"time"

	"tailor-backend/internal/llm"
	"tailor-backend/internal/shared/diagnostics"
	"tailor-backend/internal/shared/telemetry"
)

// Service runs the tailoring pipeline: build prompt, call the model, extract
// a Result from its free-form reply.
type Service struct {
	LLM   llm.Client
	Debug diagnostics.Sink

	// Now supplies the prompt date; tests override it. Defaults to time.Now.
	Now func() time.Time
}

// NewService constructs a Service with the given model client and debug sink.
func NewService(client llm.Client, sink diagnostics.Sink) *Service {
	return &Service{LLM: client, Debug: sink}
}

// Tailor rewrites the resume and drafts a cover letter for the job
// description. Every failure, model call or response parsing, surfaces as a
// GenerationError; partial results are never returned.
func (s *Service) Tailor(ctx context.Context, resumeText, jobDescription string) (Result, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	prompt := BuildPrompt(resumeText, jobDescription, now())
	raw, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		return Result{}, &GenerationError{Err: err}
	}

	// Capture the raw response for offline debugging. Sink failures are
	// reported but never fail the request.
	if s.Debug != nil {
		if werr := s.Debug.Write(ctx, raw); werr != nil {
			telemetry.Warn("tailor.debug_capture_failed", map[string]any{"err": werr.Error()})
		}
	}

	res, err := ExtractResult(raw)
	if err != nil {
		return Result{}, &GenerationError{Err: err}
	}

	res.RewrittenResume = StripMarkdown(res.RewrittenResume)
	res.CoverLetter = StripMarkdown(res.CoverLetter)

	if strings.TrimSpace(res.RewrittenResume) == "" || strings.TrimSpace(res.CoverLetter) == "" {
		return Result{}, &GenerationError{Err: ErrIncomplete}
	}
	return res, nil
}
