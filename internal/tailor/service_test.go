package tailor_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tailor-backend/internal/tailor"
)

type mockLLM struct {
	response string
	err      error
	prompt   string
}

func (m *mockLLM) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

type captureSink struct {
	payload string
	err     error
}

func (s *captureSink) Write(ctx context.Context, payload string) error {
	_ = ctx
	s.payload = payload
	return s.err
}

const fencedResponse = "Here you go!\n```json\n{\"files\": {\"jobTitle\": \"Backend Engineer\", \"companyName\": \"Acme\"}, \"rewrittenResume\": \"**Resume** body\", \"coverLetter\": \"### Dear team\"}\n```\n"

func TestTailorHappyPath(t *testing.T) {
	llm := &mockLLM{response: fencedResponse}
	sink := &captureSink{}
	svc := tailor.NewService(llm, sink)

	res, err := svc.Tailor(context.Background(), "my resume", "the job")
	if err != nil {
		t.Fatalf("tailor: %v", err)
	}
	if res.RewrittenResume != "Resume body" {
		t.Fatalf("expected markdown stripped, got %q", res.RewrittenResume)
	}
	if res.CoverLetter != " Dear team" {
		t.Fatalf("expected markdown stripped, got %q", res.CoverLetter)
	}
	if res.Files == nil || res.Files.JobTitle != "Backend Engineer" {
		t.Fatalf("unexpected files metadata: %+v", res.Files)
	}
	if sink.payload != fencedResponse {
		t.Fatal("expected raw response captured by debug sink")
	}
	if !strings.Contains(llm.prompt, "my resume") || !strings.Contains(llm.prompt, "the job") {
		t.Fatal("expected prompt to embed resume and job description")
	}
}

func TestTailorWrapsModelError(t *testing.T) {
	llm := &mockLLM{err: errors.New("quota exceeded")}
	svc := tailor.NewService(llm, &captureSink{})

	_, err := svc.Tailor(context.Background(), "r", "j")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Failed to generate content using AI: quota exceeded" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTailorNoJSONFails(t *testing.T) {
	llm := &mockLLM{response: "I am unable to help with that."}
	svc := tailor.NewService(llm, &captureSink{})

	_, err := svc.Tailor(context.Background(), "r", "j")
	if !errors.Is(err, tailor.ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Failed to generate content using AI: ") {
		t.Fatalf("expected wrapped message, got %v", err)
	}
}

func TestTailorRejectsPartialResult(t *testing.T) {
	llm := &mockLLM{response: "```json\n{\"rewrittenResume\": \"only the resume\"}\n```"}
	svc := tailor.NewService(llm, &captureSink{})

	_, err := svc.Tailor(context.Background(), "r", "j")
	if !errors.Is(err, tailor.ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
}

func TestTailorSinkFailureNotFatal(t *testing.T) {
	llm := &mockLLM{response: fencedResponse}
	sink := &captureSink{err: errors.New("disk full")}
	svc := tailor.NewService(llm, sink)

	if _, err := svc.Tailor(context.Background(), "r", "j"); err != nil {
		t.Fatalf("sink failure should not fail the request: %v", err)
	}
}
