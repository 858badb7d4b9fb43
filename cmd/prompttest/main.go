package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tailor-backend/internal/extract"
	"tailor-backend/internal/llm/gemini"
	"tailor-backend/internal/shared/config"
	"tailor-backend/internal/tailor"
)

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to resume file (pdf, docx, or txt)")
	jdPath := flag.String("jd", "", "Path to job description text file")
	send := flag.Bool("send", false, "Send the prompt to Gemini and print the raw response")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" {
		exitErr("resume path is required")
	}

	resumeText, err := readResume(*resumePath)
	if err != nil {
		exitErr(fmt.Sprintf("extract resume text: %v", err))
	}

	jobDescription := ""
	if strings.TrimSpace(*jdPath) != "" {
		jdBytes, err := os.ReadFile(*jdPath)
		if err != nil {
			exitErr(fmt.Sprintf("read job description: %v", err))
		}
		jobDescription = string(jdBytes)
	}

	prompt := tailor.BuildPrompt(resumeText, jobDescription, time.Now())

	if !*send {
		fmt.Println(prompt)
		return
	}

	client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, *model)
	if err != nil {
		exitErr(fmt.Sprintf("llm client: %v", err))
	}
	raw, err := client.Complete(context.Background(), prompt)
	if err != nil {
		exitErr(fmt.Sprintf("llm complete: %v", err))
	}
	fmt.Println(raw)
}

func readResume(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if filepath.Ext(path) == ".txt" {
		return string(data), nil
	}
	format, ok := extract.FormatFromFileName(filepath.Base(path))
	if !ok {
		return "", fmt.Errorf("unsupported resume file type: %s", filepath.Ext(path))
	}
	return extract.ExtractText(data, format)
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
