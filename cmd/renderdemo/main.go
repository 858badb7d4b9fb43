package main

import (
	"archive/zip"
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tailor-backend/internal/docgen"
)

const sampleText = `Jordan Lee
Senior Backend Engineer

Professional Experience
- Designed a routing service that reduced shipment latency by 18%.
- Implemented distributed tracing to cut incident triage time by 35%.

Technical Skills
Go, PostgreSQL, AWS, Docker, Kubernetes

Education
B.S. Computer Science`

func main() {
	outPath := flag.String("out", "./out/sample_resume.docx", "output path for generated DOCX")
	textPath := flag.String("text", "", "optional path to a text file to render instead of the sample")
	flag.Parse()

	text := sampleText
	if *textPath != "" {
		data, err := os.ReadFile(*textPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read text: %v\n", err)
			os.Exit(1)
		}
		text = string(data)
	}

	docxBytes, err := docgen.Render(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, docxBytes, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	if err := validateRenderedDocx(docxBytes); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

func validateRenderedDocx(docxBytes []byte) error {
	reader, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	if err != nil {
		return err
	}
	for _, file := range reader.File {
		if strings.ReplaceAll(file.Name, "\\", "/") == "word/document.xml" {
			return nil
		}
	}
	return fmt.Errorf("document.xml not found in docx")
}
