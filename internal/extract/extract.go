package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format identifies a supported resume document format.
type Format int

const (
	FormatPDF Format = iota + 1
	FormatDOCX
)

// ExtractionError normalizes a parse failure from the underlying document
// libraries into a single user-facing error carrying the original message.
type ExtractionError struct {
	Format Format
	Err    error
}

func (e *ExtractionError) Error() string {
	switch e.Format {
	case FormatPDF:
		return "Failed to parse PDF file: " + e.Err.Error()
	case FormatDOCX:
		return "Failed to parse DOCX file: " + e.Err.Error()
	default:
		return "Failed to parse file: " + e.Err.Error()
	}
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// FormatFromFileName dispatches on the declared filename suffix. The match
// is case-sensitive: ".PDF" is not accepted.
func FormatFromFileName(name string) (Format, bool) {
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return FormatPDF, true
	case strings.HasSuffix(name, ".docx"):
		return FormatDOCX, true
	default:
		return 0, false
	}
}

// ExtractText pulls plain UTF-8 text from an in-memory resume payload.
// Libraries used: github.com/ledongthuc/pdf (PDF) and
// github.com/nguyenthenguyen/docx (DOCX).
func ExtractText(data []byte, format Format) (string, error) {
	switch format {
	case FormatPDF:
		return extractPDF(data)
	case FormatDOCX:
		return extractDOCX(data)
	default:
		return "", errors.New("unsupported document format")
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Err: err}
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Err: err}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", &ExtractionError{Format: FormatPDF, Err: err}
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &ExtractionError{Format: FormatDOCX, Err: errors.New("empty docx data")}
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Err: err}
	}
	defer doc.Close()

	return stripDocXML(doc.Editable().GetContent()), nil
}

// stripDocXML reduces word/document.xml markup to plain text, turning
// paragraph and line-break boundaries into newlines.
func stripDocXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
