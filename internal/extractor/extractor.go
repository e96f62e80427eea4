// Package extractor pulls plain text out of uploaded resume documents.
package extractor

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"jobbuddy-utils/internal/logging"
	"jobbuddy-utils/pkg/utils"
)

// supportedExtensions lists the resume formats the extractor can parse.
var supportedExtensions = []string{".pdf", ".docx"}

// UnsupportedFormatError reports an upload whose extension maps to no
// known document format. The check runs before any extraction work.
type UnsupportedFormatError struct {
	Filename  string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("extractor: unsupported resume format %q (file %s)", e.Extension, e.Filename)
}

// Extractor converts resume files into plain text keyed on file extension.
type Extractor struct {
	logger logging.Logger
}

func New(logger logging.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Supported reports whether the filename's extension maps to a known
// format. Callers use it to reject uploads before buffering the body.
func Supported(filename string) bool {
	return utils.Contains(supportedExtensions, strings.ToLower(filepath.Ext(filename)))
}

// Extract returns the document's plain text. Unknown extensions return an
// UnsupportedFormatError; parse failures inside a supported format degrade
// to empty text so the caller can still report "no content found" upstream.
func (e *Extractor) Extract(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			e.logger.Warn("PDF text extraction failed, treating as empty", map[string]interface{}{
				"filename": filename,
				"error":    err.Error(),
			})
			return "", nil
		}
		return text, nil
	case ".docx":
		text, err := extractDocxText(data)
		if err != nil {
			e.logger.Warn("DOCX text extraction failed, treating as empty", map[string]interface{}{
				"filename": filename,
				"error":    err.Error(),
			})
			return "", nil
		}
		return text, nil
	default:
		return "", &UnsupportedFormatError{Filename: filename, Extension: ext}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return strings.TrimSpace(builder.String()), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return strings.TrimSpace(doc.Editable().GetContent()), nil
}
