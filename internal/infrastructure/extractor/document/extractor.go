package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vintervu/interview-server/internal/core/domain"
	"github.com/vintervu/interview-server/internal/core/ports"
)

// Extractor reads a staged résumé from object storage and converts it to
// plain text. Supported formats are pdf and docx.
type Extractor struct {
	storage ports.ObjectStorage
}

func NewExtractor(storage ports.ObjectStorage) *Extractor {
	return &Extractor{storage: storage}
}

// SupportedFormat reports whether format (lowercase extension, no dot) is
// a format this extractor can handle.
func SupportedFormat(format string) bool {
	return format == "pdf" || format == "docx"
}

func (e *Extractor) ExtractText(ctx context.Context, storageKey, format string) (string, error) {
	if !SupportedFormat(format) {
		return "", domain.WrapError(domain.ErrUnsupportedFormat, "extract text", fmt.Errorf("format %q", format))
	}

	reader, err := e.storage.Open(ctx, storageKey)
	if err != nil {
		return "", fmt.Errorf("open staged document: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read staged document: %w", err)
	}

	var text string
	switch format {
	case "pdf":
		text, err = extractPDF(raw)
	case "docx":
		text, err = extractDOCX(raw)
	}
	if err != nil {
		return "", domain.WrapError(domain.ErrExtractionFailed, "extract "+format, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.WrapError(domain.ErrExtractionFailed, "extract "+format, errors.New("document yielded no text"))
	}
	return text, nil
}
