// Package pdf extracts plain text from PDF documents using the
// ledongthuc/pdf library. Pure Go, no CGO, so the app ships as one binary.
package pdf

import (
	"context"
	"strings"

	"github.com/ledongthuc/pdf"

	"paperlens/internal"
	"paperlens/internal/errors"
	"paperlens/ports"
)

var _ ports.ExtractorPort = (*Extractor)(nil)

// Extractor implements ports.ExtractorPort over PDF files on disk.
type Extractor struct {
	logger *internal.Logger
}

// NewExtractor creates a PDF text extractor
func NewExtractor() *Extractor {
	return &Extractor{logger: internal.DefaultLogger}
}

// ExtractFile reads the PDF at path and concatenates per-page text in page
// order, joined by newlines. Pages that yield no text (image-only pages,
// per-page extraction failures) are skipped without failing the document.
// A document that cannot be opened at all returns "" and an error; callers
// treat short or empty text as the signal that analysis is impossible.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		e.logger.Warn("failed to open PDF %s: %v", path, err)
		return "", errors.ExtractionFailed(path, err)
	}
	defer f.Close()

	var text strings.Builder
	pageCount := reader.NumPage()
	for i := 1; i <= pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Some pages are images only; skip them rather than
			// failing the whole document.
			e.logger.Debug("skipping page %d of %s: %v", i, path, err)
			continue
		}
		if pageText == "" {
			continue
		}

		text.WriteString(pageText)
		text.WriteString("\n")
	}

	return text.String(), nil
}
