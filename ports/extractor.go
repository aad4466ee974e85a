package ports

import "context"

// ExtractorPort pulls plain text out of an uploaded document.
type ExtractorPort interface {
	// ExtractFile reads the document at path and returns its concatenated
	// page text. An unreadable or unparsable document yields an empty
	// string together with the error; callers decide whether the result
	// is long enough to analyze.
	ExtractFile(ctx context.Context, path string) (string, error)
}
