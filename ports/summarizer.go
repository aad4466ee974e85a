package ports

import (
	"context"

	"paperlens/domain/paper"
)

// SummarizerPort is the analysis backend that writes up a paper. Two
// implementations exist: a mock that returns canned content, and a real
// backend that calls out to an LLM. Selection happens at startup through
// configuration, never as a silent fallback.
type SummarizerPort interface {
	Summarize(ctx context.Context, text string) (paper.Summary, error)

	// Backend names the implementation ("mock", "openai") for logging
	// and the UI footer.
	Backend() string
}
