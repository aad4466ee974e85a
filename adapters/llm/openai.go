package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"paperlens/domain/paper"
	"paperlens/internal/errors"
	"paperlens/ports"
)

var _ ports.SummarizerPort = (*OpenAISummarizer)(nil)

const chatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// promptWindow limits how much of the paper is sent to the model.
const promptWindow = 12000

const systemPrompt = "You summarize academic papers. Respond with a single JSON object " +
	"with the keys: title, authors, abstract, methodology, key_findings (array of strings), " +
	"conclusions. No prose outside the JSON."

// OpenAISummarizer is the real analysis backend. It is only constructed when
// explicitly selected through configuration; the mock backend is never a
// silent fallback for a missing credential.
type OpenAISummarizer struct {
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
}

// NewOpenAISummarizer creates the OpenAI-backed summarizer. A missing API
// key is a configuration error, surfaced before any file is processed.
func NewOpenAISummarizer(apiKey, model string, maxTokens int, temperature float64) (*OpenAISummarizer, error) {
	if apiKey == "" {
		return nil, errors.ConfigInvalid("OPENAI_API_KEY is required for the openai analysis backend")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAISummarizer{
		apiKey:      apiKey,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		client:      &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Backend identifies this implementation
func (o *OpenAISummarizer) Backend() string {
	return "openai"
}

// Summarize sends the beginning of the paper to the chat completions API
// and decodes the model's JSON reply into a Summary.
func (o *OpenAISummarizer) Summarize(ctx context.Context, text string) (paper.Summary, error) {
	excerpt := text
	if len(excerpt) > promptWindow {
		excerpt = excerpt[:promptWindow]
	}

	body := map[string]any{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": "Summarize this paper:\n\n" + excerpt},
		},
		"max_tokens":      o.maxTokens,
		"temperature":     o.temperature,
		"response_format": map[string]string{"type": "json_object"},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return paper.Summary{}, errors.Wrap(err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, chatCompletionsURL, bytes.NewReader(payload))
	if err != nil {
		return paper.Summary{}, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return paper.Summary{}, errors.ExternalServiceError("openai", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slurp, _ := io.ReadAll(resp.Body)
		return paper.Summary{}, errors.ExternalServiceError("openai", fmt.Errorf("status %d: %s", resp.StatusCode, string(slurp)))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return paper.Summary{}, errors.ExternalServiceError("openai", err)
	}
	if len(out.Choices) == 0 {
		return paper.Summary{}, errors.ExternalServiceError("openai", fmt.Errorf("no choices in response"))
	}

	var summary paper.Summary
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &summary); err != nil {
		return paper.Summary{}, errors.ExternalServiceError("openai", errors.Wrap(err, "model reply was not the expected JSON"))
	}
	if summary.Title == "" {
		summary.Title = titleFromText(text)
	}
	return summary, nil
}
