package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/tessella/newsdex/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// maxKeywords caps how many keywords a single extraction returns.
const maxKeywords = 10

// KeywordExtractor implements ai.KeywordExtractor using OpenAI-compatible chat APIs.
type KeywordExtractor struct {
	client       llms.Model
	minRelevance int
	logger       *slog.Logger
}

// keyword is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type keyword struct {
	Keyword   string `json:"keyword"`
	Relevance int    `json:"relevance"`
}

// extraction is the wrapper structure for the LLM's JSON response.
type extraction struct {
	Keywords []keyword `json:"keywords"`
}

// newKeywordExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newKeywordExtractor(config *ai.Config) (*KeywordExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/classification
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.KeywordHost),
		openai.WithToken("none"),
		openai.WithModel(config.KeywordModel),
	)
	if err != nil {
		return nil, err
	}

	return &KeywordExtractor{
		client:       client,
		minRelevance: config.MinRelevance,
		logger:       slog.Default().With("component", "openai-keywords"),
	}, nil
}

// NewKeywordExtractor creates a new keyword extractor using the provided configuration.
//
// Returns ai.KeywordExtractor interface to enforce abstraction.
func NewKeywordExtractor(config *ai.Config) (ai.KeywordExtractor, error) {
	return newKeywordExtractor(config)
}

// ExtractKeywords extracts topical keywords from text using an LLM.
// It applies relevance filtering and returns only keywords at or above the
// minimum threshold, most relevant first.
func (e *KeywordExtractor) ExtractKeywords(ctx context.Context, text string) ([]ai.ExtractedKeyword, error) {
	text = clipText(text, maxPromptChars)

	systemPrompt := buildKeywordPrompt()
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result extraction
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return []ai.ExtractedKeyword{}, nil
		}

		responseText := stripFences(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			e.logger.Warn("error parsing keyword response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse keyword response after retries", "err", lastErr)
		return nil, lastErr
	}

	// Filter by relevance and convert to ai.ExtractedKeyword
	extracted := make([]ai.ExtractedKeyword, 0, len(result.Keywords))
	for _, k := range result.Keywords {
		text := strings.ToLower(strings.TrimSpace(k.Keyword))
		if text == "" || k.Relevance < e.minRelevance {
			continue
		}
		extracted = append(extracted, ai.ExtractedKeyword{
			Text:      text,
			Relevance: k.Relevance,
		})
	}

	// Sort by relevance (descending)
	slices.SortFunc(extracted, func(a, b ai.ExtractedKeyword) int {
		if a.Relevance == b.Relevance {
			return strings.Compare(a.Text, b.Text)
		}
		if a.Relevance < b.Relevance {
			return 1
		}
		return -1
	})

	if len(extracted) > maxKeywords {
		extracted = extracted[:maxKeywords]
	}

	e.logger.Debug("extracted keywords",
		"total", len(result.Keywords),
		"filtered", len(extracted))

	return extracted, nil
}
