// Copyright 2025 Tessella Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/tessella/newsdex/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// SentimentAnalyzer implements ai.SentimentAnalyzer using OpenAI-compatible chat APIs.
type SentimentAnalyzer struct {
	client llms.Model
	logger *slog.Logger
}

// sentimentResponse is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type sentimentResponse struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// newSentimentAnalyzer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newSentimentAnalyzer(config *ai.Config) (*SentimentAnalyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/classification
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.SentimentHost),
		openai.WithToken("none"),
		openai.WithModel(config.SentimentModel),
	)
	if err != nil {
		return nil, err
	}

	return &SentimentAnalyzer{
		client: client,
		logger: slog.Default().With("component", "openai-sentiment"),
	}, nil
}

// NewSentimentAnalyzer creates a new sentiment analyzer using the provided configuration.
//
// Returns ai.SentimentAnalyzer interface to enforce abstraction.
func NewSentimentAnalyzer(config *ai.Config) (ai.SentimentAnalyzer, error) {
	return newSentimentAnalyzer(config)
}

// AnalyzeSentiment scores the overall tone of text using an LLM.
// The score is clamped to [-1, 1]; an unrecognized label falls back to neutral.
func (a *SentimentAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (ai.Sentiment, error) {
	// Long articles are clipped; the opening paragraphs carry the tone
	text = clipText(text, maxPromptChars)

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(sentimentPrompt),
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
	var result sentimentResponse
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return ai.Sentiment{}, err
		}

		if len(response.Choices) < 1 {
			a.logger.Debug("no choices returned from model")
			return ai.Sentiment{Label: "neutral"}, nil
		}

		responseText := stripFences(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			a.logger.Warn("error parsing sentiment response",
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
		a.logger.Error("failed to parse sentiment response after retries", "err", lastErr)
		return ai.Sentiment{}, lastErr
	}

	sentiment := ai.Sentiment{
		Score: clampScore(result.Score),
		Label: strings.ToLower(strings.TrimSpace(result.Label)),
	}
	switch sentiment.Label {
	case "positive", "negative", "neutral":
	default:
		sentiment.Label = "neutral"
	}

	a.logger.Debug("analyzed sentiment", "score", sentiment.Score, "label", sentiment.Label)
	return sentiment, nil
}

// clampScore bounds a model-reported score to the valid sentiment range.
func clampScore(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	if score < -1.0 {
		return -1.0
	}
	return score
}
