package openai

import (
	"fmt"
	"strings"

	"github.com/tessella/newsdex/ai"
)

const sentimentPrompt = `Rate the overall sentiment of the given news text and return it as JSON.

Output ONLY valid JSON. Do not include any preamble, explanation, greeting, or
acknowledgment. Start your response directly with the opening brace { and end
with the closing brace }. Your output must exactly follow this schema:

{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "score": {
      "type": "number",
      "minimum": -1,
      "maximum": 1
    },
    "label": {
      "type": "string",
      "enum": ["positive", "negative", "neutral"]
    }
  },
  "required": ["score", "label"],
  "additionalProperties": false
}

Rules:
- Score is a number from -1.0 (strongly negative) to 1.0 (strongly positive); 0.0 is neutral.
- Rate the tone of the reported facts, not the quality of the writing.
- Label must be "positive" for score >= 0.15, "negative" for score <= -0.15, otherwise "neutral".
- Headlines about losses, crashes, layoffs, disasters or fraud are negative; gains, records, growth and recoveries are positive.
- Routine announcements and procedural coverage are neutral.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Tesla stock surges after record quarterly deliveries"
Output:
{"score": 0.7, "label": "positive"}

Example:
Input: "Thousands laid off as retailer files for bankruptcy"
Output:
{"score": -0.8, "label": "negative"}

Example:
Input: "Central bank to meet next Thursday as scheduled"
Output:
{"score": 0.0, "label": "neutral"}`

const keywordResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "keywords": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "keyword": {
            "type": "string",
            "pattern": "^[a-z0-9]+( [a-z0-9]+)*$"
          },
          "relevance": {
            "type": "integer",
            "minimum": 1,
            "maximum": 10
          }
        },
        "required": ["keyword", "relevance"],
        "additionalProperties": false
      }
    }
  },
  "required": ["keywords"],
  "additionalProperties": false
}`

const keywordPromptTemplate = `Extract the most important topical keywords from the given news text and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Keywords must be lowercase, 1-3 words.
- Prefer searchable subjects such as: %s.
- Relevance is an integer from 1 (barely mentioned) to 10 (central to the story). Rate based on how essential the keyword is for finding this text again.
- Include only keywords that are explicitly mentioned or clearly implied by the text. Do not hallucinate.
- Weight the subject of the headline higher.
- If no keywords can be identified, return "keywords": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Tesla shares surged 8%% after the company reported record deliveries for the quarter."
Output:
{
  "keywords": [
    {"keyword":"tesla","relevance":10},
    {"keyword":"deliveries","relevance":7},
    {"keyword":"stock price","relevance":6}
  ]
}

Example:
Input: "The European Central Bank held interest rates steady, citing cooling inflation across the eurozone."
Output:
{
  "keywords": [
    {"keyword":"european central bank","relevance":10},
    {"keyword":"interest rate","relevance":9},
    {"keyword":"inflation","relevance":8},
    {"keyword":"eurozone","relevance":6}
  ]
}`

// buildKeywordPrompt creates the system prompt with keyword kinds embedded.
func buildKeywordPrompt() string {
	return fmt.Sprintf(keywordPromptTemplate,
		keywordResponseSchema,
		strings.Join(ai.KeywordKinds, ", "))
}
