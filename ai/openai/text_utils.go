package openai

import "strings"

// maxPromptChars caps how much article text is sent to a model in one request.
const maxPromptChars = 6000

// clipText truncates text to at most limit bytes, cutting at the last word
// boundary so the model never sees a half word.
func clipText(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	clipped := s[:limit]
	if i := strings.LastIndexByte(clipped, ' '); i > 0 {
		clipped = clipped[:i]
	}
	return strings.TrimSpace(clipped)
}

// stripFences removes markdown code fences wrapping a model response.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
