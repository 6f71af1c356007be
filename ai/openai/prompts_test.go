package openai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKeywordPrompt(t *testing.T) {
	prompt := buildKeywordPrompt()

	assert.Contains(t, prompt, `"keywords"`, "schema should be embedded")
	assert.Contains(t, prompt, "barely mentioned")
	assert.Contains(t, prompt, "surged 8% after", "few-shot example should survive templating")

	// A stray formatting verb in the template would leave a %! marker behind.
	if i := strings.Index(prompt, "%!"); i >= 0 {
		end := i + 40
		if end > len(prompt) {
			end = len(prompt)
		}
		t.Fatalf("prompt corrupted at %d: %q", i, prompt[i:end])
	}
}
