package suggest

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessella/newsdex/core"
)

func TestTrie_InsertAndFrequency(t *testing.T) {
	trie := NewTrie()

	trie.Insert("tesla")
	trie.Insert("tesla")
	trie.Insert("Tesla")

	assert.Equal(t, 3, trie.Frequency("tesla"), "insert must be case insensitive")
	assert.Equal(t, 3, trie.Frequency("TESLA"))
	assert.Equal(t, 0, trie.Frequency("tes"), "interior node is not a word")
	assert.Equal(t, 0, trie.Frequency("teslas"))
	assert.Equal(t, 1, trie.Len())
}

func TestTrie_AddWord(t *testing.T) {
	trie := NewTrie()

	trie.AddWord("battery", 5)
	trie.AddWord("battery", 2)
	trie.AddWord("ignored", 0)
	trie.AddWord("ignored", -3)
	trie.AddWord("", 10)

	assert.Equal(t, 7, trie.Frequency("battery"))
	assert.Equal(t, 0, trie.Frequency("ignored"))
	assert.Equal(t, 1, trie.Len())
}

func TestTrie_Suggest(t *testing.T) {
	trie := NewTrie()
	trie.AddWord("apple", 5)
	trie.AddWord("application", 2)
	trie.AddWord("apply", 7)
	trie.AddWord("banana", 9)

	t.Run("all completions ranked by frequency", func(t *testing.T) {
		got := trie.Suggest("app", 10)
		require.Len(t, got, 3)

		assert.Equal(t, "apply", got[0].Text)
		assert.Equal(t, 7, got[0].Frequency)
		assert.Equal(t, "apple", got[1].Text)
		assert.Equal(t, "application", got[2].Text)

		for _, s := range got {
			assert.Equal(t, core.SuggestionKeyword, s.Type)
			assert.True(t, strings.HasPrefix(s.Text, "app"))
		}
	})

	t.Run("prefix that is itself a word", func(t *testing.T) {
		trie.AddWord("app", 1)
		got := trie.Suggest("app", 10)
		require.Len(t, got, 4)
		assert.Equal(t, "app", got[3].Text, "lowest frequency comes last")
	})

	t.Run("missing prefix", func(t *testing.T) {
		assert.Empty(t, trie.Suggest("zebra", 10))
	})

	t.Run("empty prefix", func(t *testing.T) {
		assert.Empty(t, trie.Suggest("", 10))
	})

	t.Run("non-positive limit", func(t *testing.T) {
		assert.Empty(t, trie.Suggest("app", 0))
		assert.Empty(t, trie.Suggest("app", -1))
	})
}

func TestTrie_Suggest_EarlyStop(t *testing.T) {
	trie := NewTrie()
	trie.AddWord("apple", 5)
	trie.AddWord("application", 2)
	trie.AddWord("apply", 7)

	got := trie.Suggest("app", 2)
	require.Len(t, got, 2)

	// Depth-first collection in rune order gathers "apple" then
	// "application" before stopping; ranking puts the more frequent first.
	assert.Equal(t, "apple", got[0].Text)
	assert.Equal(t, "application", got[1].Text)
	assert.GreaterOrEqual(t, got[0].Frequency, got[1].Frequency)
}

func TestTrie_Suggest_TieBreaksAlphabetically(t *testing.T) {
	trie := NewTrie()
	trie.AddWord("solar", 3)
	trie.AddWord("solstice", 3)
	trie.AddWord("solid", 3)

	got := trie.Suggest("sol", 10)
	require.Len(t, got, 3)
	assert.Equal(t, "solar", got[0].Text)
	assert.Equal(t, "solid", got[1].Text)
	assert.Equal(t, "solstice", got[2].Text)
}

func TestTrie_Suggest_ContainsAllInsertedCompletions(t *testing.T) {
	words := []string{"market", "markets", "marketing", "marker", "mars", "martian"}
	trie := NewTrie()
	for _, w := range words {
		trie.Insert(w)
	}

	got := trie.Suggest("mar", len(words))
	require.Len(t, got, len(words))

	seen := make(map[string]bool, len(got))
	for _, s := range got {
		seen[s.Text] = true
	}
	for _, w := range words {
		assert.True(t, seen[w], "expected %q among completions", w)
	}
}

func TestTrie_ConcurrentInsertAndSuggest(t *testing.T) {
	trie := NewTrie()
	words := []string{"alpha", "alphabet", "alpine", "altitude"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				trie.Insert(words[j%len(words)])
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				trie.Suggest("al", 4)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, trie.Len())
	assert.Equal(t, 200, trie.Frequency("alpha"))
}