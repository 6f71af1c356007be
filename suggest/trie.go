package suggest

import (
	"sort"
	"strings"
	"sync"

	"github.com/tessella/newsdex/core"
)

// Trie is a prefix tree of previously seen terms with frequency counts.
type Trie struct {
	mu    sync.RWMutex
	root  *node
	words int
}

type node struct {
	children map[rune]*node
	terminal bool
	freq     int
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// Insert records one occurrence of word. The word is lowercased; empty words
// are ignored.
func (t *Trie) Insert(word string) {
	t.AddWord(word, 1)
}

// AddWord records frequency occurrences of word at once.
// Non-positive frequencies are ignored.
func (t *Trie) AddWord(word string, frequency int) {
	if word == "" || frequency <= 0 {
		return
	}
	word = strings.ToLower(word)

	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.root
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			next = newNode()
			cur.children[r] = next
		}
		cur = next
	}
	if !cur.terminal {
		cur.terminal = true
		t.words++
	}
	cur.freq += frequency
}

// Len reports the number of distinct words inserted.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.words
}

// Frequency reports how often word has been inserted, 0 if never.
func (t *Trie) Frequency(word string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cur := t.walk(strings.ToLower(word))
	if cur == nil || !cur.terminal {
		return 0
	}
	return cur.freq
}

// Suggest returns up to limit completions of prefix as keyword suggestions,
// most frequent first with ties broken alphabetically. A missing prefix path
// or non-positive limit yields no suggestions.
//
// Collection walks the subtree depth-first in lexicographic order and stops
// once limit candidates are gathered, so a pathologically large subtree is
// never traversed in full.
func (t *Trie) Suggest(prefix string, limit int) []core.Suggestion {
	if prefix == "" || limit <= 0 {
		return nil
	}
	prefix = strings.ToLower(prefix)

	t.mu.RLock()
	defer t.mu.RUnlock()

	start := t.walk(prefix)
	if start == nil {
		return nil
	}

	collected := make([]core.Suggestion, 0, limit)
	collect(start, prefix, limit, &collected)

	sort.SliceStable(collected, func(i, j int) bool {
		if collected[i].Frequency != collected[j].Frequency {
			return collected[i].Frequency > collected[j].Frequency
		}
		return collected[i].Text < collected[j].Text
	})
	if len(collected) > limit {
		collected = collected[:limit]
	}
	return collected
}

// walk follows word rune by rune from the root, nil if the path is missing.
// Callers must hold at least a read lock.
func (t *Trie) walk(word string) *node {
	cur := t.root
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// collect gathers terminal descendants of cur depth-first, visiting children
// in rune order for deterministic output, until limit candidates are found.
func collect(cur *node, word string, limit int, out *[]core.Suggestion) {
	if len(*out) >= limit {
		return
	}
	if cur.terminal {
		*out = append(*out, core.Suggestion{
			Text:      word,
			Type:      core.SuggestionKeyword,
			Frequency: cur.freq,
		})
		if len(*out) >= limit {
			return
		}
	}

	runes := make([]rune, 0, len(cur.children))
	for r := range cur.children {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	for _, r := range runes {
		collect(cur.children[r], word+string(r), limit, out)
		if len(*out) >= limit {
			return
		}
	}
}
