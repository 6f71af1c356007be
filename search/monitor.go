package search

import (
	"github.com/tessella/newsdex/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	CorpusFetched(articles []*core.Article)
	IndexBuilt(documents, terms int)
	CandidatesScored(scores map[core.ArticleID]float64)
	Finish(results []*core.ScoredArticle)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                {}
func (n *noopMonitor) CorpusFetched(_ []*core.Article)               {}
func (n *noopMonitor) IndexBuilt(_, _ int)                           {}
func (n *noopMonitor) CandidatesScored(_ map[core.ArticleID]float64) {}
func (n *noopMonitor) Finish(_ []*core.ScoredArticle)                {}
