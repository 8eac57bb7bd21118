package search

import "time"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterKeywordSearch(hits int)
	AfterSemanticSearch(hits int)
	AfterMerge(results int)
	Finish(elapsed time.Duration)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)            {}
func (n *noopMonitor) AfterKeywordSearch(_ int)  {}
func (n *noopMonitor) AfterSemanticSearch(_ int) {}
func (n *noopMonitor) AfterMerge(_ int)          {}
func (n *noopMonitor) Finish(_ time.Duration)    {}
