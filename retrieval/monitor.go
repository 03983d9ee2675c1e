package retrieval

import (
	"github.com/poiesic/talentsift/core"
)

// Monitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps and results during retrieval.
type Monitor interface {
	Start(queryID, query string)
	CacheHit(fingerprint string)
	IndexReady(stats core.IndexStats)
	AfterSemanticShortlist(ids []uint64)
	AfterCombine(results []core.ScoredResult)
	AfterFilters(results []core.ScoredResult)
	StreamStarted()
	StreamChunk(bytes int)
	Finish(response string, cached bool)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_, _ string)                  {}
func (n *noopMonitor) CacheHit(_ string)                  {}
func (n *noopMonitor) IndexReady(_ core.IndexStats)       {}
func (n *noopMonitor) AfterSemanticShortlist(_ []uint64)  {}
func (n *noopMonitor) AfterCombine(_ []core.ScoredResult) {}
func (n *noopMonitor) AfterFilters(_ []core.ScoredResult) {}
func (n *noopMonitor) StreamStarted()                     {}
func (n *noopMonitor) StreamChunk(_ int)                  {}
func (n *noopMonitor) Finish(_ string, _ bool)            {}
