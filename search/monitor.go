package search

import "github.com/poiesic/sharki/core"

// QueryMonitor provides hooks to observe query resolution.
// Implement this interface to track which path answered a query and what
// each stage produced.
type QueryMonitor interface {
	Start(query string)
	AfterSemanticSearch(hits []core.RankedHit)
	Demoted(err error)
	AfterKeywordSearch(results *ResultSet)
	Finish(results *ResultSet)
}

// noopMonitor is a no-op implementation of QueryMonitor
type noopMonitor struct{}

var _ QueryMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                        {}
func (n *noopMonitor) AfterSemanticSearch(_ []core.RankedHit) {}
func (n *noopMonitor) Demoted(_ error)                       {}
func (n *noopMonitor) AfterKeywordSearch(_ *ResultSet)       {}
func (n *noopMonitor) Finish(_ *ResultSet)                   {}
