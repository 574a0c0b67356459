package search

import "github.com/alihaydarkir/saglikrock/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterAnalysis(analysis core.QueryAnalysis)
	VariantPlanned(name, text string, weight float64)
	VariantSearched(name string, hits int)
	VariantFailed(name string, err error)
	Finish(results []*core.RankedResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                          {}
func (n *noopMonitor) AfterAnalysis(_ core.QueryAnalysis)      {}
func (n *noopMonitor) VariantPlanned(_, _ string, _ float64)   {}
func (n *noopMonitor) VariantSearched(_ string, _ int)         {}
func (n *noopMonitor) VariantFailed(_ string, _ error)         {}
func (n *noopMonitor) Finish(_ []*core.RankedResult)           {}
