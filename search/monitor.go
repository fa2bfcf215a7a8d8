package search

import "github.com/poiesic/mindgrep/core"

// Monitor provides hooks to observe a search run. Implement this interface
// to track progress and per-file outcomes. Callbacks are invoked from the
// collection pass, serialized in file order, even when the run itself is
// parallel.
type Monitor interface {
	Start(spec *core.SearchSpec, files []string)
	FileSearched(path string, matches int)
	FileSkipped(path string, err error)
	Finish(summary Summary)
}

// Summary describes a completed run: how many files were processed, how
// many were skipped over errors, how many contained at least one match,
// and the total match count across all nodes.
type Summary struct {
	Files        int
	Processed    int
	Skipped      int
	MatchedFiles int
	Matches      int
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.SearchSpec, _ []string) {}
func (n *noopMonitor) FileSearched(_ string, _ int)         {}
func (n *noopMonitor) FileSkipped(_ string, _ error)        {}
func (n *noopMonitor) Finish(_ Summary)                     {}
