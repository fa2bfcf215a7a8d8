package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/mindgrep/core"
	"github.com/poiesic/mindgrep/mindmap"
)

// DefaultWorkers is the pool size used when none is configured.
const DefaultWorkers = 10

// Searcher applies one compiled search spec across mind-map files. A
// Searcher is safe for use from the pool goroutines it spawns: the compiled
// matcher is read-only and no state is shared across files.
type Searcher struct {
	matcher *Matcher
	workers int
	logger  *slog.Logger
	monitor Monitor
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithWorkers sets how many files are searched concurrently.
// Values below 2 select the sequential path. Default is DefaultWorkers.
func WithWorkers(n int) Option {
	return func(s *Searcher) error {
		if n < 1 {
			n = 1
		}
		s.workers = n
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMonitor sets a run monitor. Default is a no-op monitor.
func WithMonitor(m Monitor) Option {
	return func(s *Searcher) error {
		if m == nil {
			m = &noopMonitor{}
		}
		s.monitor = m
		return nil
	}
}

// NewSearcher compiles the spec and creates a searcher.
func NewSearcher(spec *core.SearchSpec, opts ...Option) (*Searcher, error) {
	matcher, err := NewMatcher(spec)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		matcher: matcher,
		workers: DefaultWorkers,
		logger:  slog.Default(),
		monitor: &noopMonitor{},
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Result is the outcome of a batch run: every match in deterministic
// per-file, depth-first pre-order, plus the run summary.
type Result struct {
	Matches []core.MatchResult
	Summary Summary
}

// SearchTree tests every node of a parsed document independently,
// depth-first pre-order, and returns the matches in traversal order.
// A non-matching parent never prevents its descendants from matching:
// each node is evaluated on its own flattened subtree.
func (s *Searcher) SearchTree(file string, roots []*core.Node) []core.MatchResult {
	var matches []core.MatchResult
	for _, root := range roots {
		matches = s.walk(file, root, nil, matches)
	}
	return matches
}

func (s *Searcher) walk(file string, n *core.Node, ancestors []string, matches []core.MatchResult) []core.MatchResult {
	path := append(ancestors[:len(ancestors):len(ancestors)], n.Text)

	flat := Flatten(n)
	if target, spans, ok := s.matcher.Match(flat); ok {
		matches = append(matches, core.MatchResult{
			File:      file,
			Node:      n,
			Label:     nodeLabel(n, flat),
			Path:      path,
			Flattened: target,
			Spans:     spans,
		})
	}

	for _, c := range n.Children {
		matches = s.walk(file, c, path, matches)
	}
	return matches
}

func nodeLabel(n *core.Node, flattened string) string {
	if n.ID != "" {
		return n.ID
	}
	return fmt.Sprintf("node-%016x", uint64(core.IDFromContent(flattened)))
}

// Search runs the spec over every file, sequentially or on a worker pool
// depending on configuration. Each file is parsed, searched to completion,
// and discarded before its outcome is tallied; a file that cannot be read
// or parsed is skipped with a warning and never aborts the batch. Results
// are always emitted in the order the paths were given, so parallel runs
// produce byte-identical output to sequential ones.
func (s *Searcher) Search(ctx context.Context, paths []string) (*Result, error) {
	s.monitor.Start(s.matcher.Spec(), paths)

	outcomes := make([]fileOutcome, len(paths))
	if s.workers > 1 && len(paths) > 1 {
		pool, err := ants.NewPool(s.workers)
		if err != nil {
			return nil, err
		}
		defer pool.Release()

		var wg sync.WaitGroup
		for i, path := range paths {
			wg.Add(1)
			task := func() {
				defer wg.Done()
				outcomes[i] = s.searchFile(ctx, path)
			}
			if err := pool.Submit(task); err != nil {
				outcomes[i] = fileOutcome{err: err}
				wg.Done()
			}
		}
		wg.Wait()
	} else {
		for i, path := range paths {
			outcomes[i] = s.searchFile(ctx, path)
		}
	}

	res := &Result{Summary: Summary{Files: len(paths)}}
	for i, o := range outcomes {
		if o.err != nil {
			s.logger.Warn("skipping mind map", "path", paths[i], "err", o.err)
			s.monitor.FileSkipped(paths[i], o.err)
			res.Summary.Skipped++
			continue
		}
		res.Summary.Processed++
		s.monitor.FileSearched(paths[i], len(o.matches))
		if len(o.matches) > 0 {
			res.Summary.MatchedFiles++
			res.Summary.Matches += len(o.matches)
			res.Matches = append(res.Matches, o.matches...)
		}
	}
	s.monitor.Finish(res.Summary)

	return res, nil
}

type fileOutcome struct {
	matches []core.MatchResult
	err     error
}

func (s *Searcher) searchFile(ctx context.Context, path string) fileOutcome {
	if err := ctx.Err(); err != nil {
		return fileOutcome{err: err}
	}

	s.logger.Debug("searching mind map", "path", path, "terms", s.matcher.Spec().Terms)

	roots, err := mindmap.ParseFile(path)
	if err != nil {
		return fileOutcome{err: err}
	}
	return fileOutcome{matches: s.SearchTree(path, roots)}
}
