// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package mindgrep searches Freeplane mind-map files for keyword, phrase,
// and regex matches that may span a node and its descendants. Grep ties the
// domain packages together: file discovery, XML parsing, subtree-flattening
// search, and reporting.
package mindgrep

import (
	"context"
	"log/slog"

	"github.com/poiesic/mindgrep/core"
	"github.com/poiesic/mindgrep/mindmap"
	"github.com/poiesic/mindgrep/search"
)

// Grep runs one validated search spec against mind-map files.
type Grep struct {
	searcher   *search.Searcher
	extensions []string
	logger     *slog.Logger
}

// Option configures a Grep.
type Option func(*grepOptions)

type grepOptions struct {
	extensions []string
	workers    int
	logger     *slog.Logger
	monitor    search.Monitor
}

// WithExtensions sets the file suffixes considered mind maps during
// directory discovery. Default is [mindmap.DefaultExtension].
func WithExtensions(extensions []string) Option {
	return func(o *grepOptions) {
		if len(extensions) > 0 {
			o.extensions = extensions
		}
	}
}

// WithWorkers sets how many files are searched concurrently.
// Default is search.DefaultWorkers.
func WithWorkers(n int) Option {
	return func(o *grepOptions) {
		o.workers = n
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *grepOptions) {
		o.logger = logger
	}
}

// WithMonitor sets a run monitor. Default is no monitoring.
func WithMonitor(m search.Monitor) Option {
	return func(o *grepOptions) {
		o.monitor = m
	}
}

// New validates the spec, compiles its term patterns, and creates a Grep.
// Spec problems (no terms, bad regex) surface here, before any file I/O.
func New(spec *core.SearchSpec, opts ...Option) (*Grep, error) {
	options := &grepOptions{
		extensions: []string{mindmap.DefaultExtension},
		workers:    search.DefaultWorkers,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	searcher, err := search.NewSearcher(spec,
		search.WithWorkers(options.workers),
		search.WithLogger(options.logger),
		search.WithMonitor(options.monitor),
	)
	if err != nil {
		return nil, err
	}

	return &Grep{
		searcher:   searcher,
		extensions: options.extensions,
		logger:     options.logger,
	}, nil
}

// Run discovers map files under root (a file or a directory) and searches
// them. Per-file parse and read failures are skipped and counted in the
// result summary; only an unusable root is a fatal error.
func (g *Grep) Run(ctx context.Context, root string) (*search.Result, error) {
	paths, err := mindmap.Discover(root, g.extensions)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("discovered mind maps", "root", root, "count", len(paths))
	return g.searcher.Search(ctx, paths)
}
