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


// Package search implements subtree-flattening search over mind-map trees.
//
// For every node of a document, Flatten produces the concatenated text of
// the node plus its entire subtree; the Matcher then tests that flattened
// text against an AND-combined set of term patterns. Because a node's
// flattened text contains the flattened text of each descendant, a phrase
// split across a parent heading and a child note still matches.
//
// The Searcher drives the whole run: it enumerates every node of every file
// depth-first pre-order, isolates per-file failures, and optionally spreads
// files across a worker pool while keeping output order deterministic.
package search
