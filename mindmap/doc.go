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


// Package mindmap reads Freeplane mind-map documents into core.Node trees.
//
// A Freeplane map is an XML document whose <map> root nests <node> elements.
// Plain nodes keep their text in the TEXT attribute; formatted nodes embed
// XHTML inside <richcontent> elements instead. Both forms are extracted, and
// all text is NFC-normalized so composed and decomposed characters compare
// equal during search.
//
// The package also locates map files on disk: Discover expands a file or
// directory root into a lexically ordered list of paths matching a set of
// extension suffixes.
package mindmap
