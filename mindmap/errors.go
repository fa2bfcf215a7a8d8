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


package mindmap

import "errors"

var (
	// ErrParse indicates a file's bytes do not form a well-formed map document.
	ErrParse = errors.New("cannot parse mind map")

	// ErrRead indicates a discovered path could not be opened or read.
	ErrRead = errors.New("cannot read mind map")

	// ErrUnknownPath indicates the search root is neither a file nor a directory.
	ErrUnknownPath = errors.New("unknown file path")
)
