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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidSearchSpec indicates a SearchSpec failed validation.
	ErrInvalidSearchSpec = errors.New("invalid search spec")

	// ErrNoTerms indicates a search spec ended up with zero terms.
	ErrNoTerms = errors.New("search requires at least one term")

	// ErrBadPattern indicates a term is not a valid regular expression.
	ErrBadPattern = errors.New("invalid search pattern")

	// ErrEmptyDelimiter indicates the term delimiter is empty.
	ErrEmptyDelimiter = errors.New("delimiter cannot be empty")
)
