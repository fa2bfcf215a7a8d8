package core

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultDelimiter splits a raw keyword string into single-word terms.
// Multi-word phrases require a non-space delimiter such as a comma.
const DefaultDelimiter = " "

// SearchSpec is the fully resolved description of one search request.
// All terms are AND-combined: a node matches only when every term finds at
// least one occurrence in the node's flattened text.
type SearchSpec struct {
	Terms           []string
	CaseSensitive   bool
	RegexMode       bool
	FlattenNewlines bool
	Delimiter       string
}

// SpecOption configures a SearchSpec.
type SpecOption func(*SearchSpec)

// WithDelimiter sets the string used to split the raw keyword input into
// terms. Default is a single space. The delimiter is always treated as a
// literal split token, even in regex mode.
func WithDelimiter(delimiter string) SpecOption {
	return func(s *SearchSpec) {
		s.Delimiter = delimiter
	}
}

// WithCaseSensitive toggles case-sensitive matching. Default is false.
func WithCaseSensitive(v bool) SpecOption {
	return func(s *SearchSpec) {
		s.CaseSensitive = v
	}
}

// WithRegexMode toggles regex interpretation of terms. When off (the
// default) each term is matched as a literal substring.
func WithRegexMode(v bool) SpecOption {
	return func(s *SearchSpec) {
		s.RegexMode = v
	}
}

// WithFlattenNewlines replaces embedded newlines with the literal
// two-character sequence `\n` before matching and display, so regexes can
// span original line breaks. Default is false.
func WithFlattenNewlines(v bool) SpecOption {
	return func(s *SearchSpec) {
		s.FlattenNewlines = v
	}
}

// NewSearchSpec splits the raw keyword string into terms and validates the
// result. It fails with ErrNoTerms when no terms survive the split and with
// ErrBadPattern when regex mode is on and a term does not compile. Both are
// detected here, before any file is opened.
func NewSearchSpec(keyword string, opts ...SpecOption) (*SearchSpec, error) {
	s := &SearchSpec{Delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(s)
	}
	if s.Delimiter == "" {
		return nil, wrapSpecErr(ErrEmptyDelimiter)
	}

	s.Terms = SplitTerms(keyword, s.Delimiter)

	if err := ValidateSearchSpec(s); err != nil {
		return nil, err
	}
	return s, nil
}

// SplitTerms splits a raw keyword string into terms on a literal delimiter.
// Empty fragments (leading, trailing, or doubled delimiters) are dropped.
func SplitTerms(keyword, delimiter string) []string {
	parts := strings.Split(keyword, delimiter)
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			terms = append(terms, p)
		}
	}
	return terms
}

// ValidateSearchSpec validates a SearchSpec according to domain rules.
//
// Validation rules:
//   - Terms must not be empty
//   - Delimiter must not be empty
//   - In regex mode, every term must compile as a regular expression
//
// A spec with zero terms matches nothing by construction, but callers are
// expected to reject it here rather than run an empty search.
func ValidateSearchSpec(s *SearchSpec) error {
	if s == nil {
		return wrapSpecErr(ErrNoTerms)
	}
	if s.Delimiter == "" {
		return wrapSpecErr(ErrEmptyDelimiter)
	}
	if len(s.Terms) == 0 {
		return wrapSpecErr(ErrNoTerms)
	}
	for i, p := range s.Patterns() {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("%w: %w: term %q: %v", ErrInvalidSearchSpec, ErrBadPattern, s.Terms[i], err)
		}
	}
	return nil
}

func wrapSpecErr(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidSearchSpec, err)
}

// Patterns returns the regular expression source for each term, in term
// order. Literal terms are metacharacter-escaped, and case-insensitive
// specs prefix the `(?i)` flag, so compiling the returned patterns yields
// matchers with the spec's exact semantics.
func (s *SearchSpec) Patterns() []string {
	patterns := make([]string, len(s.Terms))
	for i, term := range s.Terms {
		p := term
		if !s.RegexMode {
			p = regexp.QuoteMeta(term)
		}
		if !s.CaseSensitive {
			p = "(?i)" + p
		}
		patterns[i] = p
	}
	return patterns
}
