package search

import (
	"fmt"
	"regexp"

	"github.com/poiesic/mindgrep/core"
)

// Matcher evaluates flattened node text against a compiled search spec.
// Each term's pattern is compiled exactly once, when the Matcher is built,
// and reused across every node of every document in the run.
type Matcher struct {
	spec     *core.SearchSpec
	patterns []*regexp.Regexp
}

// NewMatcher validates the spec and compiles one pattern per term. Pattern
// compilation failures surface here, before any file is opened.
func NewMatcher(spec *core.SearchSpec) (*Matcher, error) {
	if spec == nil {
		return nil, ErrSpecRequired
	}
	if err := core.ValidateSearchSpec(spec); err != nil {
		return nil, err
	}

	sources := spec.Patterns()
	patterns := make([]*regexp.Regexp, len(sources))
	for i, src := range sources {
		re, err := regexp.Compile(src)
		if err != nil {
			// ValidateSearchSpec already compiled these, so this is unreachable
			// unless the spec was mutated since validation.
			return nil, fmt.Errorf("%w: %w: term %q: %v", core.ErrInvalidSearchSpec, core.ErrBadPattern, spec.Terms[i], err)
		}
		patterns[i] = re
	}

	return &Matcher{spec: spec, patterns: patterns}, nil
}

// Spec returns the spec the matcher was built from.
func (m *Matcher) Spec() *core.SearchSpec {
	return m.spec
}

// Match decides whether flattened node text satisfies the spec. The node
// matches iff every term finds at least one occurrence, independent of
// order or position. On a match it returns the text that was actually
// tested (newline-escaped when the spec asks for it) and every occurrence
// of every term as spans into that text, in term order.
func (m *Matcher) Match(flattened string) (string, []core.Span, bool) {
	if len(m.patterns) == 0 {
		// A spec with zero terms matches nothing.
		return flattened, nil, false
	}

	target := flattened
	if m.spec.FlattenNewlines {
		target = EscapeNewlines(flattened)
	}

	var spans []core.Span
	for i, re := range m.patterns {
		locs := re.FindAllStringIndex(target, -1)
		if locs == nil {
			return target, nil, false
		}
		for _, loc := range locs {
			spans = append(spans, core.Span{Start: loc[0], End: loc[1], Term: m.spec.Terms[i]})
		}
	}
	return target, spans, true
}
